package command

import "fmt"

// Reason says which field an extractor could not produce.
type Reason uint8

// Extraction failure reasons.
const (
	ReasonInvalidAmount Reason = iota + 1
	ReasonInvalidDate
	ReasonMissingNameOrType
	ReasonMissingIdentifier
	ReasonInvalidValue
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidAmount:
		return "invalidAmount"
	case ReasonInvalidDate:
		return "invalidDate"
	case ReasonMissingNameOrType:
		return "missingNameOrType"
	case ReasonMissingIdentifier:
		return "missingIdentifier"
	case ReasonInvalidValue:
		return "invalidValue"
	}
	return "unknown"
}

// ExtractionError reports that args could not yield a complete record.
// Callers must not mutate storage after one.
type ExtractionError struct {
	Reason Reason
	Token  string // Offending token, when there is one.
}

func (e *ExtractionError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("extract fields: %s: %q", e.Reason, e.Token)
	}
	return "extract fields: " + e.Reason.String()
}

// Is matches any *ExtractionError with the same Reason.
func (e *ExtractionError) Is(target error) bool {
	t, ok := target.(*ExtractionError)
	return ok && t.Reason == e.Reason
}

func extractErr(reason Reason, token string) error {
	return &ExtractionError{Reason: reason, Token: token}
}
