// Package resolver turns a user-typed identifier into a stored record.
//
// An identifier that is a positive integer is a primary key and nothing
// else. Any other identifier is matched against display names, ignoring
// case: an exact match wins over a partial one, and among partial matches
// the lexically smallest name wins, whatever order storage returns.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// DefaultSearchLimit caps the candidates requested from storage.
const DefaultSearchLimit = 50

// Method says how an identifier was resolved.
type Method uint8

// Resolution methods.
const (
	MethodExactID Method = iota + 1
	MethodExactName
	MethodPartialName
)

func (m Method) String() string {
	switch m {
	case MethodExactID:
		return "exactId"
	case MethodExactName:
		return "exactNameMatch"
	case MethodPartialName:
		return "partialNameMatch"
	}
	return "unknown"
}

// Resolved is a stored record and how it was found.
type Resolved struct {
	Entity types.Named
	Method Method
}

// ResolutionError reports that no record matched an identifier.
// It wraps types.ErrNotFound.
type ResolutionError struct {
	Entity     types.EntityType
	Identifier string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s %q: %v", e.Entity, e.Identifier, types.ErrNotFound)
}

func (e *ResolutionError) Unwrap() error { return types.ErrNotFound }

// IdentifierQuery is a parsed identifier. IsID is set iff Raw is a positive
// integer.
type IdentifierQuery struct {
	Raw  string
	ID   int64
	IsID bool
}

var digits = regexp.MustCompile(`^\d+$`)

// ParseIdentifier classifies raw as a primary key or a name.
func ParseIdentifier(raw string) IdentifierQuery {
	q := IdentifierQuery{Raw: raw}
	if !digits.MatchString(raw) {
		return q
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return q
	}
	q.ID, q.IsID = id, true
	return q
}

// Resolver resolves identifiers through a Lookup.
type Resolver struct {
	lookup types.Lookup
	limit  int
}

// New returns a Resolver over lookup.
func New(lookup types.Lookup) *Resolver {
	return &Resolver{lookup: lookup, limit: DefaultSearchLimit}
}

// WithLimit returns a copy of r that asks storage for at most limit
// candidates per name search.
func (r *Resolver) WithLimit(limit int) *Resolver {
	c := *r
	if limit > 0 {
		c.limit = limit
	}
	return &c
}

// Resolve finds the record of entity named by identifier among the records
// owned by ownerID. It returns a *ResolutionError when nothing matches and
// passes storage errors through. Resolve never mutates storage.
func (r *Resolver) Resolve(ctx context.Context, entity types.EntityType, identifier string, ownerID int64) (Resolved, error) {
	q := ParseIdentifier(strings.TrimSpace(identifier))
	if q.Raw == "" {
		return Resolved{}, &ResolutionError{Entity: entity, Identifier: identifier}
	}

	if q.IsID {
		rec, err := r.lookup.FindByID(ctx, entity, ownerID, q.ID)
		if errors.Is(err, types.ErrNotFound) {
			return Resolved{}, &ResolutionError{Entity: entity, Identifier: q.Raw}
		}
		if err != nil {
			return Resolved{}, fmt.Errorf("find %s %d: %w", entity, q.ID, err)
		}
		return Resolved{Entity: rec, Method: MethodExactID}, nil
	}

	candidates, err := r.lookup.SearchByName(ctx, entity, ownerID, q.Raw, r.limit)
	if err != nil {
		return Resolved{}, fmt.Errorf("search %s %q: %w", entity, q.Raw, err)
	}
	rec, method, ok := Pick(q.Raw, candidates)
	if !ok {
		return Resolved{}, &ResolutionError{Entity: entity, Identifier: q.Raw}
	}
	return Resolved{Entity: rec, Method: method}, nil
}

// Pick chooses among candidates for query: a case-folded exact match, else
// the partial match with the lexically smallest name. Ties fall back to the
// raw name and then the id. Candidates that do not contain query are ignored.
func Pick(query string, candidates []types.Named) (types.Named, Method, bool) {
	caser := cases.Fold()
	fq := caser.String(query)

	type candidate struct {
		rec    types.Named
		folded string
	}
	var exact, partial []candidate
	for _, c := range candidates {
		if c == nil {
			continue
		}
		fn := caser.String(c.DisplayName())
		switch {
		case fn == fq:
			exact = append(exact, candidate{c, fn})
		case strings.Contains(fn, fq):
			partial = append(partial, candidate{c, fn})
		}
	}

	less := func(list []candidate) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := list[i], list[j]
			if a.folded != b.folded {
				return a.folded < b.folded
			}
			if a.rec.DisplayName() != b.rec.DisplayName() {
				return a.rec.DisplayName() < b.rec.DisplayName()
			}
			return a.rec.EntityID() < b.rec.EntityID()
		}
	}
	if len(exact) > 0 {
		sort.SliceStable(exact, less(exact))
		return exact[0].rec, MethodExactName, true
	}
	if len(partial) > 0 {
		sort.SliceStable(partial, less(partial))
		return partial[0].rec, MethodPartialName, true
	}
	return nil, 0, false
}
