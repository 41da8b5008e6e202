package command

import "strings"

// Token is one logical argument and its position in the full token sequence.
type Token struct {
	Index int
	Value string
}

// Tokenize splits text on spaces, treating a double-quoted run as a single
// token. Quotes are dropped and there is no escaping. An unbalanced quote
// runs to the end of the text. Empty input yields no tokens.
func Tokenize(text string) []string {
	var (
		tokens   []string
		buf      strings.Builder
		inQuotes bool
	)
	for _, r := range text {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if buf.Len() > 0 {
				tokens = append(tokens, buf.String())
				buf.Reset()
			}
		default:
			buf.WriteRune(r)
		}
	}
	if buf.Len() > 0 {
		tokens = append(tokens, buf.String())
	}
	return tokens
}

// Tokens is Tokenize with positions attached.
func Tokens(text string) []Token {
	values := Tokenize(text)
	out := make([]Token, len(values))
	for i, v := range values {
		out[i] = Token{Index: i, Value: v}
	}
	return out
}

// Join rebuilds a command line from tokens, quoting tokens that contain a
// space so that Tokenize(Join(tokens)) returns tokens again.
func Join(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if strings.Contains(t, " ") {
			t = `"` + t + `"`
		}
		parts[i] = t
	}
	return strings.Join(parts, " ")
}

// Values returns the string values of tokens.
func Values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}
