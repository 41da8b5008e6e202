package command

import (
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// ParsedCommand is the classified form of one line of user text.
// Args never contains the tokens consumed for Verb or Entity.
type ParsedCommand struct {
	Verb     Verb
	Entity   types.EntityType
	Args     []Token
	Original string

	// Inferred is set when Entity is EntityExpense only because the first
	// argument is a bare amount. Such commands use the shorthand
	// convention where the amount comes first.
	Inferred bool

	// VerbDefaulted is set when no verb keyword was typed and Verb fell
	// back to list.
	VerbDefaulted bool
}

// ArgValues returns the string values of Args.
func (c ParsedCommand) ArgValues() []string {
	return Values(c.Args)
}

// Parse tokenizes and classifies text.
func Parse(text string, lang types.Language) ParsedCommand {
	cmd := classify(Tokens(text), lang, VerbUnknown)
	cmd.Original = text
	return cmd
}

// ParseAs classifies text whose verb is already known, as when the user
// typed a slash alias such as /add. No verb keyword is consumed.
func ParseAs(verb Verb, text string, lang types.Language) ParsedCommand {
	cmd := classify(Tokens(text), lang, verb)
	cmd.Original = text
	return cmd
}

// Classify applies the classification rules to tokens:
//
//  1. no tokens: verb unknown, no entity.
//  2. a verb keyword in the first token is consumed; otherwise the verb
//     is list and nothing is consumed.
//  3. an entity keyword contained in the first remaining token is consumed.
//  4. without an entity, a positive amount as the first remaining token
//     makes the command an expense.
//
// Classify never fails. Callers answer unknown verbs and missing entities
// with usage text.
func Classify(tokens []string, lang types.Language) ParsedCommand {
	ts := make([]Token, len(tokens))
	for i, v := range tokens {
		ts[i] = Token{Index: i, Value: v}
	}
	cmd := classify(ts, lang, VerbUnknown)
	cmd.Original = Join(tokens)
	return cmd
}

func classify(tokens []Token, lang types.Language, verb Verb) ParsedCommand {
	if len(tokens) == 0 {
		return ParsedCommand{Verb: verb, Entity: types.EntityNone}
	}

	working := tokens
	defaulted := false
	if verb == VerbUnknown {
		verb = VerbList
		defaulted = true
		if v := DetectVerb(working[0].Value, lang); v != VerbUnknown {
			verb = v
			defaulted = false
			working = working[1:]
		}
	}

	cmd := ParsedCommand{Verb: verb, Entity: types.EntityNone, VerbDefaulted: defaulted}
	if len(working) > 0 {
		if e := DetectEntity(working[0].Value, lang); e != types.EntityNone {
			cmd.Entity = e
			working = working[1:]
		} else if _, ok := positiveAmount(working[0].Value); ok {
			cmd.Entity = types.EntityExpense
			cmd.Inferred = true
		}
	}
	cmd.Args = append([]Token(nil), working...)
	return cmd
}
