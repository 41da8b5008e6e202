// Package command turns a line of user text into a classified command and
// typed fields.
//
// The pipeline is Tokenize, then Classify against the bilingual keyword
// dictionaries, then one of the Extract functions for the target entity.
// Every function in this package is pure and safe for concurrent use.
package command
