// Package types defines the entities, storage interfaces, shared enums, and
// standard errors of the diindiin bot.
//
// The command layer (internal/command, internal/resolver) only sees these
// types; the storage backend (internal/sqlite) implements Store.
package types
