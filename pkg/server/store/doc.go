// Package store defines storage abstractions for the boardhub server.
//
// Each resource gets one interface describing the operations the endpoints
// need, decoupled from the database implementation. The gorm subpackage
// provides the Postgres-backed implementations; tests substitute mocks.
//
// Stores return model types directly and signal missing rows with
// ErrNotFound. Authorization is not a store concern: callers check board
// visibility before touching a store, except where an operation's shape
// already encodes the scope (ListVisible, Search).
package store
