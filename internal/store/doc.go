// Package store persists submitted lines across program runs.
//
// The store is a small bbolt database with a single bucket of
// sequence-keyed lines. It is deliberately outside the editing engine:
// the editor only knows its in-memory history ring, and the application
// layer decides whether to seed the ring from a store at startup and
// append submitted lines to it.
//
// A Store is safe for use from a single goroutine at a time, which
// matches the strictly sequential session model of the editor.
package store
