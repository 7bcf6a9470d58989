// Package app wires the keyline components into a runnable application:
// configuration, the terminal backend, the line editor, the optional
// history store, and logging.
//
// The app owns the outer read-eval loop. Each submitted line is handed
// to a pluggable line handler; an interrupt re-prompts and end of input
// exits cleanly, following the usual shell convention. When the
// configuration file changes on disk, editor options are re-applied
// between sessions without losing the in-memory history ring.
package app
