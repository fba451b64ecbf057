// Package highlight is an incremental syntax-highlighting engine:
// given a file's text, a language grammar, and a viewport window
// [ws, we), it returns a minimal list of styled byte spans covering the
// visible text, reusing work across successive queries against the same
// buffer via an incremental parse cache.
package highlight
