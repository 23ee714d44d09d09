// Package terminal owns the full-screen tcell surface for a calendar session.
//
// Features:
//   - Scoped acquisition: Open enters raw mode and the alternate screen, Close restores both
//   - Idempotent Close, safe from defers, crash handlers and error paths alike
//   - Style tags resolved through a Theme, so callers never touch tcell styles
//   - Batched output: draw calls land in tcell's back buffer until Show
package terminal
