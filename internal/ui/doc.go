// Package ui hosts a canopy node tree inside a Bubble Tea program.
//
// Message flow:
//   - Bubble Tea reads the terminal on its own goroutine and delivers every
//     input as a message to Model.Update, so all tree mutation happens on a
//     single goroutine.
//   - Update routes each message through a typed handler registry. Key and
//     mouse messages are translated into internal/event values and
//     dispatched through the core; window size messages become resizes.
//   - After every message the model runs the render sweep into an in-memory
//     TermBuf. View returns that buffer painted with Lip Gloss, and Bubble
//     Tea writes only the lines that changed.
//
// Polling:
//   - The core keeps poll deadlines for nodes that asked to be polled. The
//     model arms a single tea.Tick for the earliest deadline and delivers it
//     back as a tick event, which runs the due callbacks.
//
// Exit:
//   - A node calls Exit on the core, which reaches the model through the
//     ControlBackend interface. The model answers with tea.Quit and Bubble
//     Tea restores the terminal. Errors from dispatch or rendering are
//     logged and end the program the same way; Err reports them afterwards.
//
// Harness drives a Model without a terminal for tests.
package ui
