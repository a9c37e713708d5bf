// Package ui contains the Bubble Tea program that drives the console.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are translated into internal/ui/state events (keys.go,
//     input.go, navigation.go, prompt.go) and applied to the application state
//     one at a time. Bubble Tea renders only after Update returns, so a frame
//     never observes a half-applied event.
//
// State ownership:
//   - internal/ui/state.App owns focus, navigation, the input line, the output
//     log, the preview text and the quit confirmation. The Model holds the only
//     reference and the renderer reads it through accessors.
//
// Rendering:
//   - view.go lays out the header, the navigation panel beside the preview and
//     input, and the footer with Lip Gloss; the focused region is highlighted
//     and the quit confirmation is centred over everything else.
package ui
