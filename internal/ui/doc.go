// Package ui is the Bubble Tea presenter for a slide deck.
//
// The presenter is a host for session.Session: it turns keys, mouse presses
// and drags, and timer ticks into input events, drives the statistics
// animator from a frame ticker, and renders the slide under the cursor with
// its navigation dots, progress bar and help bar.
//
// Pieces:
//   - AppModel: root model; slide view or overview, overlays on top
//   - SlideView: title, subtitle, stat cards and bullets of one slide
//   - OverviewView: list of every slide; enter jumps
//   - OverlayStack: speaker notes and key help popups
//   - KeybindRegistry: per-mode key bindings feeding bubbles/help
package ui
