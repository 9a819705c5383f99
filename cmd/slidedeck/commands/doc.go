// Package commands holds the slidedeck cobra command tree: the presenter
// itself plus the validate and stats helpers for deck files.
package commands
