// Package editor provides a Bubble Tea widget for editing biological
// sequences backed by the seqdoc package.
//
// The widget renders one focusable cell per Symbol, filters typed input
// against the accepted alphabet, routes paste events to the host for
// import-flow disambiguation, and exposes change/hover/click events. All
// internal logic operates on logical integer offsets; the terminal cell
// grid is bridged through SelectionMapper.
package editor
