package ui

// Package ui contains the Fyne-based desktop user interface for the planner.
// It wires operator actions to the fleet registry and renders the header,
// the placeholder map region, drone status cards, and mission controls.
// All UI strings are localized via Localization.
