package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the download session and the
// playback controller, marshals worker progress onto the interactive thread,
// and switches between the two fixed color palettes.
