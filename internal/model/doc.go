package model

// Package model defines domain data structures used across the app: download
// requests and results, progress events, and playback state enums. Structures
// are immutable value types handed between services and the UI.
