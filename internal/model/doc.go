package model

// Package model defines domain data structures used across the app: playlist
// entries and playback status snapshots. Structures are designed for direct
// binding in the UI and explicit state transitions.
