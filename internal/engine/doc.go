package engine

// Package engine defines the contract for the native playback backend.
// The backend itself is an external collaborator; the session layer only
// sees this interface and treats every call as fallible. Engines report
// unknown values with negative sentinels which callers must normalize.
