package playlist

// Package playlist implements the ordered media store: entries plus a
// current-item cursor, JSON persistence, and folder scanning. The store is
// the single source of truth for what exists and what is selected; it must
// only be touched from the thread that owns the session controller.
