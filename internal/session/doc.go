package session

// Package session orchestrates the playback engine, the playlist store and
// the background metadata/thumbnail services. One designated owning thread
// runs the controller, all store mutations and the status poll; everything
// arriving from other goroutines (engine end-of-media, probe and thumbnail
// completions) is funneled through a single Dispatcher first.
