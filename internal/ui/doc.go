// Package ui is the Fyne front end: window layout, menu, playlist side
// panel, transport bar, and the view bridge the session notifies. All
// bridge notifications arrive on the Fyne thread because the session
// dispatcher marshals through fyne.Do.
package ui
