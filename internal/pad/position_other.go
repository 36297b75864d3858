//go:build !linux

package pad

// positionWindow is a no-op outside Linux: the window manager centers new
// windows itself on Windows and macOS.
func positionWindow(windowTitle string, width, height int) {}
