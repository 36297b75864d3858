//go:build linux

package pad

import (
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// positionWindow centers the window on the screen and keeps it above other
// windows. Needs xdotool; wmctrl or xprop are optional.
func positionWindow(windowTitle string, width, height int) {
	// Give the window time to appear
	time.Sleep(100 * time.Millisecond)

	screenWidth, screenHeight := getScreenSize()
	if screenWidth == 0 || screenHeight == 0 {
		return
	}
	x, y := centered(screenWidth, screenHeight, width, height)

	output, err := exec.Command("xdotool", "search", "--name", windowTitle).Output()
	if err != nil {
		return
	}
	windowIDs := strings.Fields(string(output))
	if len(windowIDs) == 0 {
		return
	}
	windowID := windowIDs[0]

	_ = exec.Command("xdotool", "windowmove", windowID, strconv.Itoa(x), strconv.Itoa(y)).Run()

	if err := exec.Command("wmctrl", "-i", "-r", windowID, "-b", "add,above").Run(); err != nil {
		// wmctrl might not be installed, try xprop alternative
		_ = exec.Command("xprop", "-id", windowID, "-f", "_NET_WM_STATE", "32a",
			"-set", "_NET_WM_STATE", "_NET_WM_STATE_ABOVE").Run()
	}
}

// getScreenSize returns the screen dimensions using xdotool.
func getScreenSize() (width, height int) {
	output, err := exec.Command("xdotool", "getdisplaygeometry").Output()
	if err != nil {
		return 0, 0
	}
	return parseGeometry(string(output))
}
