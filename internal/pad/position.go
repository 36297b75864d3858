package pad

import (
	"strconv"
	"strings"
)

// parseGeometry parses "1920 1080" as printed by xdotool getdisplaygeometry.
func parseGeometry(s string) (width, height int) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return 0, 0
	}
	width, errW := strconv.Atoi(parts[0])
	height, errH := strconv.Atoi(parts[1])
	if errW != nil || errH != nil {
		return 0, 0
	}
	return width, height
}

// centered returns the top-left corner for a window centered on the screen.
func centered(screenWidth, screenHeight, width, height int) (x, y int) {
	return max(0, (screenWidth-width)/2), max(0, (screenHeight-height)/2)
}
