//go:build darwin

package core

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics
#include <CoreGraphics/CoreGraphics.h>

void mainDisplaySize(int* width, int* height) {
	CGDirectDisplayID id = CGMainDisplayID();
	*width = (int)CGDisplayPixelsWide(id);
	*height = (int)CGDisplayPixelsHigh(id);
}
*/
import "C"

// screenSize reports the main display in pixels.
func screenSize() (int, int) {
	var width, height C.int
	C.mainDisplaySize(&width, &height)
	return int(width), int(height)
}
