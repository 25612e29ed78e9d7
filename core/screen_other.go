//go:build !darwin

package core

// screenSize has no portable implementation; assume a common desktop display.
func screenSize() (int, int) {
	return 1920, 1080
}
