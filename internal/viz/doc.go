// Package viz draws scene snapshots on a braille terminal canvas and
// plays scripts live with Bubble Tea.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart the script
//	T     - Cycle color themes
//	Q     - Quit
package viz
