// Package viz renders probability distributions in the terminal.
//
//   - [Snapshots]: asciigraph plots of selected time points of a field
//   - [Bars]: single-row unicode bar rendering of one distribution
//   - [Live]: Bubble Tea model that animates a run column by column
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	R     - Reset to the initial column
//	Q     - Quit
package viz
