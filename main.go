package main

import (
	"folder-icon/cmd" // Import the cmd package which contains the CLI command and argument dispatch
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// folder-icon gives a Windows folder a custom icon:
//   - `folder-icon "<image>"` center-crops the image to a square, writes a multi-resolution
//     .ico next to it, registers the icon with the shell and writes the folder's desktop.ini
//   - `folder-icon "<icon>.ico"` skips the conversion and uses the icon directly
//   - `folder-icon /remove "<directory>"` clears the shell icon association again
//
// Error handling strategy:
//   - Icon conversion failures are logged and the remaining steps are skipped
//   - Shell folder-settings failures are ignored (desktop.ini carries the same information)
//   - desktop.ini write failures are fatal
//   - The exit status is always 0 otherwise; all feedback is printed to stdout
func main() {
	cmd.Execute()
}
