// Package shell applies and clears custom folder icons through the operating
// system shell.
package shell

import "errors"

// ErrUnsupported is returned on systems without a shell folder-settings API.
// desktop.ini is then the only record of the folder icon.
var ErrUnsupported = errors.New("folder custom settings are not supported on this platform")

// FolderSettings is the part of a folder's custom settings this tool writes.
// The zero value clears the icon association.
type FolderSettings struct {
	IconFile string
	// IconIndex selects the icon inside IconFile; negative values are resource IDs.
	IconIndex int32
}

// Customizer sets or clears the icon association of a folder.
type Customizer interface {
	SetFolderIcon(dir, iconFile string) error
	ClearFolderIcon(dir string) error
}

// New returns the Customizer for the running OS.
func New() Customizer {
	return newPlatform()
}
