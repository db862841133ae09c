//go:build !windows

package shell

type unsupportedShell struct{}

func newPlatform() Customizer {
	return unsupportedShell{}
}

func (unsupportedShell) SetFolderIcon(string, string) error { return ErrUnsupported }

func (unsupportedShell) ClearFolderIcon(string) error { return ErrUnsupported }
