//go:build !windows

package desktopini

// osAttributes is a no-op: hidden and system are Windows file attributes.
type osAttributes struct{}

func (osAttributes) ClearHiddenSystem(string) error { return nil }

func (osAttributes) SetHiddenSystem(string) error { return nil }
