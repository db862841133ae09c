//go:build windows

package desktopini

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const hiddenSystem = windows.FILE_ATTRIBUTE_HIDDEN | windows.FILE_ATTRIBUTE_SYSTEM

type osAttributes struct{}

func (osAttributes) ClearHiddenSystem(path string) error {
	return updateAttributes(path, func(a uint32) uint32 { return a &^ hiddenSystem })
}

func (osAttributes) SetHiddenSystem(path string) error {
	return updateAttributes(path, func(a uint32) uint32 { return a | hiddenSystem })
}

func updateAttributes(path string, update func(uint32) uint32) error {
	path16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return errors.Wrap(err, "unable to convert path encoding")
	}

	attributes, err := windows.GetFileAttributes(path16)
	if err != nil {
		return errors.Wrap(err, "unable to get file attributes")
	}

	if err := windows.SetFileAttributes(path16, update(attributes)); err != nil {
		return errors.Wrap(err, "unable to set file attributes")
	}
	return nil
}
