//go:build windows

package shell

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"folder-icon/internal/logger"
)

const (
	fcsmIconFile  = 0x00000010 // FCSM_ICONFILE
	fcsRead       = 0x00000001 // FCS_READ
	fcsForceWrite = 0x00000002 // FCS_FORCEWRITE
)

var (
	shell32                          = windows.NewLazySystemDLL("shell32.dll")
	procSHGetSetFolderCustomSettings = shell32.NewProc("SHGetSetFolderCustomSettings")
)

// shFolderCustomSettings mirrors SHFOLDERCUSTOMSETTINGS from shlobj_core.h.
// Field order and widths must match the C layout; dwSize carries
// unsafe.Sizeof of this struct (104 bytes on amd64/arm64, 60 on 386).
// Only dwSize, dwMask, pszIconFile and iIconIndex are ever filled in.
type shFolderCustomSettings struct {
	dwSize                    uint32
	dwMask                    uint32
	pvid                      uintptr
	pszWebViewTemplate        *uint16
	cchWebViewTemplate        uint32
	pszWebViewTemplateVersion *uint16
	pszInfoTip                *uint16
	cchInfoTip                uint32
	pclsid                    uintptr
	dwFlags                   uint32
	pszIconFile               *uint16
	cchIconFile               uint32
	iIconIndex                int32
	pszLogo                   *uint16
	cchLogo                   uint32
}

type windowsShell struct{}

func newPlatform() Customizer {
	return windowsShell{}
}

func (windowsShell) SetFolderIcon(dir, iconFile string) error {
	return apply(dir, FolderSettings{IconFile: iconFile})
}

func (windowsShell) ClearFolderIcon(dir string) error {
	return apply(dir, FolderSettings{})
}

// apply force-writes settings to dir. An empty IconFile clears the icon.
func apply(dir string, settings FolderSettings) error {
	native := shFolderCustomSettings{
		dwMask:     fcsmIconFile,
		iIconIndex: settings.IconIndex,
	}
	native.dwSize = uint32(unsafe.Sizeof(native))

	if settings.IconFile != "" {
		icon16, err := windows.UTF16PtrFromString(settings.IconFile)
		if err != nil {
			return errors.Wrap(err, "unable to convert icon path encoding")
		}
		native.pszIconFile = icon16
	}

	dir16, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return errors.Wrap(err, "unable to convert folder path encoding")
	}

	return call(&native, dir16, dir, fcsForceWrite)
}

// call passes native to SHGetSetFolderCustomSettings for dir in the given
// FCS_* mode and turns a failure HRESULT into an error.
func call(native *shFolderCustomSettings, dir16 *uint16, dir string, mode uintptr) error {
	if err := procSHGetSetFolderCustomSettings.Find(); err != nil {
		return errors.Wrap(err, "unable to locate SHGetSetFolderCustomSettings")
	}

	r1, _, _ := procSHGetSetFolderCustomSettings.Call(
		uintptr(unsafe.Pointer(native)),
		uintptr(unsafe.Pointer(dir16)),
		mode,
	)
	hr := uint32(r1)
	logger.Debug("[DEBUG] SHGetSetFolderCustomSettings(%s, 0x%X) = 0x%08X\n", dir, mode, hr)
	if int32(hr) < 0 {
		return errors.Errorf("SHGetSetFolderCustomSettings failed for %s: HRESULT 0x%08X", dir, hr)
	}
	return nil
}
