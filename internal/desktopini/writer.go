// Package desktopini writes the per-folder desktop.ini file that Windows
// Explorer reads to pick a folder's icon and view type.
package desktopini

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"

	"folder-icon/internal/fsutil"
	"folder-icon/internal/logger"
)

// FileName is the name Explorer looks for inside a customized folder.
const FileName = "desktop.ini"

const newline = "\r\n"

// attributer hides and unhides files. The real implementation is per-OS.
type attributer interface {
	ClearHiddenSystem(path string) error
	SetHiddenSystem(path string) error
}

// Writer renders and writes desktop.ini files.
type Writer struct {
	folderType string
	attrs      attributer
	enc        encoding.Encoding
}

// NewWriter returns a Writer that declares folderType in [ViewState] and
// encodes text with the system's ANSI code page.
func NewWriter(folderType string) *Writer {
	return &Writer{
		folderType: folderType,
		attrs:      osAttributes{},
		enc:        systemEncoding(),
	}
}

// Render returns the desktop.ini text for iconFile.
// Only the base name of iconFile is used; the icon is expected to live in the
// customized folder itself.
func Render(iconFile, folderType string) string {
	icon := filepath.Base(iconFile)

	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteString(newline)
	}

	line("[.ShellClassInfo]")
	line("IconFile=" + icon)
	line("IconIndex=0")
	line("IconResource=" + icon + ",0")
	line("ConfirmFileOp=0")
	line("")
	line("[ViewState]")
	line("Mode=")
	line("Vid=")
	line("FolderType=" + folderType)
	return b.String()
}

// Write replaces dir's desktop.ini with the text for iconFile and leaves the
// file hidden and system-flagged. An existing desktop.ini is unhidden first so
// it can be overwritten.
func (w *Writer) Write(dir, iconFile string) error {
	path := filepath.Join(dir, FileName)

	if fsutil.FileExists(path) {
		if err := w.attrs.ClearHiddenSystem(path); err != nil {
			return fmt.Errorf("failed to unhide %s: %w", path, err)
		}
	}

	data, err := w.enc.NewEncoder().String(Render(iconFile, w.folderType))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Wrote %s:\n%s", path, data)

	if err := w.attrs.SetHiddenSystem(path); err != nil {
		return fmt.Errorf("failed to hide %s: %w", path, err)
	}
	return nil
}
