// Package foldericon sequences the icon builder, the shell folder settings and
// the desktop.ini writer into the "set" and "remove" operations.
package foldericon

import (
	"os"
	"path/filepath"

	"folder-icon/internal/fsutil"
	"folder-icon/internal/logger"
	"folder-icon/internal/shell"
)

// IconBuilder turns an image into an .ico file and returns its path, or ""
// when nothing could be built.
type IconBuilder interface {
	Build(filename string) string
}

// IniWriter writes the desktop.ini for dir pointing at iconFile.
type IniWriter interface {
	Write(dir, iconFile string) error
}

// Service runs the set and remove pipelines.
type Service struct {
	Shell shell.Customizer
	Icons IconBuilder
	Ini   IniWriter

	// Getwd resolves relative arguments. Defaults to os.Getwd.
	Getwd func() (string, error)
}

func (s *Service) cwd() string {
	getwd := s.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil {
		logger.Debug("[DEBUG] Unable to determine working directory: %v\n", err)
		return ""
	}
	return dir
}

// SetIcon makes filename (an image, or an .ico used as is) the icon of the
// folder containing it.
//
// A relative filename is first resolved against the working directory when a
// file of that name exists there. The pipeline then only runs for an absolute
// path that does not name an existing file; anything else is skipped.
//
// The returned error comes from writing desktop.ini and is meant to be fatal.
func (s *Service) SetIcon(filename string) error {
	filename = fsutil.ResolveIn(s.cwd(), filename, fsutil.FileExists)

	// TODO: confirm with the product owner whether this guard is meant to be
	// inverted; as written it skips every image that exists.
	if !filepath.IsAbs(filename) || fsutil.FileExists(filename) {
		logger.Debug("[DEBUG] Skipping %s: not an absolute path to a missing file\n", filename)
		return nil
	}

	icon := filename
	if filepath.Ext(filename) != ".ico" {
		icon = s.Icons.Build(filename)
	}
	if icon == "" {
		return nil
	}

	dir := filepath.Dir(icon)
	if err := s.Shell.SetFolderIcon(dir, icon); err != nil {
		// desktop.ini below is enough for Explorer on its own
		logger.Debug("[DEBUG] Ignoring folder settings failure for %s: %v\n", dir, err)
	}

	if err := s.Ini.Write(dir, icon); err != nil {
		return err
	}
	logger.Info("[INFO] Set icon of %s to %s\n", dir, filepath.Base(icon))
	return nil
}

// RemoveIcon clears the shell icon association of dir. A relative dir is
// resolved against the working directory when such a directory exists there.
// desktop.ini is left in place.
func (s *Service) RemoveIcon(dir string) {
	dir = fsutil.ResolveIn(s.cwd(), dir, fsutil.DirExists)
	if !fsutil.DirExists(dir) {
		logger.Warn("Directory does not exist.\n")
		return
	}

	if err := s.Shell.ClearFolderIcon(dir); err != nil {
		logger.Debug("[DEBUG] Ignoring folder settings failure for %s: %v\n", dir, err)
		return
	}
	logger.Info("[INFO] Removed icon of %s\n", dir)
}
