package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folder-icon/internal/config"
	"folder-icon/internal/foldericon"
	"folder-icon/internal/logger"
)

const usageText = `Usage: FolderIcon "<filename>"
       Set supplied image as folder icon for the folder it's in.
Usage: FolderIcon /remove "<directory>"
       Reset supplied folder to not use an icon.
`

type recordingShell struct {
	set, cleared []string
}

func (r *recordingShell) SetFolderIcon(dir, iconFile string) error {
	r.set = append(r.set, iconFile)
	return nil
}

func (r *recordingShell) ClearFolderIcon(dir string) error {
	r.cleared = append(r.cleared, dir)
	return nil
}

type noIcons struct{}

func (noIcons) Build(string) string { return "" }

type iniFunc func(dir, iconFile string) error

func (f iniFunc) Write(dir, iconFile string) error { return f(dir, iconFile) }

type harness struct {
	shell  *recordingShell
	ini    []string
	iniErr error
	cfg    config.Config
	out    bytes.Buffer
	log    bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{shell: &recordingShell{}}
	prevOut, prevNoColor := logger.Out, color.NoColor
	logger.Out = &h.log
	color.NoColor = true
	t.Cleanup(func() {
		logger.Out, color.NoColor = prevOut, prevNoColor
		logger.Init(false)
	})
	return h
}

func (h *harness) run(t *testing.T, args ...string) {
	t.Helper()
	root := newRootCmd(func(cfg config.Config) *foldericon.Service {
		h.cfg = cfg
		return &foldericon.Service{
			Shell: h.shell,
			Icons: noIcons{},
			Ini: iniFunc(func(dir, iconFile string) error {
				h.ini = append(h.ini, iconFile)
				return h.iniErr
			}),
		}
	})
	root.SetOut(&h.out)
	root.SetErr(&h.out)
	// keep tests away from the user's real config file
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))
	require.NoError(t, root.Execute())
}

func TestUsage(t *testing.T) {
	tests := map[string][]string{
		"no arguments":           {},
		"blank argument":         {"   "},
		"empty argument":         {""},
		"remove without dir":     {"/remove"},
		"remove with extra args": {"/remove", "a", "b"},
		"two filenames":          {"a.jpg", "b.jpg"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t)
			h.run(t, args...)

			assert.Equal(t, usageText, h.out.String())
			assert.Empty(t, h.shell.set)
			assert.Empty(t, h.shell.cleared)
			assert.Empty(t, h.ini)
		})
	}
}

func TestRemove(t *testing.T) {
	for _, sw := range []string{"/remove", "/REMOVE", "/Remove"} {
		t.Run(sw, func(t *testing.T) {
			h := newHarness(t)
			dir := t.TempDir()

			h.run(t, sw, dir)

			assert.Equal(t, []string{dir}, h.shell.cleared)
			assert.Empty(t, h.out.String(), "a valid remove does not print usage")
		})
	}
}

func TestDashPrefixedArguments(t *testing.T) {
	t.Run("second filename is not a flag", func(t *testing.T) {
		h := newHarness(t)

		h.run(t, "a.jpg", "-b.jpg")

		assert.Equal(t, usageText, h.out.String())
		assert.Empty(t, h.shell.set)
	})

	t.Run("remove target is not a flag", func(t *testing.T) {
		h := newHarness(t)

		h.run(t, "/remove", "-gone")

		assert.Contains(t, h.log.String(), "Directory does not exist.")
		assert.Empty(t, h.out.String())
		assert.Empty(t, h.shell.cleared)
	})

	t.Run("leading unknown flag prints usage", func(t *testing.T) {
		h := newHarness(t)

		h.run(t, "-b.jpg")

		assert.Equal(t, usageText, h.out.String())
		assert.Empty(t, h.shell.set)
		assert.Empty(t, h.ini)
	})
}

func TestExplorerLaunchIsAllowed(t *testing.T) {
	assert.Empty(t, cobra.MousetrapHelpText)
}

func TestRemoveMissingDirectory(t *testing.T) {
	h := newHarness(t)

	h.run(t, "/remove", filepath.Join(t.TempDir(), "gone"))

	assert.Contains(t, h.log.String(), "Directory does not exist.")
	assert.Empty(t, h.shell.cleared)
}

func TestSetIcon(t *testing.T) {
	h := newHarness(t)
	icon := filepath.Join(t.TempDir(), "photo.ico")

	h.run(t, icon)

	assert.Equal(t, []string{icon}, h.shell.set)
	assert.Equal(t, []string{icon}, h.ini)
	assert.Empty(t, h.out.String())
}

func TestIniFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.iniErr = errors.New("access denied")

	assert.PanicsWithError(t, "access denied", func() {
		h.run(t, filepath.Join(t.TempDir(), "photo.ico"))
	})
}

func TestConfigFlag(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("folder_type: Music\ndebug: true\n"), 0644))

	h.run(t, "--config", path)

	assert.Equal(t, "Music", h.cfg.FolderType)
	assert.True(t, logger.DebugEnabled())
	assert.Equal(t, usageText, h.out.String())
}

func TestMalformedConfigFallsBackToDefaults(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("resample: sinc\n"), 0644))

	h.run(t, "--config", path)

	assert.Equal(t, config.Default(), h.cfg)
	assert.Contains(t, h.log.String(), "[ERROR]")
}

func TestHelp(t *testing.T) {
	h := newHarness(t)

	h.run(t, "--help")

	assert.Contains(t, h.out.String(), usageText)
	assert.Contains(t, h.out.String(), "--debug")
}
