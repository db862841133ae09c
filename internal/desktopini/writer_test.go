package desktopini

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const photoIni = "[.ShellClassInfo]\r\n" +
	"IconFile=photo.ico\r\n" +
	"IconIndex=0\r\n" +
	"IconResource=photo.ico,0\r\n" +
	"ConfirmFileOp=0\r\n" +
	"\r\n" +
	"[ViewState]\r\n" +
	"Mode=\r\n" +
	"Vid=\r\n" +
	"FolderType=Pictures\r\n"

// recorder stands in for the OS attribute calls and remembers their order.
type recorder struct {
	calls    []string
	hidden   map[string]bool
	clearErr error
}

func (r *recorder) ClearHiddenSystem(path string) error {
	r.calls = append(r.calls, "clear")
	if r.clearErr != nil {
		return r.clearErr
	}
	delete(r.hidden, path)
	return nil
}

func (r *recorder) SetHiddenSystem(path string) error {
	r.calls = append(r.calls, "set")
	if r.hidden == nil {
		r.hidden = make(map[string]bool)
	}
	r.hidden[path] = true
	return nil
}

func newTestWriter(attrs attributer) *Writer {
	return &Writer{folderType: "Pictures", attrs: attrs, enc: encoding.Nop}
}

func TestRender(t *testing.T) {
	assert.Equal(t, photoIni, Render(filepath.Join("D", "photo.ico"), "Pictures"))
	assert.Equal(t, photoIni, Render("photo.ico", "Pictures"))
}

func TestRenderFolderType(t *testing.T) {
	assert.Contains(t, Render("a.ico", "Music"), "[ViewState]\r\nMode=\r\nVid=\r\nFolderType=Music\r\n")
}

func TestWriteNewFile(t *testing.T) {
	dir := t.TempDir()
	attrs := &recorder{}

	require.NoError(t, newTestWriter(attrs).Write(dir, filepath.Join(dir, "photo.ico")))

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, photoIni, string(data))
	assert.Equal(t, []string{"set"}, attrs.calls, "nothing to unhide before the first write")
	assert.True(t, attrs.hidden[path])
}

func TestWriteReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("[.ShellClassInfo]\r\nIconFile=old.ico\r\nInfoTip=stale\r\n"), 0644))
	attrs := &recorder{hidden: map[string]bool{path: true}}

	require.NoError(t, newTestWriter(attrs).Write(dir, `C:\elsewhere\photo.ico`))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "InfoTip")
	assert.Equal(t, []string{"clear", "set"}, attrs.calls)
	assert.True(t, attrs.hidden[path])
}

func TestWriteErrorsPropagate(t *testing.T) {
	t.Run("unhide fails", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), nil, 0644))
		attrs := &recorder{clearErr: errors.New("access denied")}

		err := newTestWriter(attrs).Write(dir, "photo.ico")
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("directory missing", func(t *testing.T) {
		attrs := &recorder{}
		err := newTestWriter(attrs).Write(filepath.Join(t.TempDir(), "gone"), "photo.ico")
		assert.Error(t, err)
		assert.Empty(t, attrs.calls)
	})
}

func TestWriteEncodesText(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter(&recorder{})
	w.enc = replacing{charmap.Windows1252}

	require.NoError(t, w.Write(dir, "café ☃.ico"))

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "IconFile=caf\xe9 \x1a.ico\r\n")
}
