package iconbuilder

import (
	"fmt"

	"folder-icon/internal/fsutil"
)

// UniqueIconPath returns dir+label+".ico", or the first free
// dir+label+" (N).ico" for N = 1, 2, ... when that file already exists.
// dir is expected to end in a path separator.
func UniqueIconPath(dir, label string) string {
	name := dir + label + ".ico"
	for i := 1; fsutil.FileExists(name); i++ {
		name = fmt.Sprintf("%s%s (%d).ico", dir, label, i)
	}
	return name
}
