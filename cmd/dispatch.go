package cmd

import (
	"fmt"
	"io"
	"strings"

	"folder-icon/internal/foldericon"
)

// removeSwitch selects the clear form; it is matched case-insensitively.
const removeSwitch = "/remove"

// printUsage writes the two accepted invocation forms.
func printUsage(out io.Writer) {
	fmt.Fprintln(out, `Usage: FolderIcon "<filename>"`)
	fmt.Fprintln(out, `       Set supplied image as folder icon for the folder it's in.`)
	fmt.Fprintln(out, `Usage: FolderIcon /remove "<directory>"`)
	fmt.Fprintln(out, `       Reset supplied folder to not use an icon.`)
}

// dispatch maps the positional arguments onto the set or remove pipeline.
// Anything that is not exactly `<filename>` or `/remove <directory>` prints usage.
// Only a desktop.ini write failure is returned.
func dispatch(out io.Writer, args []string, svc *foldericon.Service) error {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		printUsage(out)
		return nil
	}

	if strings.EqualFold(args[0], removeSwitch) {
		if len(args) != 2 {
			printUsage(out)
			return nil
		}
		svc.RemoveIcon(args[1])
		return nil
	}

	if len(args) != 1 {
		printUsage(out)
		return nil
	}
	return svc.SetIcon(args[0])
}
