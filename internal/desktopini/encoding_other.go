//go:build !windows

package desktopini

import "golang.org/x/text/encoding"

// systemEncoding is UTF-8 outside Windows.
func systemEncoding() encoding.Encoding {
	return encoding.Nop
}
