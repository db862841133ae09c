//go:build windows

package desktopini

import (
	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var codePages = map[uint32]*charmap.Charmap{
	437:  charmap.CodePage437,
	850:  charmap.CodePage850,
	852:  charmap.CodePage852,
	866:  charmap.CodePage866,
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,
}

// systemEncoding returns the process ANSI code page. Characters the code page
// cannot represent are written as the ASCII substitute byte (0x1A). Unknown
// code pages (including 65001) fall back to UTF-8.
func systemEncoding() encoding.Encoding {
	cm, ok := codePages[windows.GetACP()]
	if !ok {
		return encoding.Nop
	}
	return replacing{cm}
}
