package desktopini

import "golang.org/x/text/encoding"

// replacing substitutes unrepresentable runes instead of failing the write.
type replacing struct {
	encoding.Encoding
}

func (r replacing) NewEncoder() *encoding.Encoder {
	return encoding.ReplaceUnsupported(r.Encoding.NewEncoder())
}
