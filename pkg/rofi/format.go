package rofi

// Format controls how rofi reports the selection on its stdout.
type Format int

const (
	// FormatText returns the chosen entry verbatim, markup included.
	FormatText Format = iota
	// FormatStrippedText returns the chosen entry with markup removed.
	FormatStrippedText
	// FormatUserInput returns exactly what the user typed.
	FormatUserInput
	// FormatIndex returns the position of the chosen entry.
	FormatIndex
)

// arg връща single-character токена за флага -format
func (f Format) arg() string {
	switch f {
	case FormatStrippedText:
		return "p"
	case FormatUserInput:
		return "f"
	case FormatIndex:
		return "i"
	default:
		return "s"
	}
}
