package rofi

import "fmt"

// widthKind е вариантът на Width
type widthKind int

const (
	widthNone widthKind = iota
	widthPercentage
	widthPixels
	widthCharacters
)

// Width overrides the window width from the rofi theme. The zero value
// leaves the theme width untouched.
type Width struct {
	kind  widthKind
	value int
}

// Percentage returns a width as a percentage of the screen, valid between 0 and 100.
func Percentage(v int) Width {
	return Width{kind: widthPercentage, value: v}
}

// Pixels returns a width in pixels, valid above 100.
func Pixels(v int) Width {
	return Width{kind: widthPixels, value: v}
}

// Characters returns a width estimated from a number of characters.
func Characters(v int) Width {
	return Width{kind: widthCharacters, value: v}
}

// Check валидира стойността спрямо вида на width
func (w Width) Check() error {
	switch w.kind {
	case widthPercentage:
		if w.value > 100 {
			return fmt.Errorf("%w: percentage must be between 0 and 100", ErrInvalidWidth)
		}
	case widthPixels:
		if w.value <= 100 {
			return fmt.Errorf("%w: pixels must be larger than 100", ErrInvalidWidth)
		}
	}
	return nil
}

// args връща command line аргументите за rofi
func (w Width) args() []string {
	switch w.kind {
	case widthPercentage, widthPixels:
		return []string{"-width", fmt.Sprintf("%d", w.value)}
	case widthCharacters:
		return []string{"-width", fmt.Sprintf("-%d", w.value)}
	default:
		return nil
	}
}
