// Package pango builds pango-markup decorated entries for rofi windows
// running with markup rows enabled. The produced strings are opaque to
// the rofi package; they are just candidates like any other.
package pango

import "strings"

// FontSize е размер на шрифта в pango markup
type FontSize int

const (
	SizeVerySmall FontSize = iota
	SizeSmall
	SizeMedium
	SizeLarge
	SizeVeryLarge
)

func (s FontSize) value() string {
	switch s {
	case SizeVerySmall:
		return "xx-small"
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	case SizeVeryLarge:
		return "xx-large"
	default:
		return "medium"
	}
}

// Weight е тегло на шрифта
type Weight int

const (
	WeightNormal Weight = iota
	WeightLight
	WeightUltraLight
	WeightBold
	WeightUltraBold
	WeightHeavy
)

func (w Weight) value() string {
	switch w {
	case WeightLight:
		return "light"
	case WeightUltraLight:
		return "ultralight"
	case WeightBold:
		return "bold"
	case WeightUltraBold:
		return "ultrabold"
	case WeightHeavy:
		return "heavy"
	default:
		return "normal"
	}
}

// Slant е наклон на шрифта
type Slant int

const (
	SlantNormal Slant = iota
	SlantItalic
	SlantOblique
)

func (s Slant) value() string {
	switch s {
	case SlantItalic:
		return "italic"
	case SlantOblique:
		return "oblique"
	default:
		return "normal"
	}
}

// Underline е стил на подчертаване
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineLow
	UnderlineError
)

func (u Underline) value() string {
	switch u {
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	case UnderlineLow:
		return "low"
	case UnderlineError:
		return "error"
	default:
		return "none"
	}
}

type attribute struct {
	key   string
	value string
}

// Pango decorates one entry. Attributes are accumulated in call order
// and emitted as a single span element by Build.
type Pango struct {
	content string
	attrs   []attribute
}

// New creates a decorator around the given entry text.
func New(content string) *Pango {
	return &Pango{content: content}
}

func (p *Pango) add(key, value string) *Pango {
	p.attrs = append(p.attrs, attribute{key: key, value: value})
	return p
}

// Font sets the font family.
func (p *Pango) Font(family string) *Pango {
	return p.add("face", family)
}

// Size sets the font size class.
func (p *Pango) Size(size FontSize) *Pango {
	return p.add("size", size.value())
}

// FgColor sets the foreground color, e.g. "#deadbe".
func (p *Pango) FgColor(color string) *Pango {
	return p.add("foreground", color)
}

// BgColor sets the background color.
func (p *Pango) BgColor(color string) *Pango {
	return p.add("background", color)
}

// Weight sets the font weight.
func (p *Pango) Weight(weight Weight) *Pango {
	return p.add("weight", weight.value())
}

// Slant sets the font slant style.
func (p *Pango) Slant(slant Slant) *Pango {
	return p.add("style", slant.value())
}

// Underline sets the underline style.
func (p *Pango) Underline(underline Underline) *Pango {
	return p.add("underline", underline.value())
}

// Strikethrough enables strikethrough.
func (p *Pango) Strikethrough() *Pango {
	return p.add("strikethrough", "true")
}

// Build връща markup реда. Съдържанието се escape-ва; без атрибути се
// връща само escape-натото съдържание, без span елемент.
func (p *Pango) Build() string {
	if len(p.attrs) == 0 {
		return Escape(p.content)
	}

	var b strings.Builder
	b.WriteString("<span")
	for _, a := range p.attrs {
		b.WriteString(" ")
		b.WriteString(a.key)
		b.WriteString("='")
		b.WriteString(a.value)
		b.WriteString("'")
	}
	b.WriteString(">")
	b.WriteString(Escape(p.content))
	b.WriteString("</span>")
	return b.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	"\"", "&quot;",
)

// Escape escapes the characters pango markup treats specially.
func Escape(s string) string {
	return escaper.Replace(s)
}
