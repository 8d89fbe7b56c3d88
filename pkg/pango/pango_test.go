package pango

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPlain(t *testing.T) {
	assert.Equal(t, "Option 1", New("Option 1").Build())
}

func TestBuildSpan(t *testing.T) {
	got := New("Option 1").
		Size(SizeSmall).
		FgColor("#666000").
		Build()
	assert.Equal(t, "<span size='small' foreground='#666000'>Option 1</span>", got)
}

func TestBuildAllAttributes(t *testing.T) {
	got := New("x").
		Font("monospace").
		Size(SizeVeryLarge).
		FgColor("#deadbe").
		BgColor("#000000").
		Weight(WeightBold).
		Slant(SlantItalic).
		Underline(UnderlineSingle).
		Strikethrough().
		Build()

	want := "<span face='monospace' size='xx-large' foreground='#deadbe'" +
		" background='#000000' weight='bold' style='italic'" +
		" underline='single' strikethrough='true'>x</span>"
	assert.Equal(t, want, got)
}

func TestBuildEscapesContent(t *testing.T) {
	got := New("a < b & c").Weight(WeightLight).Build()
	assert.Equal(t, "<span weight='light'>a &lt; b &amp; c</span>", got)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&#39;&quot;", Escape(`&<>'"`))
	assert.Equal(t, "plain", Escape("plain"))
}

func TestAttributeValues(t *testing.T) {
	assert.Equal(t, "xx-small", SizeVerySmall.value())
	assert.Equal(t, "medium", SizeMedium.value())
	assert.Equal(t, "normal", WeightNormal.value())
	assert.Equal(t, "ultrabold", WeightUltraBold.value())
	assert.Equal(t, "oblique", SlantOblique.value())
	assert.Equal(t, "none", UnderlineNone.value())
	assert.Equal(t, "error", UnderlineError.value())
}
