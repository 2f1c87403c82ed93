package stylesheet

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sheet, err := Parse(`
/* detail panel */
.panel { background: #1a1a2e; width: 320px; }
#close, .button { color: #fff; padding: 6 }
button { height: 32px }
div > p { color: #f00 }
@media (max-width: 600px) { .panel { width: 200px } }
.panel { width: 300px }
`)
	require.NoError(t, err)

	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".panel", "#close", ".button", "button", ".panel"}, sels)
	assert.Equal(t, "#1a1a2e", sheet.Rules[0].Props["background"])
	assert.Equal(t, "320px", sheet.Rules[0].Props["width"])
	assert.Equal(t, "6", sheet.Rules[1].Props["padding"])
	assert.Equal(t, "300px", sheet.Rules[4].Props["width"])
}

func TestParse_Empty(t *testing.T) {
	sheet, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse(".panel { color #fff; }")
	assert.Error(t, err)
}

func TestProps_Specificity(t *testing.T) {
	sheet, err := Parse(`
#go { background: #00f }
.button { background: #0f0; color: #000 }
button { background: #f00; width: 40 }
`)
	require.NoError(t, err)

	p := sheet.Props("button", "button", "go")
	assert.Equal(t, "#00f", p["background"])
	assert.Equal(t, "#000", p["color"])
	assert.Equal(t, "40", p["width"])

	p = sheet.Props("label", "", "")
	assert.Empty(t, p)

	var nilSheet *Stylesheet
	assert.Empty(t, nilSheet.Props("button", "", ""))
}

func TestMerge(t *testing.T) {
	a, _ := Parse(".x { width: 1 }")
	b, _ := Parse(".x { width: 2 }")
	m := a.Merge(b)
	assert.Equal(t, "2", m.Props("", "x", "")["width"])
	assert.Len(t, a.Rules, 1)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#102030", color.RGBA{0x10, 0x20, 0x30, 255}, true},
		{"#10203080", color.RGBA{0x10, 0x20, 0x30, 0x80}, true},
		{" #ABC ", color.RGBA{0xaa, 0xbb, 0xcc, 255}, true},
		{"red", color.RGBA{}, false},
		{"#12", color.RGBA{}, false},
		{"#ggg", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestResolve(t *testing.T) {
	c := Resolve(map[string]string{
		"background": "#000000cc",
		"border":     "#fff",
		"width":      "120px",
		"left":       "50%",
		"bottom":     "16",
		"padding":    "-3",
		"font-size":  "18px",
		"color":      "nope",
	})
	assert.Equal(t, color.RGBA{0, 0, 0, 0xcc}, c.Background)
	assert.True(t, c.HasBorder)
	assert.Equal(t, int32(120), c.Width)
	assert.Equal(t, int32(50), c.LeftPct)
	assert.Equal(t, int32(16), c.Bottom)
	assert.Equal(t, int32(4), c.Padding, "negative padding ignored")
	assert.Equal(t, int32(18), c.FontSize)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Color)
}

func TestPlace(t *testing.T) {
	c := Resolve(map[string]string{"width": "100", "height": "40", "right": "10", "bottom": "20"})
	assert.Equal(t, Rect{X: 690, Y: 540, W: 100, H: 40}, c.Place(0, 0, 800, 600))

	c = Resolve(map[string]string{"left": "50%", "top": "8"})
	assert.Equal(t, Rect{X: 350, Y: 8, W: 100, H: 30}, c.Place(100, 30, 800, 600))

	assert.Equal(t, Rect{W: 5, H: 5}, DefaultComputed().Place(5, 5, 800, 600))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29, 19))
	assert.False(t, r.Contains(30, 15))
	assert.False(t, r.Contains(15, 9))
}
