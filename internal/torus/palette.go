package torus

// Reset is the neutral colour token; every empty cell carries it.
const Reset = "\x1b[0m"

// Shade pairs a 256-colour foreground escape with the glyph drawn in it.
type Shade struct {
	Color string
	Glyph string
}

// Palette is ordered from least to most lit. The order is the visual gradient.
var Palette = [...]Shade{
	{"\x1b[38;5;240m", "·"},
	{"\x1b[38;5;244m", ","},
	{"\x1b[38;5;248m", "-"},
	{"\x1b[38;5;250m", "~"},
	{"\x1b[38;5;252m", ":"},
	{"\x1b[38;5;255m", ";"},
	{"\x1b[38;5;153m", "="},
	{"\x1b[38;5;117m", "!"},
	{"\x1b[38;5;51m", "*"},
	{"\x1b[38;5;50m", "#"},
	{"\x1b[38;5;48m", "$"},
	{"\x1b[38;5;46m", "@"},
}

// shadeIndex buckets a luminance in [-1, 1] into the palette, clamping anything outside.
func shadeIndex(lum float64) int {
	n := len(Palette)
	i := int((lum + 1) * float64(n-1) / 2)
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
