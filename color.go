package notion

// Color is the text or background color of rich text and blocks.
type Color string

// Text colors
const (
	DefaultColor Color = "default"
	Gray         Color = "gray"
	Brown        Color = "brown"
	Orange       Color = "orange"
	Yellow       Color = "yellow"
	Green        Color = "green"
	Blue         Color = "blue"
	Purple       Color = "purple"
	Pink         Color = "pink"
	Red          Color = "red"
)

// Background colors
const (
	GrayBackground   Color = "gray_background"
	BrownBackground  Color = "brown_background"
	OrangeBackground Color = "orange_background"
	YellowBackground Color = "yellow_background"
	GreenBackground  Color = "green_background"
	BlueBackground   Color = "blue_background"
	PurpleBackground Color = "purple_background"
	PinkBackground   Color = "pink_background"
	RedBackground    Color = "red_background"
)

var colors = map[Color]bool{
	DefaultColor:     true,
	Gray:             true,
	Brown:            true,
	Orange:           true,
	Yellow:           true,
	Green:            true,
	Blue:             true,
	Purple:           true,
	Pink:             true,
	Red:              true,
	GrayBackground:   true,
	BrownBackground:  true,
	OrangeBackground: true,
	YellowBackground: true,
	GreenBackground:  true,
	BlueBackground:   true,
	PurpleBackground: true,
	PinkBackground:   true,
	RedBackground:    true,
}

// Valid tells if c is one of the known colors.
func (c Color) Valid() bool {
	return colors[c]
}

// Background tells if c is a background color.
func (c Color) Background() bool {
	return len(c) > 11 && c[len(c)-11:] == "_background"
}
