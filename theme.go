package htmldeck

// Color is a six-digit uppercase sRGB hex value without the leading "#",
// e.g. "D4AF37".
type Color string

// Brand palette lifted from the presentation's stylesheet.
const (
	BrandGold   Color = "D4AF37"
	BrandDark   Color = "B8941F"
	DarkBlue    Color = "1A1A2E"
	SurfaceBlue Color = "16213E"
	AccentBlue  Color = "0F3460"
	White       Color = "FFFFFF"
	LightGray   Color = "CCCCCC"
)

// Theme holds the fixed styling applied to every rendered slide. Font sizes
// are in points.
type Theme struct {
	Background Color

	TitleColor     Color
	TitleSize      int // title on content slides
	TitleSlideSize int // title on the title slide

	SubtitleColor Color
	SubtitleSize  int
	SubtitleLines []string

	BodyColor      Color
	BodySize       int
	BodySpaceAfter int // points of spacing after every body paragraph

	BulletSize        int
	BulletSpaceBefore int // extra points of spacing before bullet paragraphs
}

// DefaultTheme returns the Pride Dealer Services brand theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     DarkBlue,
		TitleColor:     BrandGold,
		TitleSize:      32,
		TitleSlideSize: 44,
		SubtitleColor:  LightGray,
		SubtitleSize:   18,
		SubtitleLines: []string{
			"Investment Presentation",
			"National Detail & Condition Reports Company",
		},
		BodyColor:         White,
		BodySize:          14,
		BodySpaceAfter:    8,
		BulletSize:        12,
		BulletSpaceBefore: 4,
	}
}
