package window

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the text faces used by the window, by point size.
// The Go fonts cover the accented Latin letters of the game texts, which
// the ebiten debug font does not.
type Fonts struct {
	Title   *text.GoTextFace // Screen headings
	Heading *text.GoTextFace // Button labels and subtitles
	Body    *text.GoTextFace // Stats and HUD
	Small   *text.GoTextFace // Tutorial details and building names
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load bold font: %w", err)
	}

	return &Fonts{
		Title:   &text.GoTextFace{Source: bold, Size: 56},
		Heading: &text.GoTextFace{Source: bold, Size: 28},
		Body:    &text.GoTextFace{Source: regular, Size: 24},
		Small:   &text.GoTextFace{Source: regular, Size: 18},
	}, nil
}
