package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDSmall FontName = "hud-small"
	MenuItem FontName = "menu-item"
	Title    FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults parses the bundled Go Regular face at every size the
// game draws with. Call once at startup, before any scene renders.
func LoadDefaults() {
	LoadFontWithSize(HUDSmall, goregular.TTF, 12)
	LoadFontWithSize(HUD, goregular.TTF, 16)
	LoadFontWithSize(MenuItem, goregular.TTF, 22)
	LoadFontWithSize(Title, goregular.TTF, 38)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
