package assets

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager загружает TTF-шрифт один раз и кэширует начертания по размеру.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager parses the TrueType font at path. An empty path selects the bundled
// Go Regular font.
func NewFontManager(path string) (*FontManager, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file: %w", err)
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{
		font:  tt,
		faces: make(map[float64]font.Face),
	}, nil
}

// Face returns the face of the given pixel size, creating it on first use.
func (m *FontManager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Шрифт уже разобран, ошибка здесь возможна только при неверном размере.
		panic(fmt.Sprintf("assets: cannot create face of size %g: %v", size, err))
	}
	m.faces[size] = face
	return face
}

// Cleanup releases every cached face.
func (m *FontManager) Cleanup() {
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
}
