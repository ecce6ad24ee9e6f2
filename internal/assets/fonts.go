// internal/assets/fonts.go
package assets

import (
	"log/slog"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager разбирает встроенный шрифт один раз и кэширует начертания по размеру.
type FontManager struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
	log   *slog.Logger
}

// NewFontManager создаёт менеджер. Если шрифт не разбирается, все начертания
// заменяются на basicfont.
func NewFontManager(logger *slog.Logger) *FontManager {
	m := &FontManager{
		faces: make(map[float64]font.Face),
		log:   logger,
	}
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		logger.Error("failed to parse embedded font, falling back to basicfont", "error", err)
		return m
	}
	m.font = tt
	return m
}

// Face возвращает начертание нужного размера.
func (m *FontManager) Face(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[size]; ok {
		return face
	}
	if m.font == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		m.log.Warn("failed to create font face", "size", size, "error", err)
		return basicfont.Face7x13
	}
	m.faces[size] = face
	m.log.Debug("font face created", "size", size)
	return face
}

// Close освобождает все начертания.
func (m *FontManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, face := range m.faces {
		_ = face.Close()
		delete(m.faces, size)
	}
}
