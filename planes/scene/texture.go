package scene

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Texture is an entry in the texture table. Image data lives with the renderer.
type Texture struct {
	ID   uuid.UUID
	Name string
	Path string
}

// TextureTable is append-only; planes keep indices into it.
type TextureTable struct {
	entries []Texture
}

func NewTextureTable() *TextureTable {
	return &TextureTable{}
}

func (t *TextureTable) Register(name, path string) int {
	t.entries = append(t.entries, Texture{
		ID:   uuid.New(),
		Name: name,
		Path: path,
	})
	return len(t.entries) - 1
}

func (t *TextureTable) Lookup(index int) (Texture, error) {
	if index < 0 || index >= len(t.entries) {
		return Texture{}, errors.Wrapf(ErrIndexOutOfRange, "texture %d (len %d)", index, len(t.entries))
	}
	return t.entries[index], nil
}

func (t *TextureTable) Len() int {
	return len(t.entries)
}
