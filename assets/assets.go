// Package assets bundles the arena maps shipped with the server binary.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/ricochet/shared/leveldata"
)

// ArenaDir is the directory inside FS holding .tmx arenas.
const ArenaDir = "arenas"

var (
	//go:embed all:arenas
	arenaFS embed.FS
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return arenaFS
}

// MustLoadArena loads a bundled arena by stem name and panics on failure.
func MustLoadArena(name string) *leveldata.ArenaData {
	data, err := LoadArena(name)
	if err != nil {
		panic(err)
	}
	return data
}

// LoadArena loads a bundled arena by stem name.
func LoadArena(name string) (*leveldata.ArenaData, error) {
	path := fmt.Sprintf("%s/%s.tmx", ArenaDir, name)
	data, err := leveldata.LoadArena(arenaFS, path)
	if err != nil {
		return nil, fmt.Errorf("bundled arena %q: %w", name, err)
	}
	return data, nil
}
