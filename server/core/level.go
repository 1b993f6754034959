package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/ricochet/assets"
	"github.com/automoto/ricochet/shared/leveldata"
)

// LoadArena resolves name to arena data. A value ending in .tmx is read from
// disk; anything else names an arena bundled with the binary.
func LoadArena(name string) (*leveldata.ArenaData, string, error) {
	if !strings.HasSuffix(name, ".tmx") {
		data, err := assets.LoadArena(name)
		return data, name, err
	}

	dir, file := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.LoadArena(os.DirFS(dir), file)
	if err != nil {
		return nil, "", fmt.Errorf("arena file: %w", err)
	}
	return data, strings.TrimSuffix(file, ".tmx"), nil
}

// LoadAllArenas loads every .tmx arena in dir on disk, keyed by stem name,
// plus a sorted name list.
func LoadAllArenas(dir string) (map[string]*leveldata.ArenaData, []string, error) {
	arenas, names, err := leveldata.LoadAllArenas(os.DirFS(dir), ".")
	if err != nil {
		return nil, nil, fmt.Errorf("load all arenas: %w", err)
	}
	return arenas, names, nil
}
