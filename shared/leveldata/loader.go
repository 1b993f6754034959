package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	layerWalls       = "walls"
	groupWalls       = "Walls"
	groupAgentSpawns = "AgentSpawn"
	groupTurrets     = "Turrets"
	groupTargets     = "Targets"

	defaultTurretHeight = 1.0
)

// LoadArena parses a TMX file into ArenaData. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Width: float64(arenaMap.Width * arenaMap.TileWidth),
		Depth: float64(arenaMap.Height * arenaMap.TileHeight),
	}

	// Each non-empty tile in the walls layer is one wall block
	tileW := float64(arenaMap.TileWidth)
	tileD := float64(arenaMap.TileHeight)
	for _, layer := range arenaMap.Layers {
		if layer.Name != layerWalls {
			continue
		}
		for y := 0; y < arenaMap.Height; y++ {
			for x := 0; x < arenaMap.Width; x++ {
				idx := y*arenaMap.Width + x
				if idx >= len(layer.Tiles) || layer.Tiles[idx].IsNil() {
					continue
				}
				data.Walls = append(data.Walls, WallRect{
					X: float64(x) * tileW,
					Z: float64(y) * tileD,
					W: tileW,
					D: tileD,
				})
			}
		}
		break
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case groupWalls:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Walls = append(data.Walls, WallRect{X: o.X, Z: o.Y, W: o.Width, D: o.Height})
			}
		case groupAgentSpawns:
			for _, o := range og.Objects {
				data.AgentSpawns = append(data.AgentSpawns, SpawnPoint{
					X:     o.X,
					Z:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
					Speed: o.Properties.GetFloat("speed"),
				})
			}
		case groupTurrets:
			for _, o := range og.Objects {
				arch := o.Properties.GetString("archetype")
				if arch == "" {
					return nil, fmt.Errorf("%s: turret %d has no archetype", tmxPath, o.ID)
				}
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					height = defaultTurretHeight
				}
				data.Turrets = append(data.Turrets, TurretSpawn{
					X:         o.X,
					Z:         o.Y,
					Height:    height,
					Archetype: arch,
				})
			}
		case groupTargets:
			for _, o := range og.Objects {
				data.Targets = append(data.Targets, TargetPoint{X: o.X, Z: o.Y, Name: o.Name})
			}
		}
	}

	// Stable spawn order regardless of authoring order
	sort.SliceStable(data.AgentSpawns, func(i, j int) bool {
		return data.AgentSpawns[i].Index < data.AgentSpawns[j].Index
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		data, err := LoadArena(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		stem := strings.TrimSuffix(path.Base(match), ".tmx")
		arenas[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return arenas, names, nil
}
