// Package assets embeds the stock arenas.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/rollsphere/shared/leveldata"
)

// DefaultArena is loaded when no arena is named.
const DefaultArena = "playground"

//go:embed all:arenas
var arenaFS embed.FS

// FS exposes the embedded arenas under the "arenas" directory.
func FS() fs.FS {
	return arenaFS
}

// LoadArena loads an embedded arena by stem name.
func LoadArena(name string) (*leveldata.Arena, error) {
	if name == "" {
		name = DefaultArena
	}
	arena, err := leveldata.LoadArena(arenaFS, "arenas/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("embedded arena %q: %w", name, err)
	}
	return arena, nil
}

// LoadAll loads every embedded arena keyed by name, plus the sorted names.
func LoadAll() (map[string]*leveldata.Arena, []string, error) {
	return leveldata.LoadAllArenas(arenaFS, "arenas")
}
