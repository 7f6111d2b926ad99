package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/rollsphere/assets"
	"github.com/automoto/rollsphere/shared/leveldata"
)

// OpenArena loads ref from disk when it names a .tmx file and from the
// embedded arenas otherwise. An empty ref selects the default arena.
func OpenArena(ref string) (*leveldata.Arena, error) {
	if strings.HasSuffix(ref, ".tmx") {
		return LoadArena(ref)
	}
	return assets.LoadArena(ref)
}

// LoadArena loads a single .tmx arena from disk.
func LoadArena(path string) (*leveldata.Arena, error) {
	arena, err := leveldata.LoadArena(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load arena: %w", err)
	}
	return arena, nil
}

// LoadArenas loads every .tmx arena in dir, returning them keyed by stem name
// plus a sorted name list.
func LoadArenas(dir string) (map[string]*leveldata.Arena, []string, error) {
	arenas, names, err := leveldata.LoadAllArenas(os.DirFS(dir), ".")
	if err != nil {
		return nil, nil, fmt.Errorf("load all arenas: %w", err)
	}
	return arenas, names, nil
}
