package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/rollsphere/components"
	"github.com/automoto/rollsphere/gravity"
	cfg "github.com/automoto/rollsphere/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const tuningKey = "tuning"

// itemStore is the subset of gdata.Manager used for saved data.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the gdata store for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		zap.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	store = m
	return nil
}

// LoadTuning loads the saved tuning profile. It returns nil when persistence
// is unavailable or nothing has been saved yet.
func LoadTuning() (*cfg.Tuning, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(tuningKey)
	if err != nil {
		zap.L().Warn("could not load tuning", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		// No saved tuning yet, use defaults
		return nil, nil
	}

	var t cfg.Tuning
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse saved tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("saved tuning: %w", err)
	}
	return &t, nil
}

// SaveTuning persists t after validating it.
func SaveTuning(t cfg.Tuning) error {
	if store == nil {
		return nil
	}
	if err := t.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}
	if err := store.SaveItem(tuningKey, data); err != nil {
		zap.L().Warn("could not save tuning", zap.Error(err))
		return err
	}
	return nil
}

// ClearTuning removes the saved tuning profile.
func ClearTuning() error {
	if store == nil {
		return nil
	}
	// Save empty data to clear the profile
	return store.SaveItem(tuningKey, nil)
}

// ApplyGravity replaces the arena's gravity field and rebinds every actor
// to it.
func ApplyGravity(e *ecs.ECS, p gravity.Provider) {
	if arena := getArena(e); arena != nil {
		arena.Gravity = p
	}
	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		components.Actor.Get(entry).Controller.SetGravity(p)
	})
}

// ApplyTuning pushes t to every actor. Nothing changes if t is invalid.
func ApplyTuning(e *ecs.ECS, t cfg.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	components.Actor.Each(e.World, func(entry *donburi.Entry) {
		_ = components.Actor.Get(entry).Controller.SetTuning(t)
	})
	return nil
}
