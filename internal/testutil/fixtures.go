package testutil

import (
	"encoding/json"
	"testing"

	appheroes "heroes-service/internal/app/heroes"
	appprogression "heroes-service/internal/app/progression"
	domainheroes "heroes-service/internal/domain/heroes"
	domainprogression "heroes-service/internal/domain/progression"
	"heroes-service/internal/filestore"
)

// Default document names used by tests.
const (
	HeroesFile      = "heroes.json"
	ProgressionFile = "progression.json"
)

// SampleHero returns a filled-in hero with the provided id.
func SampleHero(id string) domainheroes.Hero {
	return domainheroes.Hero{ID: id, Name: "Aria", Level: "3", Power: "frost"}
}

// SampleProgression returns a non-default progression.
func SampleProgression() domainprogression.Progression {
	return domainprogression.Progression{
		Wins:          json.RawMessage(`4`),
		Losses:        json.RawMessage(`1`),
		StagesCleared: json.RawMessage(`2`),
		Achievements:  json.RawMessage(`["first blood"]`),
	}
}

// Repos bundles file-backed repositories sharing one temp data dir.
type Repos struct {
	Store       *filestore.Store
	Heroes      *appheroes.Repository
	Progression *appprogression.Repository
}

// NewRepos builds repositories rooted in a fresh temp dir.
func NewRepos(t *testing.T) Repos {
	t.Helper()
	store := filestore.New(t.TempDir(), nil)
	return Repos{
		Store:       store,
		Heroes:      appheroes.NewRepository(store, HeroesFile),
		Progression: appprogression.NewRepository(store, ProgressionFile),
	}
}
