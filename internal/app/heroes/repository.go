package heroes

import (
	"sync"

	"github.com/google/uuid"

	domainheroes "heroes-service/internal/domain/heroes"
	"heroes-service/internal/filestore"
)

// Backend loads and saves the whole hero collection.
type Backend interface {
	LoadHeroes() ([]domainheroes.Hero, error)
	SaveHeroes(heroes []domainheroes.Hero) error
}

// Repository is the hero roster. Every mutation is a full
// load-modify-save cycle, serialized by mu.
type Repository struct {
	mu      sync.Mutex
	backend Backend
	newID   func() string
}

// NewRepository stores the roster as the named document in store.
func NewRepository(store *filestore.Store, name string) *Repository {
	return newRepository(fileBackend{store: store, name: name}, uuid.NewString)
}

func newRepository(backend Backend, newID func() string) *Repository {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Repository{backend: backend, newID: newID}
}

// List returns the persisted roster in insertion order.
func (r *Repository) List() ([]domainheroes.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Add appends a blank hero with a fresh id and returns it.
func (r *Repository) Add() (domainheroes.Hero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	heroes, err := r.load()
	if err != nil {
		return domainheroes.Hero{}, err
	}
	hero := domainheroes.New(r.newID())
	heroes = append(heroes, hero)
	if err := r.backend.SaveHeroes(heroes); err != nil {
		return domainheroes.Hero{}, err
	}
	return hero, nil
}

// Update sets field to value on every hero with the given id. Unknown ids
// and non-editable fields change nothing, and the roster is saved regardless.
func (r *Repository) Update(id, field, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	heroes, err := r.load()
	if err != nil {
		return err
	}
	for i := range heroes {
		if heroes[i].ID == id {
			heroes[i].Set(field, value)
		}
	}
	return r.backend.SaveHeroes(heroes)
}

// Delete drops every hero with the given id, keeping the rest in order.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	heroes, err := r.load()
	if err != nil {
		return err
	}
	kept := make([]domainheroes.Hero, 0, len(heroes))
	for _, h := range heroes {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	return r.backend.SaveHeroes(kept)
}

func (r *Repository) load() ([]domainheroes.Hero, error) {
	heroes, err := r.backend.LoadHeroes()
	if err != nil {
		return nil, err
	}
	if heroes == nil {
		heroes = []domainheroes.Hero{}
	}
	return heroes, nil
}

type fileBackend struct {
	store *filestore.Store
	name  string
}

func (b fileBackend) LoadHeroes() ([]domainheroes.Hero, error) {
	return filestore.Load(b.store, b.name, []domainheroes.Hero{})
}

func (b fileBackend) SaveHeroes(heroes []domainheroes.Hero) error {
	return b.store.Save(b.name, heroes)
}
