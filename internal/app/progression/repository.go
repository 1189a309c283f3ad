package progression

import (
	"sync"

	domainprogression "heroes-service/internal/domain/progression"
	"heroes-service/internal/filestore"
)

// Backend loads and saves the progression document.
type Backend interface {
	LoadProgression() (domainprogression.Progression, error)
	SaveProgression(p domainprogression.Progression) error
}

// Repository owns the singleton progression document.
type Repository struct {
	mu      sync.Mutex
	backend Backend
}

// NewRepository stores progression as the named document in store.
func NewRepository(store *filestore.Store, name string) *Repository {
	return newRepository(fileBackend{store: store, name: name})
}

func newRepository(backend Backend) *Repository {
	return &Repository{backend: backend}
}

// Get returns the persisted progression, or the default when none exists yet.
func (r *Repository) Get() (domainprogression.Progression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Update overwrites each key present in patch and saves.
func (r *Repository) Update(patch domainprogression.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.load()
	if err != nil {
		return err
	}
	return r.backend.SaveProgression(current.Apply(patch))
}

// Reset replaces the stored document with the default and returns it.
func (r *Repository) Reset() (domainprogression.Progression, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fresh := domainprogression.Default()
	if err := r.backend.SaveProgression(fresh); err != nil {
		return domainprogression.Progression{}, err
	}
	return fresh, nil
}

func (r *Repository) load() (domainprogression.Progression, error) {
	p, err := r.backend.LoadProgression()
	if err != nil {
		return domainprogression.Progression{}, err
	}
	return p.Normalize(), nil
}

type fileBackend struct {
	store *filestore.Store
	name  string
}

func (b fileBackend) LoadProgression() (domainprogression.Progression, error) {
	return filestore.Load(b.store, b.name, domainprogression.Default())
}

func (b fileBackend) SaveProgression(p domainprogression.Progression) error {
	return b.store.Save(b.name, p)
}
