package heroes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	domainheroes "heroes-service/internal/domain/heroes"
	"heroes-service/internal/filestore"
)

func newFileRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	dir := t.TempDir()
	return NewRepository(filestore.New(dir, nil), "heroes.json"), dir
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("hero-%d", n)
	}
}

func seed(t *testing.T, r *Repository, count int) []domainheroes.Hero {
	t.Helper()
	for i := 0; i < count; i++ {
		if _, err := r.Add(); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	heroes, err := r.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	return heroes
}

func TestListEmptyWhenNoFile(t *testing.T) {
	repo, _ := newFileRepo(t)

	heroes, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if heroes == nil || len(heroes) != 0 {
		t.Fatalf("expected empty non-nil roster, got %#v", heroes)
	}
}

func TestAddAppendsBlankHeroWithUniqueID(t *testing.T) {
	repo, _ := newFileRepo(t)
	before := seed(t, repo, 2)

	hero, err := repo.Add()
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	after, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(after) != len(before)+1 {
		t.Fatalf("expected length %d, got %d", len(before)+1, len(after))
	}
	last := after[len(after)-1]
	if last != hero {
		t.Fatalf("expected last hero %+v to equal returned %+v", last, hero)
	}
	if hero.ID == "" || hero.Name != "" || hero.Level != "" || hero.Power != "" {
		t.Fatalf("unexpected new hero %+v", hero)
	}
	for _, h := range before {
		if h.ID == hero.ID {
			t.Fatalf("expected unique id, %s already present", hero.ID)
		}
	}
}

func TestAddPersistsToFile(t *testing.T) {
	repo, dir := newFileRepo(t)
	if _, err := repo.Add(); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "heroes.json")); err != nil {
		t.Fatalf("expected heroes.json to be written: %v", err)
	}

	reopened := NewRepository(filestore.New(dir, nil), "heroes.json")
	heroes, err := reopened.List()
	if err != nil || len(heroes) != 1 {
		t.Fatalf("expected persisted hero, got %v (err %v)", heroes, err)
	}
}

func TestUpdateEachEditableField(t *testing.T) {
	for _, field := range []string{domainheroes.FieldName, domainheroes.FieldLevel, domainheroes.FieldPower} {
		t.Run(field, func(t *testing.T) {
			repo, _ := newFileRepo(t)
			before := seed(t, repo, 3)
			target := before[1]

			if err := repo.Update(target.ID, field, "changed"); err != nil {
				t.Fatalf("update failed: %v", err)
			}
			after, err := repo.List()
			if err != nil {
				t.Fatalf("list failed: %v", err)
			}

			want := append([]domainheroes.Hero(nil), before...)
			want[1].Set(field, "changed")
			if !reflect.DeepEqual(after, want) {
				t.Fatalf("expected %+v, got %+v", want, after)
			}
		})
	}
}

func TestUpdateDisallowedFieldIsNoop(t *testing.T) {
	repo, _ := newFileRepo(t)
	before := seed(t, repo, 2)

	for _, field := range []string{"id", "strength", ""} {
		if err := repo.Update(before[0].ID, field, "hacked"); err != nil {
			t.Fatalf("expected success for field %q, got %v", field, err)
		}
	}
	after, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(after, before) {
		t.Fatalf("expected roster unchanged, got %+v", after)
	}
}

func TestUpdateUnknownIDIsNoopButSaves(t *testing.T) {
	backend := &memoryBackend{}
	repo := newRepository(backend, sequentialIDs())
	seed(t, repo, 1)
	saves := backend.saves

	if err := repo.Update("missing", domainheroes.FieldName, "x"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if backend.saves != saves+1 {
		t.Fatalf("expected unconditional save, got %d saves", backend.saves-saves)
	}
	if backend.heroes[0].Name != "" {
		t.Fatalf("expected hero unchanged, got %+v", backend.heroes[0])
	}
}

func TestDeleteRemovesOnlyMatchAndKeepsOrder(t *testing.T) {
	repo := newRepository(&memoryBackend{}, sequentialIDs())
	before := seed(t, repo, 4)

	if err := repo.Delete(before[1].ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	after, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []domainheroes.Hero{before[0], before[2], before[3]}
	if !reflect.DeepEqual(after, want) {
		t.Fatalf("expected %+v, got %+v", want, after)
	}
}

func TestDeleteUnknownIDLeavesRoster(t *testing.T) {
	repo, _ := newFileRepo(t)
	before := seed(t, repo, 2)

	if err := repo.Delete("missing"); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	after, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(after, before) {
		t.Fatalf("expected roster unchanged, got %+v", after)
	}
}

func TestBackendErrorsPropagate(t *testing.T) {
	loadErr := errors.New("unreadable")
	repo := newRepository(&memoryBackend{loadErr: loadErr}, nil)

	if _, err := repo.List(); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error from list, got %v", err)
	}
	if _, err := repo.Add(); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error from add, got %v", err)
	}
	if err := repo.Update("id", "name", "v"); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error from update, got %v", err)
	}
	if err := repo.Delete("id"); !errors.Is(err, loadErr) {
		t.Fatalf("expected load error from delete, got %v", err)
	}

	saveErr := errors.New("unwritable")
	repo = newRepository(&memoryBackend{saveErr: saveErr}, nil)
	if _, err := repo.Add(); !errors.Is(err, saveErr) {
		t.Fatalf("expected save error from add, got %v", err)
	}
}

func TestCorruptFileSurfacesError(t *testing.T) {
	repo, dir := newFileRepo(t)
	if err := os.WriteFile(filepath.Join(dir, "heroes.json"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := repo.List(); err == nil {
		t.Fatalf("expected error for corrupt roster")
	}
}

func TestNumericFieldsOnDiskStillLoadAndUpdate(t *testing.T) {
	repo, dir := newFileRepo(t)
	data := []byte(`[{"id":"h1","name":"Aria","level":4,"power":null,"guild":"north"}]`)
	if err := os.WriteFile(filepath.Join(dir, "heroes.json"), data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := repo.Update("h1", domainheroes.FieldPower, "frost"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	heroes, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []domainheroes.Hero{{ID: "h1", Name: "Aria", Level: "4", Power: "frost"}}
	if !reflect.DeepEqual(heroes, want) {
		t.Fatalf("expected %+v, got %+v", want, heroes)
	}
}

type memoryBackend struct {
	heroes  []domainheroes.Hero
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryBackend) LoadHeroes() ([]domainheroes.Hero, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]domainheroes.Hero(nil), m.heroes...), nil
}

func (m *memoryBackend) SaveHeroes(heroes []domainheroes.Hero) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.heroes = append([]domainheroes.Hero(nil), heroes...)
	return nil
}

func TestConcurrentAddsAreNotLost(t *testing.T) {
	repo, _ := newFileRepo(t)

	const workers = 20
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, err := repo.Add()
			errs <- err
		}()
	}
	for i := 0; i < workers; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	heroes, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(heroes) != workers {
		t.Fatalf("expected %d heroes, got %d", workers, len(heroes))
	}
}
