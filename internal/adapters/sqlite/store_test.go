package sqlite

import (
	"path/filepath"
	"testing"

	"folio/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state", "folio.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveLoadClear(t *testing.T) {
	store := openTestStore(t)

	doc := domain.Document{
		"heading": "Edited",
		"projects": []any{
			map[string]any{"title": "One"},
		},
	}
	if err := store.Save(domain.Portfolio, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Load(domain.Portfolio)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("saved working copy not found")
	}
	if !got.Equal(doc) {
		t.Errorf("round trip mismatch:\ngot:  %#v\nwant: %#v", got, doc)
	}

	if err := store.Clear(domain.Portfolio); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := store.Load(domain.Portfolio); ok {
		t.Error("working copy still present after Clear")
	}
}

func TestLoadMissingDomain(t *testing.T) {
	store := openTestStore(t)

	doc, ok, err := store.Load(domain.Home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || doc != nil {
		t.Errorf("Load on empty store = %v, %v", doc, ok)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	store.Save(domain.Home, domain.Document{"v": "old"})
	store.Save(domain.Home, domain.Document{"v": "new"})

	got, ok, err := store.Load(domain.Home)
	if err != nil || !ok {
		t.Fatalf("Load: %v, %v", ok, err)
	}
	if got["v"] != "new" {
		t.Errorf("v = %v, want new", got["v"])
	}
}

func TestCorruptRowReadsAsAbsent(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		`INSERT INTO working_copies (domain, content, updated_at) VALUES ('home', 'not json', 0)`,
	)
	if err != nil {
		t.Fatal(err)
	}

	doc, ok, err := store.Load(domain.Home)
	if err != nil {
		t.Fatalf("a corrupt row must not fail the load: %v", err)
	}
	if ok || doc != nil {
		t.Errorf("corrupt row should read as absent, got %v, %v", doc, ok)
	}

	// The corrupt row is dropped, not left to trip the next load.
	var count int
	store.db.QueryRow(`SELECT COUNT(*) FROM working_copies WHERE domain = 'home'`).Scan(&count)
	if count != 0 {
		t.Errorf("corrupt row still present (%d rows)", count)
	}
}

func TestDomainsCachedIndependently(t *testing.T) {
	store := openTestStore(t)

	store.Save(domain.Home, domain.Document{"page": "home"})
	store.Save(domain.About, domain.Document{"page": "about"})
	store.Clear(domain.Home)

	if _, ok, _ := store.Load(domain.Home); ok {
		t.Error("home should be cleared")
	}
	got, ok, _ := store.Load(domain.About)
	if !ok || got["page"] != "about" {
		t.Errorf("about = %v, %v", got, ok)
	}
}

func TestSessionFlagRoundTrip(t *testing.T) {
	store := openTestStore(t)

	ok, err := store.IsAuthenticated()
	if err != nil {
		t.Fatalf("IsAuthenticated: %v", err)
	}
	if ok {
		t.Error("fresh store should not be authenticated")
	}

	if err := store.SetAuthenticated(true); err != nil {
		t.Fatalf("SetAuthenticated(true): %v", err)
	}
	if ok, _ := store.IsAuthenticated(); !ok {
		t.Error("flag not persisted")
	}

	if err := store.SetAuthenticated(false); err != nil {
		t.Fatalf("SetAuthenticated(false): %v", err)
	}
	if ok, _ := store.IsAuthenticated(); ok {
		t.Error("flag not cleared")
	}
}

func TestFlagSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.SetAuthenticated(true)
	store.Save(domain.Home, domain.Document{"heading": "Edited"})
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	if ok, _ := store.IsAuthenticated(); !ok {
		t.Error("session flag lost across reopen")
	}
	doc, ok, _ := store.Load(domain.Home)
	if !ok || doc["heading"] != "Edited" {
		t.Errorf("working copy lost across reopen: %v, %v", doc, ok)
	}
}
