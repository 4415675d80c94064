package application

import (
	"context"
	"errors"
	"testing"

	"folio/internal/domain"
)

// fakeSource serves canned documents and counts loads per domain.
type fakeSource struct {
	docs  map[domain.Name]domain.Document
	err   error
	loads map[domain.Name]int
}

func newFakeSource(docs map[domain.Name]domain.Document) *fakeSource {
	return &fakeSource{docs: docs, loads: make(map[domain.Name]int)}
}

func (f *fakeSource) LoadGlobalSettings(ctx context.Context) (domain.Document, error) {
	return f.load(domain.Global)
}

func (f *fakeSource) LoadPage(ctx context.Context, name domain.Name) (domain.Document, error) {
	return f.load(name)
}

func (f *fakeSource) LoadAll(ctx context.Context) (map[domain.Name]domain.Document, error) {
	out := make(map[domain.Name]domain.Document)
	for _, name := range domain.All() {
		doc, err := f.load(name)
		if err != nil {
			return nil, err
		}
		out[name] = doc
	}
	return out, nil
}

func (f *fakeSource) load(name domain.Name) (domain.Document, error) {
	f.loads[name]++
	if f.err != nil {
		return nil, f.err
	}
	return f.docs[name].Clone(), nil
}

func TestSessionLoadsOnce(t *testing.T) {
	source := newFakeSource(map[domain.Name]domain.Document{
		domain.Home: {"heading": "Welcome"},
	})
	editor := NewEditor(source, nil, nil)
	ctx := context.Background()

	first, err := editor.Session(ctx, domain.Home)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	second, err := editor.Session(ctx, domain.Home)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if first != second {
		t.Error("repeated Session calls should return the same session")
	}
	if source.loads[domain.Home] != 1 {
		t.Errorf("home loaded %d times, want 1", source.loads[domain.Home])
	}
}

func TestSessionGlobalUsesSettingsLoader(t *testing.T) {
	source := newFakeSource(map[domain.Name]domain.Document{
		domain.Global: {"siteName": "Folio"},
	})
	editor := NewEditor(source, nil, nil)

	s, err := editor.Session(context.Background(), domain.Global)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	got, _ := s.Working().Get(domain.ParsePath("siteName"))
	if got != "Folio" {
		t.Errorf("siteName = %v, want Folio", got)
	}
}

func TestSessionDegradesToEmptyDocument(t *testing.T) {
	source := newFakeSource(nil)
	source.err = errors.New("connection refused")
	editor := NewEditor(source, nil, nil)

	s, err := editor.Session(context.Background(), domain.About)
	if err != nil {
		t.Fatalf("a failing source must not surface as a session error: %v", err)
	}
	if len(s.Working()) != 0 {
		t.Errorf("working copy should be empty, got %#v", s.Working())
	}
	if s.Dirty() {
		t.Error("an empty session should be clean")
	}
}

func TestSessionRestoresCachedWorkingCopy(t *testing.T) {
	source := newFakeSource(map[domain.Name]domain.Document{
		domain.Home: {"heading": "Welcome"},
	})
	cache := newFakeCache()
	cache.Save(domain.Home, domain.Document{"heading": "Edited earlier"})

	editor := NewEditor(source, cache, nil)
	s, err := editor.Session(context.Background(), domain.Home)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}

	got, _ := s.Working().Get(domain.ParsePath("heading"))
	if got != "Edited earlier" {
		t.Errorf("working heading = %v, want cached edit", got)
	}
	// The fresh load is still the seed: dirty, not silently adopted.
	if !s.Dirty() {
		t.Error("restored edits over a differing seed should read dirty")
	}
}

func TestSessionIgnoresBrokenCache(t *testing.T) {
	source := newFakeSource(map[domain.Name]domain.Document{
		domain.Home: {"heading": "Welcome"},
	})
	cache := newFakeCache()
	cache.loadErr = errors.New("corrupt row")

	editor := NewEditor(source, cache, nil)
	s, err := editor.Session(context.Background(), domain.Home)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	got, _ := s.Working().Get(domain.ParsePath("heading"))
	if got != "Welcome" {
		t.Errorf("working heading = %v, want the seed value", got)
	}
}

func TestStatuses(t *testing.T) {
	source := newFakeSource(map[domain.Name]domain.Document{
		domain.Home:  {"heading": "Welcome"},
		domain.About: {"bio": "Hi"},
	})
	editor := NewEditor(source, nil, nil)
	ctx := context.Background()

	s, err := editor.Session(ctx, domain.About)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	s.SetField("bio", "Changed")

	statuses, err := editor.Statuses(ctx)
	if err != nil {
		t.Fatalf("Statuses: %v", err)
	}
	if len(statuses) != len(domain.All()) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(domain.All()))
	}
	for _, st := range statuses {
		wantDirty := st.Name == domain.About
		if st.Dirty != wantDirty {
			t.Errorf("%s dirty = %v, want %v", st.Name, st.Dirty, wantDirty)
		}
	}
}
