package application

import (
	"errors"
	"testing"

	"folio/internal/domain"
)

// fakeCache records working-copy mirroring for assertions.
type fakeCache struct {
	saved   map[domain.Name]domain.Document
	saveErr error
	loadErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{saved: make(map[domain.Name]domain.Document)}
}

func (c *fakeCache) Save(name domain.Name, doc domain.Document) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	c.saved[name] = doc.Clone()
	return nil
}

func (c *fakeCache) Load(name domain.Name) (domain.Document, bool, error) {
	if c.loadErr != nil {
		return nil, false, c.loadErr
	}
	doc, ok := c.saved[name]
	if !ok {
		return nil, false, nil
	}
	return doc.Clone(), true, nil
}

func (c *fakeCache) Clear(name domain.Name) error {
	delete(c.saved, name)
	return nil
}

func seedDoc() domain.Document {
	return domain.Document{
		"heading": "Welcome",
		"banner": map[string]any{
			"banners": []any{
				map[string]any{"title": "One", "image": "a.png"},
			},
		},
	}
}

func TestSessionStartsClean(t *testing.T) {
	s := NewEditSession(domain.Home, seedDoc(), nil, nil, nil)
	if s.Dirty() {
		t.Error("fresh session should not be dirty")
	}
}

func TestSetFieldMarksDirty(t *testing.T) {
	s := NewEditSession(domain.Home, seedDoc(), nil, nil, nil)

	if !s.SetField("heading", "Hello") {
		t.Fatal("SetField on an existing field failed")
	}
	if !s.Dirty() {
		t.Error("session should be dirty after an edit")
	}

	got, _ := s.Working().Get(domain.ParsePath("heading"))
	if got != "Hello" {
		t.Errorf("working heading = %v, want Hello", got)
	}

	// The seed keeps the original value.
	got, _ = s.Seed().Get(domain.ParsePath("heading"))
	if got != "Welcome" {
		t.Errorf("seed heading = %v, want Welcome", got)
	}
}

func TestSetFieldRestoringSeedValueClearsDirty(t *testing.T) {
	s := NewEditSession(domain.Home, seedDoc(), nil, nil, nil)
	s.SetField("heading", "Hello")
	s.SetField("heading", "Welcome")
	if s.Dirty() {
		t.Error("restoring the original value by hand should read as clean")
	}
}

func TestSetFieldMissingPathIsNoOp(t *testing.T) {
	s := NewEditSession(domain.Home, seedDoc(), nil, nil, nil)
	if s.SetField("banner.nope.deep", "x") {
		t.Error("SetField through a missing intermediate should fail")
	}
	if s.Dirty() {
		t.Error("a failed SetField must not dirty the session")
	}
}

func TestAppendItem(t *testing.T) {
	s := NewEditSession(domain.Portfolio, seedDoc(), nil, nil, nil)

	record := domain.DefaultRecord("banners")
	if !s.AppendItem("banner.banners", record) {
		t.Fatal("AppendItem on an existing list failed")
	}

	list, ok := s.Working().List(domain.ParsePath("banner.banners"))
	if !ok || len(list) != 2 {
		t.Fatalf("banners after append = %v", list)
	}
	if !s.Dirty() {
		t.Error("append should dirty the session")
	}

	// Mutating the caller's record afterwards must not leak in.
	record["title"] = "tampered"
	list, _ = s.Working().List(domain.ParsePath("banner.banners"))
	appended := list[1].(map[string]any)
	if appended["title"] == "tampered" {
		t.Error("appended record aliases the caller's map")
	}
}

func TestAppendItemCreatesMissingList(t *testing.T) {
	s := NewEditSession(domain.Portfolio, seedDoc(), nil, nil, nil)
	if !s.AppendItem("banner.extras", map[string]any{"label": "x"}) {
		t.Fatal("append should create a list under an existing object")
	}
	list, ok := s.Working().List(domain.ParsePath("banner.extras"))
	if !ok || len(list) != 1 {
		t.Errorf("extras = %v", list)
	}
}

func TestAppendItemMissingParent(t *testing.T) {
	s := NewEditSession(domain.Portfolio, seedDoc(), nil, nil, nil)
	if s.AppendItem("nope.list", map[string]any{}) {
		t.Error("append under a missing parent should fail")
	}
	if s.Dirty() {
		t.Error("failed append must not dirty the session")
	}
}

func TestRemoveItem(t *testing.T) {
	s := NewEditSession(domain.Portfolio, seedDoc(), nil, nil, nil)

	tests := []struct {
		name  string
		index int
		want  bool
	}{
		{"negative index", -1, false},
		{"index past end", 1, false},
		{"valid index", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.RemoveItem("banner.banners", tt.index); got != tt.want {
				t.Errorf("RemoveItem(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}

	list, _ := s.Working().List(domain.ParsePath("banner.banners"))
	if len(list) != 0 {
		t.Errorf("banners after remove = %v, want empty", list)
	}
}

func TestUpdateItemField(t *testing.T) {
	s := NewEditSession(domain.Portfolio, seedDoc(), nil, nil, nil)

	if !s.UpdateItemField("banner.banners", 0, "title", "Renamed") {
		t.Fatal("UpdateItemField on a valid index failed")
	}
	got, _ := s.Working().Get(domain.ParsePath("banner.banners.0.title"))
	if got != "Renamed" {
		t.Errorf("title = %v, want Renamed", got)
	}

	if s.UpdateItemField("banner.banners", 5, "title", "x") {
		t.Error("out-of-range index should no-op")
	}
	if s.UpdateItemField("missing", 0, "title", "x") {
		t.Error("missing list should no-op")
	}
}

func TestReset(t *testing.T) {
	cache := newFakeCache()
	s := NewEditSession(domain.Home, seedDoc(), nil, cache, nil)

	s.SetField("heading", "Hello")
	s.AppendItem("banner.banners", map[string]any{"title": "Two"})
	if !s.Dirty() {
		t.Fatal("edits should dirty the session")
	}
	if _, ok := cache.saved[domain.Home]; !ok {
		t.Fatal("edits should be mirrored to the cache")
	}

	s.Reset()

	if s.Dirty() {
		t.Error("session should be clean after reset")
	}
	if !s.Working().Equal(seedDoc()) {
		t.Errorf("working copy after reset = %#v", s.Working())
	}
	if _, ok := cache.saved[domain.Home]; ok {
		t.Error("reset should drop the cached mirror")
	}
}

func TestWorkingSnapshotsDoNotAlias(t *testing.T) {
	s := NewEditSession(domain.Home, seedDoc(), nil, nil, nil)

	before := s.Working()
	s.SetField("heading", "Hello")
	got, _ := before.Get(domain.ParsePath("heading"))
	if got != "Welcome" {
		t.Errorf("earlier snapshot changed after a later edit: %v", got)
	}

	// Mutating a returned snapshot never reaches the session either.
	snap := s.Working()
	snap.Set(domain.ParsePath("heading"), "tampered")
	got, _ = s.Working().Get(domain.ParsePath("heading"))
	if got != "Hello" {
		t.Errorf("session state changed through a snapshot: %v", got)
	}
}

func TestRestoredWorkingCopy(t *testing.T) {
	restored := seedDoc()
	restored.Set(domain.ParsePath("heading"), "Edited earlier")

	s := NewEditSession(domain.Home, seedDoc(), restored, nil, nil)

	if !s.Dirty() {
		t.Error("session restored over a differing seed should be dirty")
	}
	got, _ := s.Working().Get(domain.ParsePath("heading"))
	if got != "Edited earlier" {
		t.Errorf("working heading = %v", got)
	}
	got, _ = s.Seed().Get(domain.ParsePath("heading"))
	if got != "Welcome" {
		t.Errorf("seed heading = %v, want Welcome", got)
	}
}

func TestCacheFailureDoesNotBlockEdits(t *testing.T) {
	cache := newFakeCache()
	cache.saveErr = errors.New("disk full")
	s := NewEditSession(domain.Home, seedDoc(), nil, cache, nil)

	if !s.SetField("heading", "Hello") {
		t.Fatal("edit should succeed even when the cache write fails")
	}
	got, _ := s.Working().Get(domain.ParsePath("heading"))
	if got != "Hello" {
		t.Errorf("working heading = %v, want Hello", got)
	}
}
