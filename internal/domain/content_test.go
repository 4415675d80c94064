package domain

import "testing"

func TestParseName(t *testing.T) {
	for _, n := range All() {
		got, err := ParseName(string(n))
		if err != nil {
			t.Errorf("ParseName(%q) returned error: %v", n, err)
		}
		if got != n {
			t.Errorf("ParseName(%q) = %q", n, got)
		}
	}

	if _, err := ParseName("settings"); err == nil {
		t.Error("ParseName should reject an unknown domain")
	}
	if _, err := ParseName(""); err == nil {
		t.Error("ParseName should reject the empty string")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name Name
		want string
	}{
		{Home, "home_content.json"},
		{Portfolio, "portfolio_content.json"},
		{Footer, "footer_content.json"},
		{Global, "global_settings.json"},
	}
	for _, tt := range tests {
		if got := tt.name.FileName(); got != tt.want {
			t.Errorf("%s.FileName() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAllIncludesGlobal(t *testing.T) {
	all := All()
	if len(all) != len(Pages())+1 {
		t.Fatalf("All() has %d domains, want %d", len(all), len(Pages())+1)
	}
	if all[len(all)-1] != Global {
		t.Errorf("All() should end with %q, got %q", Global, all[len(all)-1])
	}
}

func TestDefaultRecord(t *testing.T) {
	rec := DefaultRecord("projects")
	if rec["title"] != "New Project" {
		t.Errorf("projects record title = %v", rec["title"])
	}
	if _, ok := rec["tags"].([]any); !ok {
		t.Errorf("projects record tags should be a list, got %T", rec["tags"])
	}

	if rec := DefaultRecord("links"); len(rec) != 2 {
		t.Errorf("links record = %v, want label and url", rec)
	}

	if rec := DefaultRecord("unknown"); len(rec) != 0 {
		t.Errorf("unknown list should get an empty record, got %v", rec)
	}
}
