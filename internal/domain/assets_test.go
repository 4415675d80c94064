package domain

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{
			name: "empty path stays empty",
			base: "/MadhuPortfolio/",
			path: "",
			want: "",
		},
		{
			name: "absolute http URL unchanged",
			base: "/MadhuPortfolio/",
			path: "http://cdn.example.com/a.png",
			want: "http://cdn.example.com/a.png",
		},
		{
			name: "absolute https URL unchanged",
			base: "/MadhuPortfolio/",
			path: "https://cdn.example.com/a.png",
			want: "https://cdn.example.com/a.png",
		},
		{
			name: "leading slash stripped before joining",
			base: "/MadhuPortfolio/",
			path: "/images/profile.jpg",
			want: "/MadhuPortfolio/images/profile.jpg",
		},
		{
			name: "no leading slash joins the same way",
			base: "/MadhuPortfolio/",
			path: "images/logo.png",
			want: "/MadhuPortfolio/images/logo.png",
		},
		{
			name: "base without trailing slash",
			base: "/MadhuPortfolio",
			path: "images/logo.png",
			want: "/MadhuPortfolio/images/logo.png",
		},
		{
			name: "empty base resolves against root",
			base: "",
			path: "images/logo.png",
			want: "/images/logo.png",
		},
		{
			name: "root base keeps single separator",
			base: "/",
			path: "/images/logo.png",
			want: "/images/logo.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewAssetResolver(tt.base)
			if got := r.Resolve(tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveIdempotentOnResolved(t *testing.T) {
	// Resolving an already-absolute URL any number of times is a no-op.
	r := NewAssetResolver("/MadhuPortfolio/")
	once := r.Resolve("https://example.com/x.png")
	if twice := r.Resolve(once); twice != once {
		t.Errorf("second Resolve changed the value: %q -> %q", once, twice)
	}
}

func TestResolveTree(t *testing.T) {
	r := NewAssetResolver("/MadhuPortfolio/")
	doc := Document{
		"title": "Hello",
		"image": "/images/banner.png",
		"banner": map[string]any{
			"logo":  "logo.svg",
			"count": float64(3),
		},
		"projects": []any{
			map[string]any{
				"title": "One",
				"image": "https://cdn.example.com/one.png",
			},
			map[string]any{
				"title": "Two",
				"image": "two.png",
			},
		},
	}

	got := r.ResolveTree(doc, DefaultPathFields)

	want := Document{
		"title": "Hello",
		"image": "/MadhuPortfolio/images/banner.png",
		"banner": map[string]any{
			"logo":  "/MadhuPortfolio/logo.svg",
			"count": float64(3),
		},
		"projects": []any{
			map[string]any{
				"title": "One",
				"image": "https://cdn.example.com/one.png",
			},
			map[string]any{
				"title": "Two",
				"image": "/MadhuPortfolio/two.png",
			},
		},
	}
	if !reflect.DeepEqual(map[string]any(got), map[string]any(want)) {
		t.Errorf("ResolveTree mismatch:\ngot:  %#v\nwant: %#v", got, want)
	}

	// The input document must be untouched.
	if doc["image"] != "/images/banner.png" {
		t.Errorf("ResolveTree mutated its input: image = %v", doc["image"])
	}
}

func TestResolveTreeIgnoresUnknownFields(t *testing.T) {
	r := NewAssetResolver("/base/")
	doc := Document{
		"link":  "/not/an/asset",
		"image": "a.png",
	}
	got := r.ResolveTree(doc, []string{"image"})
	if got["link"] != "/not/an/asset" {
		t.Errorf("non-path field rewritten: %v", got["link"])
	}
	if got["image"] != "/base/a.png" {
		t.Errorf("path field not rewritten: %v", got["image"])
	}
}
