package domain

import "fmt"

// Name identifies one content domain of the site. Each domain is backed
// by a single JSON document served from the site's data directory.
type Name string

const (
	Home      Name = "home"
	About     Name = "about"
	Portfolio Name = "portfolio"
	Blog      Name = "blog"
	Contact   Name = "contact"
	Footer    Name = "footer"
	Global    Name = "global"
)

// Pages returns the per-page content domains, excluding global settings.
func Pages() []Name {
	return []Name{Home, About, Portfolio, Blog, Contact, Footer}
}

// All returns every content domain, global settings included.
func All() []Name {
	return append(Pages(), Global)
}

// ParseName validates a domain name string.
func ParseName(s string) (Name, error) {
	for _, n := range All() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown content domain: %q", s)
}

// FileName returns the data file name backing this domain. Global settings
// live in their own file; every page domain follows the <name>_content.json
// convention.
func (n Name) FileName() string {
	if n == Global {
		return "global_settings.json"
	}
	return string(n) + "_content.json"
}

// DefaultRecord returns a sensible default record for a known list within
// a domain's document, used when appending a new item from the editor.
// Unknown lists get an empty record; callers fill in fields afterwards.
func DefaultRecord(listName string) map[string]any {
	switch listName {
	case "projects":
		return map[string]any{
			"title":       "New Project",
			"description": "",
			"image":       "",
			"tags":        []any{},
			"link":        "",
		}
	case "posts":
		return map[string]any{
			"title":   "New Post",
			"date":    "",
			"summary": "",
			"image":   "",
			"link":    "",
		}
	case "banners":
		return map[string]any{
			"title":    "",
			"subtitle": "",
			"image":    "",
		}
	case "experience":
		return map[string]any{
			"company": "",
			"role":    "",
			"period":  "",
			"details": []any{},
		}
	case "links":
		return map[string]any{
			"label": "",
			"url":   "",
		}
	default:
		return map[string]any{}
	}
}
