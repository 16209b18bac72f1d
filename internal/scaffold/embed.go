package scaffold

import (
	"embed"
)

// TemplateFS embeds the files that init scaffolds into a project.
//
//go:embed templates
var TemplateFS embed.FS

// GetTemplate retrieves an embedded template by name.
func GetTemplate(name string) ([]byte, error) {
	return TemplateFS.ReadFile("templates/" + name)
}

// GetTemplateNames returns the names of all embedded templates.
func GetTemplateNames() ([]string, error) {
	entries, err := TemplateFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
