package layout

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Layout is the full set of directories and placeholder files to generate.
type Layout struct {
	Version string   `yaml:"version"`
	Base    string   `yaml:"base"`
	Folders []string `yaml:"folders"`
	Files   []File   `yaml:"files"`
}

// File is a single placeholder file, relative to the layout base.
type File struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// Clone returns a deep copy of l.
func (l *Layout) Clone() *Layout {
	c := &Layout{
		Version: l.Version,
		Base:    l.Base,
		Folders: make([]string, len(l.Folders)),
		Files:   make([]File, len(l.Files)),
	}
	copy(c.Folders, l.Folders)
	copy(c.Files, l.Files)
	return c
}

// FileMap returns the files keyed by relative path.
func (l *Layout) FileMap() map[string]string {
	m := make(map[string]string, len(l.Files))
	for _, f := range l.Files {
		m[f.Path] = f.Content
	}
	return m
}

// Revision parses the layout version. A leading "v" is tolerated.
func (l *Layout) Revision() (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(l.Version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing layout version %q: %w", l.Version, err)
	}
	return v, nil
}
