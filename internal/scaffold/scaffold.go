package scaffold

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/agentx-labs/appscaffold/internal/layout"
	"github.com/go-git/go-billy/v5"
)

// Permissions for generated directories and files.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// SuccessMessage is printed once after a successful run.
const SuccessMessage = "Folder structure and files created successfully!"

// Result holds the outcome of a run. Paths are as passed to the filesystem,
// i.e. base joined with the layout entry.
type Result struct {
	Base  string
	Dirs  []string
	Files []string
}

// Scaffolder writes a layout onto a filesystem.
type Scaffolder struct {
	fs     billy.Filesystem
	layout *layout.Layout
	logger *log.Logger
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger sets the logger used for per-item progress. Progress is
// discarded by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Scaffolder for l rooted at fs.
func New(fs billy.Filesystem, l *layout.Layout, opts ...Option) *Scaffolder {
	s := &Scaffolder{
		fs:     fs,
		layout: l.Clone(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run creates every layout folder, then writes every layout file. It stops
// at the first failure; anything already written stays on disk.
func (s *Scaffolder) Run() (*Result, error) {
	base := s.layout.Base
	result := &Result{Base: base}

	for _, folder := range s.layout.Folders {
		dir := s.fs.Join(base, folder)
		if err := s.fs.MkdirAll(dir, DirPerm); err != nil {
			return result, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		s.logger.Printf("created directory %s", dir)
		result.Dirs = append(result.Dirs, dir)
	}

	for _, f := range s.layout.Files {
		path := s.fs.Join(base, f.Path)
		if err := EnsureFile(s.fs, path, f.Content); err != nil {
			return result, err
		}
		s.logger.Printf("wrote %s (%d bytes)", path, len(f.Content))
		result.Files = append(result.Files, path)
	}

	return result, nil
}

// EnsureFile creates the parent directories of path if needed, then creates
// or truncates path and writes content in full.
func EnsureFile(fs billy.Filesystem, path, content string) (err error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, FilePerm)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
