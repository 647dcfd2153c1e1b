package scaffold

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/appscaffold/internal/layout"
	"github.com/go-git/go-billy/v5"
)

// Status is the outcome of checking one layout entry.
type Status string

const (
	StatusOK      Status = "OK"
	StatusMissing Status = "MISS"
	StatusDiff    Status = "DIFF"
	StatusFail    Status = "FAIL"
)

// Label returns the fixed-width tag used in check output.
func (s Status) Label() string {
	switch s {
	case StatusOK:
		return "[ OK ]"
	case StatusMissing:
		return "[MISS]"
	case StatusDiff:
		return "[DIFF]"
	default:
		return "[FAIL]"
	}
}

// Finding is the check result for a single directory or file.
type Finding struct {
	Path   string
	IsDir  bool
	Status Status
	Detail string
}

// Report collects findings in layout order: folders first, then files.
type Report struct {
	Findings []Finding
}

// Healthy reports whether every finding is OK.
func (r *Report) Healthy() bool {
	for _, f := range r.Findings {
		if f.Status != StatusOK {
			return false
		}
	}
	return true
}

// Count returns the number of findings with status s.
func (r *Report) Count(s Status) int {
	n := 0
	for _, f := range r.Findings {
		if f.Status == s {
			n++
		}
	}
	return n
}

// Print writes one line per finding to w.
func (r *Report) Print(w io.Writer) {
	for _, f := range r.Findings {
		if f.Detail != "" {
			fmt.Fprintf(w, "  %s %s (%s)\n", f.Status.Label(), f.Path, f.Detail)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", f.Status.Label(), f.Path)
	}
}

// Check compares the tree on fs against l without modifying anything.
func Check(fs billy.Filesystem, l *layout.Layout) *Report {
	report := &Report{}

	for _, folder := range l.Folders {
		report.Findings = append(report.Findings, checkDir(fs, fs.Join(l.Base, folder)))
	}
	for _, f := range l.Files {
		report.Findings = append(report.Findings, checkFile(fs, fs.Join(l.Base, f.Path), f.Content))
	}

	return report
}

func checkDir(fs billy.Filesystem, path string) Finding {
	finding := Finding{Path: path, IsDir: true}

	info, err := fs.Stat(path)
	switch {
	case os.IsNotExist(err):
		finding.Status = StatusMissing
	case err != nil:
		finding.Status = StatusFail
		finding.Detail = err.Error()
	case !info.IsDir():
		finding.Status = StatusFail
		finding.Detail = "exists but is not a directory"
	default:
		finding.Status = StatusOK
	}
	return finding
}

func checkFile(fs billy.Filesystem, path, want string) Finding {
	finding := Finding{Path: path}

	info, err := fs.Stat(path)
	switch {
	case os.IsNotExist(err):
		finding.Status = StatusMissing
		return finding
	case err != nil:
		finding.Status = StatusFail
		finding.Detail = err.Error()
		return finding
	case info.IsDir():
		finding.Status = StatusFail
		finding.Detail = "exists but is a directory"
		return finding
	}

	got, err := readAll(fs, path)
	if err != nil {
		finding.Status = StatusFail
		finding.Detail = err.Error()
		return finding
	}
	if !bytes.Equal(got, []byte(want)) {
		finding.Status = StatusDiff
		finding.Detail = "content differs from placeholder"
		return finding
	}

	finding.Status = StatusOK
	return finding
}

func readAll(fs billy.Filesystem, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
