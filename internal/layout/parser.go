package layout

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed layout.yaml
var defaultLayout []byte

var (
	defaultOnce sync.Once
	defaultVal  *Layout
	defaultErr  error
)

// InvalidError reports a layout document that failed validation.
type InvalidError struct {
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return "invalid layout: " + strings.Join(msgs, "; ")
}

// Parse validates a layout document and decodes it.
func Parse(data []byte) (*Layout, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decoding layout: %w", err)
	}
	return &l, nil
}

// Default returns a copy of the layout embedded in the binary.
func Default() (*Layout, error) {
	defaultOnce.Do(func() {
		defaultVal, defaultErr = Parse(defaultLayout)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("embedded layout: %w", defaultErr)
		}
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultVal.Clone(), nil
}

// MustDefault is like Default but panics if the embedded layout is broken,
// which can only happen through a bad build.
func MustDefault() *Layout {
	l, err := Default()
	if err != nil {
		panic(err)
	}
	return l
}
