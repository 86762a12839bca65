// Package adapter contains infrastructure adapters for the piecewise CLI.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/piecewise/internal/model"
)

// CaseStore loads user-supplied cases.
type CaseStore interface {
	LoadCases(path m.Path) ([]m.Case, error)
}

// caseFile is the on-disk layout of a cases file:
//
//	cases:
//	  - function: func
//	    args: [8, 5, 2]
//	    expected: 22
//	    criterion: path
//	    path: block1→block2
//
// "path" may also be written with "->" between branches. "criterion" is
// optional but must name a known criterion when set.
type caseFile struct {
	Cases []m.Case `yaml:"cases"`
}

// LocalCaseStore reads cases from YAML files on the local filesystem.
type LocalCaseStore struct{}

// NewLocalCaseStore constructs a CaseStore backed by the local filesystem.
func NewLocalCaseStore() CaseStore {
	return &LocalCaseStore{}
}

// LoadCases decodes the file at path. Unknown keys are rejected. Cases
// without an ID get "<file name>/<nn>" in file order.
func (s *LocalCaseStore) LoadCases(path m.Path) ([]m.Case, error) {
	if path == "" {
		return nil, fmt.Errorf("cases path is empty")
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read cases file: %w", err)
	}

	var file caseFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	prefix := strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))

	for i := range file.Cases {
		c := &file.Cases[i]
		c.Function = m.Function(strings.ToLower(string(c.Function)))
		c.Criterion = m.Criterion(strings.ToLower(string(c.Criterion)))

		if c.Criterion != "" && !slices.Contains(m.Criteria(), c.Criterion) {
			return nil, fmt.Errorf("%s: case %d: unknown criterion %q", path, i+1, c.Criterion)
		}

		if c.ID == "" {
			c.ID = fmt.Sprintf("%s/%02d", prefix, i+1)
		}
	}

	return file.Cases, nil
}
