package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/piecewise/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) m.Path {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return m.Path(path)
}

func TestLocalCaseStore_LoadCases(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "extra.yaml", `cases:
  - id: mine/01
    function: func
    args: [8, 5, 2]
    expected: 22
    criterion: path
    path: block1→block2
  - function: Calculate
    args: [-3, 4]
    expected: 7
`)

	cases, err := NewLocalCaseStore().LoadCases(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, m.Case{
		ID:         "mine/01",
		Function:   m.FunctionFunc,
		Args:       []int{8, 5, 2},
		Expected:   22,
		Criterion:  m.CriterionPath,
		ExpectPath: "block1→block2",
	}, cases[0])

	assert.Equal(t, "extra/02", cases[1].ID)
	assert.Equal(t, m.FunctionCalculate, cases[1].Function)
	assert.Equal(t, []int{-3, 4}, cases[1].Args)
}

func TestLocalCaseStore_LoadCases_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	cases, err := NewLocalCaseStore().LoadCases(path)
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestLocalCaseStore_LoadCases_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "bad.yaml", `cases:
  - function: func
    arguments: [1, 2, 3]
`)

	_, err := NewLocalCaseStore().LoadCases(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLocalCaseStore_LoadCases_Criterion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	good := writeFile(t, dir, "good.yaml", `cases:
  - function: calculate
    args: [1, 1]
    expected: 2
    criterion: Boundary
`)

	cases, err := NewLocalCaseStore().LoadCases(good)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, m.CriterionBoundary, cases[0].Criterion)

	bad := writeFile(t, dir, "bad.yaml", `cases:
  - function: calculate
    args: [1, 1]
    expected: 2
  - function: func
    args: [1, 4, 6]
    expected: 6
    criterion: foo
`)

	_, err = NewLocalCaseStore().LoadCases(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `case 2: unknown criterion "foo"`)
}

func TestLocalCaseStore_LoadCases_Errors(t *testing.T) {
	t.Parallel()

	store := NewLocalCaseStore()

	_, err := store.LoadCases("")
	require.Error(t, err)

	_, err = store.LoadCases(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	require.ErrorIs(t, err, os.ErrNotExist)
}
