package responses

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "responses.json", `{
  "Big Five Snapshot": [4, 2, 5, 1, 4],
  "Attachment & Trust": [3, 3, 4, 2]
}`)

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int{4, 2, 5, 1, 4}, got["Big Five Snapshot"])
	assert.Equal(t, []int{3, 3, 4, 2}, got["Attachment & Trust"])
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "responses.yaml", `
Collaboration Style:
  - 5
  - 4
  - 3
  - 2
`)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2}, got["Collaboration Style"])
}

func TestLoad_NonIntegerEntry(t *testing.T) {
	path := writeFile(t, "responses.json", `{"Model": [1, 2.5, 3]}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
	assert.Contains(t, err.Error(), "entry 2")
	assert.Contains(t, err.Error(), "Model")
}

func TestLoad_StringEntry(t *testing.T) {
	path := writeFile(t, "responses.yaml", `Model: [agree, 2]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an integer")
}

func TestLoad_TopLevelArray(t *testing.T) {
	path := writeFile(t, "responses.json", `[1, 2, 3]`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping of model name")
}

func TestLoad_ScalarValue(t *testing.T) {
	path := writeFile(t, "responses.yaml", `Model: 5`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
