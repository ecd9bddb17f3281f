package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFieldMapping(t *testing.T) {
	m := DefaultFieldMapping()
	field, ok := m.Field("#product_name")
	assert.True(t, ok)
	assert.Equal(t, "productName", field)

	_, ok = m.Field("#PRODUCT_NAME")
	assert.False(t, ok)
	assert.Equal(t, 6, m.Len())
}

func TestNewFieldMapping_Copies(t *testing.T) {
	src := map[string]string{"#a": "a"}
	m := NewFieldMapping(src)
	src["#b"] = "b"

	_, ok := m.Field("#b")
	assert.False(t, ok)
	assert.Equal(t, []string{"#a"}, m.Layers())
}

func TestParseFieldMapping(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		m, err := ParseFieldMapping([]byte("\"#title\": title\n\"#price\": price\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"#price", "#title"}, m.Layers())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseFieldMapping([]byte(""))
		assert.Error(t, err)
	})

	t.Run("EmptyField", func(t *testing.T) {
		_, err := ParseFieldMapping([]byte("\"#title\": \"\"\n"))
		assert.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseFieldMapping([]byte("- a\n- b\n"))
		assert.Error(t, err)
	})
}

func TestLoadFieldMapping(t *testing.T) {
	t.Run("DefaultWhenNoPath", func(t *testing.T) {
		m, err := LoadFieldMapping("")
		require.NoError(t, err)
		assert.Equal(t, DefaultFieldMapping().Layers(), m.Layers())
	})

	t.Run("FromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "mapping.yaml")
		require.NoError(t, os.WriteFile(path, []byte("\"#name\": productName\n"), 0o644))

		m, err := LoadFieldMapping(path)
		require.NoError(t, err)
		field, ok := m.Field("#name")
		assert.True(t, ok)
		assert.Equal(t, "productName", field)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFieldMapping(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
