package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_SectionsAndOptions(t *testing.T) {
	s := New()
	_, ok := s.Section("monaco")
	assert.False(t, ok)

	sec := s.AddSection("monaco")
	sec.Set("basedir", "/opt/monaco")
	assert.Same(t, sec, s.AddSection("monaco"), "AddSection should return the existing section")

	v, err := s.Lookup("monaco", "basedir")
	require.NoError(t, err)
	assert.Equal(t, "/opt/monaco", v)

	_, err = s.Lookup("monaco", "exe")
	assert.ErrorIs(t, err, ErrNoOption)

	_, err = s.Lookup("casino2", "basedir")
	assert.ErrorIs(t, err, ErrNoSection)

	sec.Unset("basedir")
	assert.Empty(t, sec.Options())

	s.RemoveSection("monaco")
	assert.Empty(t, s.Sections())
}

func TestSettings_CloneIsDeep(t *testing.T) {
	s := New()
	s.AddSection("monaco").Set("basedir", "/a")

	c := s.Clone()
	c.AddSection("monaco").Set("basedir", "/b")

	v, _ := s.Lookup("monaco", "basedir")
	assert.Equal(t, "/a", v)
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store := NewStore(path)

	s := New()
	mon := s.AddSection("monaco")
	mon.Set("basedir", "/usr/share/monaco")
	mon.Set("exe", "/usr/bin/mccli32")
	s.AddSection("penepma").Set("basedir", "/opt/penepma")

	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"monaco", "penepma"}, loaded.Sections())

	exe, err := loaded.Lookup("monaco", "exe")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/mccli32", exe)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files should not be left behind")
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.yaml"))
	s, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, s.Sections())
}

func TestStore_LoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("monaco: [unclosed"), 0644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestDefaultPath_HonoursEnvironment(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", DefaultPath())
	assert.Equal(t, "/tmp/custom.yaml", NewStore("").Path())
}
