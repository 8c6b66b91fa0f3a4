package uistate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetActiveServerClearsActiveChannel(t *testing.T) {
	s := New(nil)
	s.SetActiveServer("srv1")
	s.SetActiveChannel("general")
	require.Equal(t, "general", s.ActiveChannel())

	s.SetActiveServer("srv2")
	assert.Equal(t, "srv2", s.ActiveServer())
	assert.Empty(t, s.ActiveChannel())
}

func TestSetActiveThreadIDOpensThreadPanel(t *testing.T) {
	s := New(nil)
	assert.False(t, s.ShowThreadPanel())

	s.SetActiveThreadID("t1")
	assert.True(t, s.ShowThreadPanel())
	assert.Equal(t, "t1", s.ActiveThreadID())
}

func TestToggleCategoryCollapsed(t *testing.T) {
	s := New(nil)
	assert.False(t, s.IsCategoryCollapsed("cat1"))
	s.ToggleCategoryCollapsed("cat1")
	assert.True(t, s.IsCategoryCollapsed("cat1"))
	s.ToggleCategoryCollapsed("cat1")
	assert.False(t, s.IsCategoryCollapsed("cat1"))
}

func TestFoldersPersistAcrossSqliteBackedStores(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "folders.db")
	logger := zap.NewNop().Sugar()

	persist1, err := NewSQLitePersistence(dbPath, logger)
	require.NoError(t, err)

	s1 := New(persist1)
	require.NoError(t, s1.SetFolders([]Folder{
		{ID: "f1", Name: "Gaming", ServerIDs: []string{"srv1", "srv2"}},
	}))

	persist2, err := NewSQLitePersistence(dbPath, logger)
	require.NoError(t, err)

	s2 := New(persist2)
	folders := s2.Folders()
	require.Len(t, folders, 1)
	assert.Equal(t, "Gaming", folders[0].Name)
	assert.Equal(t, []string{"srv1", "srv2"}, folders[0].ServerIDs)
}

func TestFoldersFallBackToEmptyOnCorruptPersistedState(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "folders.db")
	logger := zap.NewNop().Sugar()

	persist, err := NewSQLitePersistence(dbPath, logger)
	require.NoError(t, err)
	require.NoError(t, persist.set("not json"))

	s := New(persist)
	assert.Empty(t, s.Folders())

	_ = os.Remove(dbPath)
}
