package localstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilityhub/internal/localstore"
)

type prefs struct {
	SidebarOpen bool   `json:"sidebar_open"`
	Theme       string `json:"theme"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ls, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	in := prefs{SidebarOpen: true, Theme: "dark"}
	require.NoError(t, ls.Save(localstore.KeyUI, in))

	var out prefs
	ok, err := ls.Load(localstore.KeyUI, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestLoadMissingKey(t *testing.T) {
	ls, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	var out prefs
	ok, err := ls.Load(localstore.KeyAuth, &out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeysAreIndependent(t *testing.T) {
	ls, err := localstore.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, ls.Save(localstore.KeyUI, prefs{Theme: "light"}))
	require.NoError(t, ls.Save(localstore.KeyAuth, map[string]string{"email": "admin@facility.com"}))

	require.NoError(t, ls.Clear(localstore.KeyAuth))

	var out prefs
	ok, err := ls.Load(localstore.KeyUI, &out)
	require.NoError(t, err)
	assert.True(t, ok)

	var id map[string]string
	ok, err = ls.Load(localstore.KeyAuth, &id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClearMissingKeyIsNoOp(t *testing.T) {
	ls, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, ls.Clear(localstore.KeyAuth))
}
