package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facilityhub/internal/models"
	"facilityhub/internal/store"
)

func newPart(name string, stock, min int) models.SparePart {
	return models.SparePart{
		ID:           uuid.New(),
		Name:         name,
		Category:     models.PartGeneral,
		CurrentStock: stock,
		MinimumStock: min,
		CreatedAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestReplaceAllKeepsOrder(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	parts := []models.SparePart{newPart("belt", 4, 2), newPart("filter", 1, 5), newPart("fuse", 9, 3)}
	s.ReplaceAll(parts)

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, parts, got)

	// snapshot independence: mutating the returned slice must not leak in
	got[0].Name = "tampered"
	again := s.List()
	assert.Equal(t, "belt", again[0].Name)
}

func TestUpdateShallowMerge(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	parts := []models.SparePart{newPart("belt", 4, 2), newPart("filter", 1, 5)}
	s.ReplaceAll(parts)

	stock := 12
	updated, err := s.Update(parts[1].ID, models.SparePartPatch{CurrentStock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 12, updated.CurrentStock)

	// only current_stock on the matching item changed
	want := parts[1]
	want.CurrentStock = 12
	got := s.List()
	assert.Equal(t, parts[0], got[0])
	assert.Equal(t, want, got[1])
}

func TestUpdateMissingIDLeavesCollection(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	parts := []models.SparePart{newPart("belt", 4, 2)}
	s.ReplaceAll(parts)

	name := "ghost"
	_, err := s.Update(uuid.New(), models.SparePartPatch{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, parts, s.List())
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	parts := []models.SparePart{newPart("belt", 4, 2), newPart("filter", 1, 5)}
	s.ReplaceAll(parts)

	err := s.Delete(uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, parts, s.List())
}

func TestAddDuplicateIDRejected(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	p := newPart("belt", 4, 2)
	_, err := s.Add(p)
	require.NoError(t, err)

	dup := p
	dup.Name = "second belt"
	_, err = s.Add(dup)
	assert.ErrorIs(t, err, models.ErrDuplicateID)
	assert.Equal(t, 1, s.Len())
}

func TestSelectionClearedOnDelete(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	p := newPart("belt", 4, 2)
	_, err := s.Add(p)
	require.NoError(t, err)

	require.NoError(t, s.Select(p.ID))
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, p.ID, sel.ID)

	require.NoError(t, s.Delete(p.ID))
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSelectUnknownAndClear(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	p := newPart("belt", 4, 2)
	_, err := s.Add(p)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Select(uuid.New()), models.ErrNotFound)

	require.NoError(t, s.Select(p.ID))
	require.NoError(t, s.Select(uuid.Nil)) // clear
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	var fired int
	s.OnChange(func() { fired++ })

	p := newPart("belt", 4, 2)
	_, err := s.Add(p)
	require.NoError(t, err)
	stock := 1
	_, err = s.Update(p.ID, models.SparePartPatch{CurrentStock: &stock})
	require.NoError(t, err)
	require.NoError(t, s.Delete(p.ID))
	s.ReplaceAll(nil)

	assert.Equal(t, 4, fired)
}

func TestFailedMutationsDoNotNotify(t *testing.T) {
	s := store.New[models.SparePart, models.SparePartPatch]()
	p := newPart("belt", 4, 2)
	_, err := s.Add(p)
	require.NoError(t, err)

	var fired int
	s.OnChange(func() { fired++ })

	_, err = s.Add(p)
	assert.Error(t, err)
	assert.Error(t, s.Delete(uuid.New()))
	name := "x"
	_, err = s.Update(uuid.New(), models.SparePartPatch{Name: &name})
	assert.Error(t, err)

	assert.Equal(t, 0, fired)
}
