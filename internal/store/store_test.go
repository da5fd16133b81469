package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/store"
)

func TestCreateOnEmptyStore(t *testing.T) {
	s := store.New([]model.Director{})

	created := s.Create(model.Director{Name: "X", YearsOfExperience: 5, BirthYear: 1990})

	require.Equal(t, 1, s.Len())
	found, ok := s.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "X", found.Name)
	assert.Equal(t, 5, found.YearsOfExperience)
	assert.Equal(t, 1990, found.BirthYear)
}

func TestCreatePrependsAndNeverReusesIDs(t *testing.T) {
	s := store.New([]model.Director{{ID: 7, Name: "seeded"}})

	first := s.Create(model.Director{Name: "first"})
	second := s.Create(model.Director{Name: "second"})

	assert.Greater(t, first.ID, int64(7), "fresh ids must stay above seeded ones")
	assert.NotEqual(t, first.ID, second.ID)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "second", all[0].Name, "newest record comes first")
	assert.Equal(t, "first", all[1].Name)
	assert.Equal(t, "seeded", all[2].Name)
}

func TestCreateAfterDeleteDoesNotReuseID(t *testing.T) {
	s := store.New([]model.Director{})
	a := s.Create(model.Director{Name: "a"})
	s.Delete(a.ID)

	b := s.Create(model.Director{Name: "b"})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestUpdatePreservesOtherFieldsAndPosition(t *testing.T) {
	s := store.New([]model.Director{
		{ID: 3, Name: "C", YearsOfExperience: 3, BirthYear: 1983},
		{ID: 2, Name: "X", YearsOfExperience: 12, BirthYear: 1975},
		{ID: 1, Name: "A", YearsOfExperience: 1, BirthYear: 1981},
	})

	ok := s.Update(2, func(d model.Director) model.Director {
		d.Name = "Y"
		return d
	})
	require.True(t, ok)

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(2), all[1].ID, "record keeps its position")
	assert.Equal(t, "Y", all[1].Name)
	assert.Equal(t, 12, all[1].YearsOfExperience)
	assert.Equal(t, 1975, all[1].BirthYear)
	assert.Equal(t, "C", all[0].Name, "other records untouched")
	assert.Equal(t, "A", all[2].Name)
}

func TestUpdateUnknownIDReportsNotFound(t *testing.T) {
	s := store.New([]model.Director{{ID: 1, Name: "A"}})
	ok := s.Update(99, func(d model.Director) model.Director { return d })
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := store.New([]model.Director{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}})

	s.Delete(1)
	afterFirst := s.All()
	s.Delete(1)
	afterSecond := s.All()

	assert.Equal(t, afterFirst, afterSecond)
	require.Len(t, afterSecond, 1)
	assert.Equal(t, int64(2), afterSecond[0].ID)
}

func TestAllReturnsACopy(t *testing.T) {
	s := store.New([]model.Director{{ID: 1, Name: "A"}})
	all := s.All()
	all[0].Name = "mutated"

	found, ok := s.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "A", found.Name)
}

func TestReplaceRederivesIDCounter(t *testing.T) {
	s := store.New([]model.Director{})
	s.Replace([]model.Director{{ID: 40, Name: "A"}, {ID: 5, Name: "B"}})

	created := s.Create(model.Director{Name: "C"})
	assert.Greater(t, created.ID, int64(40))
}
