package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/theater-dashboard/internal/handler"
	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

func newDirectorHandler(directors ...model.Director) (*handler.DirectorHandler, *state.State) {
	st := state.NewFromSnapshot(state.Snapshot{Directors: directors})
	return handler.NewDirectorHandler(st, repository.NewSnapshotRepo(nil)), st
}

func TestDirectorCreate(t *testing.T) {
	h, st := newDirectorHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/directors",
		strings.NewReader(`{"name":"X","years_of_experience":5,"birth_year":1990}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Create(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Director
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "X", created.Name)
	assert.Equal(t, 5, created.YearsOfExperience)
	assert.Equal(t, 1990, created.BirthYear)

	found, ok := st.FindDirector(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)
}

func TestDirectorUpdatePatchesOnlyGivenFields(t *testing.T) {
	h, st := newDirectorHandler(
		model.Director{ID: 2, Name: "B", YearsOfExperience: 8, BirthYear: 1972},
		model.Director{ID: 1, Name: "X", YearsOfExperience: 12, BirthYear: 1980},
	)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":"Y"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/directors/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	all := st.Directors()
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[1].ID, "updated record keeps its position")
	assert.Equal(t, "Y", all[1].Name)
	assert.Equal(t, 12, all[1].YearsOfExperience)
	assert.Equal(t, 1980, all[1].BirthYear)
}

func TestDirectorUpdateUnknownIDIs404(t *testing.T) {
	h, _ := newDirectorHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"name":"Y"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/directors/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDirectorListSearch(t *testing.T) {
	h, _ := newDirectorHandler(
		model.Director{ID: 2, Name: "Dilshod Karimov"},
		model.Director{ID: 1, Name: "Otabek Alimov"},
	)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/directors?search=karimov", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Directors []model.Director `json:"directors"`
		Count     int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Dilshod Karimov", resp.Directors[0].Name)
}

func TestDirectorDeleteIsIdempotent(t *testing.T) {
	h, st := newDirectorHandler(model.Director{ID: 1, Name: "A"})

	del := func() int {
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/v1/directors/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")
		require.NoError(t, h.Delete(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, del())
	assert.Equal(t, http.StatusNoContent, del())
	assert.Empty(t, st.Directors())
}
