package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// DirectorHandler implements CRUD for the directing staff.
type DirectorHandler struct {
	State *state.State
	Repo  *repository.SnapshotRepo
}

// NewDirectorHandler constructs a DirectorHandler.
func NewDirectorHandler(st *state.State, repo *repository.SnapshotRepo) *DirectorHandler {
	if st == nil {
		panic("nil state passed to NewDirectorHandler")
	}
	return &DirectorHandler{State: st, Repo: repo}
}

// List handles GET /v1/directors. The optional ?search= parameter
// matches case-insensitively against the name, or exactly against
// the id, mirroring the dashboard's search box.
func (h *DirectorHandler) List(c echo.Context) error {
	directors := h.State.Directors()
	if search := strings.TrimSpace(c.QueryParam("search")); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]model.Director, 0, len(directors))
		for _, d := range directors {
			if strings.Contains(strings.ToLower(d.Name), needle) || strconv.FormatInt(d.ID, 10) == search {
				filtered = append(filtered, d)
			}
		}
		directors = filtered
	}
	return c.JSON(http.StatusOK, echo.Map{"directors": directors, "count": len(directors)})
}

// Get handles GET /v1/directors/:id.
func (h *DirectorHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid director id"})
	}
	director, ok := h.State.FindDirector(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "director not found"})
	}
	return c.JSON(http.StatusOK, director)
}

// Create handles POST /v1/directors.
func (h *DirectorHandler) Create(c echo.Context) error {
	var body struct {
		Name              string `json:"name"`
		YearsOfExperience int    `json:"years_of_experience"`
		BirthYear         int    `json:"birth_year"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	director := h.State.CreateDirector(model.Director{
		Name:              strings.TrimSpace(body.Name),
		YearsOfExperience: body.YearsOfExperience,
		BirthYear:         body.BirthYear,
	})
	persist(c, h.Repo, h.State)
	return c.JSON(http.StatusCreated, director)
}

// Update handles PUT /v1/directors/:id. Only the fields present in
// the body change; the record keeps its position in the collection.
func (h *DirectorHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid director id"})
	}
	var body struct {
		Name              *string `json:"name"`
		YearsOfExperience *int    `json:"years_of_experience"`
		BirthYear         *int    `json:"birth_year"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	updated := h.State.UpdateDirector(id, func(d model.Director) model.Director {
		if body.Name != nil {
			d.Name = *body.Name
		}
		if body.YearsOfExperience != nil {
			d.YearsOfExperience = *body.YearsOfExperience
		}
		if body.BirthYear != nil {
			d.BirthYear = *body.BirthYear
		}
		return d
	})
	if !updated {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "director not found"})
	}
	persist(c, h.Repo, h.State)
	director, _ := h.State.FindDirector(id)
	return c.JSON(http.StatusOK, director)
}

// Delete handles DELETE /v1/directors/:id. Deleting an absent id is
// a no-op and still returns 204.
func (h *DirectorHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid director id"})
	}
	h.State.DeleteDirector(id)
	persist(c, h.Repo, h.State)
	return c.NoContent(http.StatusNoContent)
}
