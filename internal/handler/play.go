package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theater-dashboard/internal/model"
	"github.com/iliyamo/theater-dashboard/internal/repository"
	"github.com/iliyamo/theater-dashboard/internal/state"
)

// PlayHandler implements CRUD for the repertoire.
type PlayHandler struct {
	State *state.State
	Repo  *repository.SnapshotRepo
}

// NewPlayHandler constructs a PlayHandler.
func NewPlayHandler(st *state.State, repo *repository.SnapshotRepo) *PlayHandler {
	if st == nil {
		panic("nil state passed to NewPlayHandler")
	}
	return &PlayHandler{State: st, Repo: repo}
}

// playResponse is a play with its director's name resolved. A play
// whose director was deleted reads "unknown".
type playResponse struct {
	model.Play
	DirectorName string `json:"director_name"`
}

func (h *PlayHandler) respond(p model.Play) playResponse {
	name := "unknown"
	if d, ok := h.State.FindDirector(p.DirectorID); ok {
		name = d.Name
	}
	return playResponse{Play: p, DirectorName: name}
}

// List handles GET /v1/plays. The optional ?genre= parameter filters
// to one genre; anything else returns the whole repertoire.
func (h *PlayHandler) List(c echo.Context) error {
	genre := strings.TrimSpace(c.QueryParam("genre"))
	plays := h.State.Plays()
	out := make([]playResponse, 0, len(plays))
	for _, p := range plays {
		if genre != "" && p.Genre != genre {
			continue
		}
		out = append(out, h.respond(p))
	}
	return c.JSON(http.StatusOK, echo.Map{"plays": out, "count": len(out)})
}

// Get handles GET /v1/plays/:id.
func (h *PlayHandler) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid play id"})
	}
	play, ok := h.State.FindPlay(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "play not found"})
	}
	return c.JSON(http.StatusOK, h.respond(play))
}

// Create handles POST /v1/plays. The genre must come from the fixed
// genre list; the director reference is accepted as-is (a dangling
// one just renders as "unknown").
func (h *PlayHandler) Create(c echo.Context) error {
	var body struct {
		Title          string `json:"title"`
		Genre          string `json:"genre"`
		ProductionYear int    `json:"production_year"`
		DirectorID     int64  `json:"director_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if !slices.Contains(model.Genres, body.Genre) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown genre"})
	}
	play := h.State.CreatePlay(model.Play{
		Title:          strings.TrimSpace(body.Title),
		Genre:          body.Genre,
		ProductionYear: body.ProductionYear,
		DirectorID:     body.DirectorID,
	})
	persist(c, h.Repo, h.State)
	return c.JSON(http.StatusCreated, h.respond(play))
}

// Update handles PUT /v1/plays/:id.
func (h *PlayHandler) Update(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid play id"})
	}
	var body struct {
		Title          *string `json:"title"`
		Genre          *string `json:"genre"`
		ProductionYear *int    `json:"production_year"`
		DirectorID     *int64  `json:"director_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Genre != nil && !slices.Contains(model.Genres, *body.Genre) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown genre"})
	}
	updated := h.State.UpdatePlay(id, func(p model.Play) model.Play {
		if body.Title != nil {
			p.Title = *body.Title
		}
		if body.Genre != nil {
			p.Genre = *body.Genre
		}
		if body.ProductionYear != nil {
			p.ProductionYear = *body.ProductionYear
		}
		if body.DirectorID != nil {
			p.DirectorID = *body.DirectorID
		}
		return p
	})
	if !updated {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "play not found"})
	}
	persist(c, h.Repo, h.State)
	play, _ := h.State.FindPlay(id)
	return c.JSON(http.StatusOK, h.respond(play))
}

// Delete handles DELETE /v1/plays/:id.
func (h *PlayHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid play id"})
	}
	h.State.DeletePlay(id)
	persist(c, h.Repo, h.State)
	return c.NoContent(http.StatusNoContent)
}
