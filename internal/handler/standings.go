package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoopsim/league-service/internal/service"
	"github.com/hoopsim/league-service/pkg/response"
)

type StandingsHandler struct {
	svc service.StandingsService
}

func NewStandingsHandler(svc service.StandingsService) *StandingsHandler {
	return &StandingsHandler{svc: svc}
}

func (h *StandingsHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/standings")
	{
		g.POST("", h.createSeason)
		g.GET("", h.list)
		g.GET("/conferences", h.conferences)
		g.GET("/:season", h.getSeason)
		g.PUT("/:season", h.updateSeason)
	}
}

// createSeason creates this season's standings document, or returns the
// existing one; calling it twice in a season never duplicates.
func (h *StandingsHandler) createSeason(c *gin.Context) {
	standings, err := h.svc.CreateSeasonStandings(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, standings)
}

func (h *StandingsHandler) list(c *gin.Context) {
	standings, err := h.svc.GetStandings(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, standings)
}

// conferences recomputes both conference tables from live team records
// without touching any season document.
func (h *StandingsHandler) conferences(c *gin.Context) {
	update, err := h.svc.UpdateConferences(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, update)
}

func (h *StandingsHandler) getSeason(c *gin.Context) {
	standings, err := h.svc.GetSeason(c.Request.Context(), c.Param("season"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, standings)
}

func (h *StandingsHandler) updateSeason(c *gin.Context) {
	standings, err := h.svc.UpdateSeasonStandings(c.Request.Context(), c.Param("season"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, standings)
}
