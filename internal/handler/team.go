package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/service"
	"github.com/hoopsim/league-service/pkg/response"
)

type TeamHandler struct {
	svc service.TeamService
}

func NewTeamHandler(svc service.TeamService) *TeamHandler { return &TeamHandler{svc: svc} }

func (h *TeamHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/teams")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		// Use a stable wildcard name (team_id) so nested routes can reuse it without Gin conflicts.
		g.GET("/:team_id", h.getByID)
		g.PATCH("/:team_id/name", h.rename)
		g.PUT("/:team_id/players/:player_id", h.assignPlayer)
		g.DELETE("/:team_id/players/:player_id", h.removePlayer)
		g.PUT("/:team_id/coach/:coach_id", h.assignCoach)
	}
}

type createTeamRequest struct {
	Name       string           `json:"name"`
	Conference model.Conference `json:"conference"`
}

func (h *TeamHandler) create(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	team, err := h.svc.CreateTeam(c.Request.Context(), req.Name, req.Conference)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, team)
}

func (h *TeamHandler) getByID(c *gin.Context) {
	team, err := h.svc.GetTeam(c.Request.Context(), c.Param("team_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) list(c *gin.Context) {
	teams, err := h.svc.ListTeams(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, teams)
}

type renameTeamRequest struct {
	Name string `json:"name"`
}

func (h *TeamHandler) rename(c *gin.Context) {
	var req renameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	team, err := h.svc.RenameTeam(c.Request.Context(), c.Param("team_id"), req.Name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) assignPlayer(c *gin.Context) {
	team, err := h.svc.AssignPlayer(c.Request.Context(), c.Param("team_id"), c.Param("player_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) removePlayer(c *gin.Context) {
	team, err := h.svc.RemovePlayer(c.Request.Context(), c.Param("team_id"), c.Param("player_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}

func (h *TeamHandler) assignCoach(c *gin.Context) {
	team, err := h.svc.AssignCoach(c.Request.Context(), c.Param("team_id"), c.Param("coach_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, team)
}
