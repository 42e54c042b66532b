package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoopsim/league-service/internal/service"
	"github.com/hoopsim/league-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.POST("", h.setup)
		g.GET("", h.list) // pending matches, admin view
		g.GET("/:match_id", h.getByID)
		g.POST("/:match_id/play", h.play)
		g.POST("/:match_id/review", h.review)
	}
	// Finished, approved matches live under a separate read-only prefix.
	games := r.Group("/games")
	{
		games.GET("", h.listGames)
		games.GET("/:match_id", h.getGame)
	}
	r.GET("/possessions/:log_id", h.getPossessions)
}

type setupMatchRequest struct {
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
}

func (h *MatchHandler) setup(c *gin.Context) {
	var req setupMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	match, err := h.svc.SetupMatch(c.Request.Context(), req.HomeTeam, req.AwayTeam)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, match)
}

func (h *MatchHandler) list(c *gin.Context) {
	matches, err := h.svc.ListMatches(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, matches)
}

func (h *MatchHandler) getByID(c *gin.Context) {
	match, err := h.svc.GetMatch(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) play(c *gin.Context) {
	match, err := h.svc.PlayMatch(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, match)
}

func (h *MatchHandler) review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	result, err := h.svc.ReviewMatch(c.Request.Context(), c.Param("match_id"), *req.Approved)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, result)
}

func (h *MatchHandler) listGames(c *gin.Context) {
	games, err := h.svc.ListGames(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, games)
}

func (h *MatchHandler) getGame(c *gin.Context) {
	game, err := h.svc.GetGame(c.Request.Context(), c.Param("match_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, game)
}

func (h *MatchHandler) getPossessions(c *gin.Context) {
	log, err := h.svc.GetPossessions(c.Request.Context(), c.Param("log_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, log)
}
