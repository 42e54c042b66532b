package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/service"
	"github.com/hoopsim/league-service/pkg/response"
)

type PlayerHandler struct {
	svc service.PlayerService
}

func NewPlayerHandler(svc service.PlayerService) *PlayerHandler { return &PlayerHandler{svc: svc} }

func (h *PlayerHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/players")
	{
		g.POST("", h.create)
		g.GET("", h.list)        // approved players, general use
		g.GET("/pending", h.listPending)
		g.GET("/all", h.listAll) // admin view, pending included
		g.GET("/:player_id", h.getByID)
		g.PATCH("/:player_id", h.update)
		g.POST("/:player_id/review", h.review)
	}
}

type createPlayerRequest struct {
	Name        string         `json:"name"`
	Position    model.Position `json:"position"`
	CurrentTeam string         `json:"current_team"`
	Possession  int            `json:"possession"`
	Three       int            `json:"three"`
	Layup       int            `json:"layup"`
	Defense     int            `json:"defense"`
}

func (h *PlayerHandler) create(c *gin.Context) {
	var req createPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.CreatePlayer(c.Request.Context(), service.CreatePlayerInput{
		Name:        req.Name,
		Position:    req.Position,
		CurrentTeam: req.CurrentTeam,
		Possession:  req.Possession,
		Three:       req.Three,
		Layup:       req.Layup,
		Defense:     req.Defense,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, player)
}

func (h *PlayerHandler) list(c *gin.Context) {
	players, err := h.svc.ListPlayers(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) listPending(c *gin.Context) {
	players, err := h.svc.ListPendingPlayers(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) listAll(c *gin.Context) {
	players, err := h.svc.ListAllPlayers(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, players)
}

func (h *PlayerHandler) getByID(c *gin.Context) {
	player, err := h.svc.GetPlayer(c.Request.Context(), c.Param("player_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

type updatePlayerRequest struct {
	Name        *string         `json:"name"`
	Position    *model.Position `json:"position"`
	CurrentTeam *string         `json:"current_team"`
	Possession  *int            `json:"possession"`
	Three       *int            `json:"three"`
	Layup       *int            `json:"layup"`
	Defense     *int            `json:"defense"`
}

func (h *PlayerHandler) update(c *gin.Context) {
	var req updatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.UpdatePlayer(c.Request.Context(), c.Param("player_id"), service.PlayerUpdate{
		Name:        req.Name,
		Position:    req.Position,
		CurrentTeam: req.CurrentTeam,
		Possession:  req.Possession,
		Three:       req.Three,
		Layup:       req.Layup,
		Defense:     req.Defense,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

type reviewRequest struct {
	Approved *bool `json:"approved"`
}

func (h *PlayerHandler) review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	player, err := h.svc.ReviewPlayer(c.Request.Context(), c.Param("player_id"), *req.Approved)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}
