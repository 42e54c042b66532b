package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoopsim/league-service/internal/service"
	"github.com/hoopsim/league-service/pkg/response"
)

type CoachHandler struct {
	svc service.CoachService
}

func NewCoachHandler(svc service.CoachService) *CoachHandler { return &CoachHandler{svc: svc} }

func (h *CoachHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/coaches")
	{
		g.POST("", h.create)
		g.GET("", h.list)
		g.GET("/:coach_id", h.getByID)
		g.PATCH("/:coach_id", h.update)
	}
}

type createCoachRequest struct {
	Name        string `json:"name"`
	CurrentTeam string `json:"current_team"`
}

func (h *CoachHandler) create(c *gin.Context) {
	var req createCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	coach, err := h.svc.CreateCoach(c.Request.Context(), req.Name, req.CurrentTeam)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, coach)
}

func (h *CoachHandler) list(c *gin.Context) {
	coaches, err := h.svc.ListCoaches(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, coaches)
}

func (h *CoachHandler) getByID(c *gin.Context) {
	coach, err := h.svc.GetCoach(c.Request.Context(), c.Param("coach_id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, coach)
}

type updateCoachRequest struct {
	Name        *string `json:"name"`
	CurrentTeam *string `json:"current_team"`
}

func (h *CoachHandler) update(c *gin.Context) {
	var req updateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	coach, err := h.svc.UpdateCoach(c.Request.Context(), c.Param("coach_id"), service.CoachUpdate{
		Name:        req.Name,
		CurrentTeam: req.CurrentTeam,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, coach)
}
