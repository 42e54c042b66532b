package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hoopsim/league-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, teamSvc service.TeamService, playerSvc service.PlayerService, coachSvc service.CoachService, matchSvc service.MatchService, standingsSvc service.StandingsService) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewTeamHandler(teamSvc).Register(api)
		NewPlayerHandler(playerSvc).Register(api)
		NewCoachHandler(coachSvc).Register(api)
		NewMatchHandler(matchSvc).Register(api)
		NewStandingsHandler(standingsSvc).Register(api)
	}
}
