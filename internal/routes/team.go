package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

func RUN_TEAM_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {

	var (
		logger = logger.NewLogger()

		teamRepository = repositories.NewTeamRepository(dbConn)
		teamService    = services.NewTeamService(teamRepository, logger)
		teamCtrl       = controllers.NewTeamController(teamService, logger)
	)
	e.GET("/teams", teamCtrl.GetTeams)
	e.GET("/teams/:id", teamCtrl.FindTeam)
	e.POST("/teams", teamCtrl.CreateTeam)
	e.PUT("/teams/:id", teamCtrl.UpdateTeam)
	e.DELETE("/teams/:id", teamCtrl.DeleteTeam)
}
