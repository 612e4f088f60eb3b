package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

func RUN_DASHBOARD_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) {

	var (
		logger = logger.NewLogger()

		teamRepository      = repositories.NewTeamRepository(dbConn)
		memberRepository    = repositories.NewTeamMemberRepository(dbConn)
		equipmentRepository = repositories.NewEquipmentRepository(dbConn)
		requestRepository   = repositories.NewRequestRepository(dbConn)
		cacheRepository     = repositories.NewRedisCacheRepository(redisClient)

		dashboardService = services.NewDashboardService(
			teamRepository, memberRepository, equipmentRepository, requestRepository,
			cacheRepository, cfg.Dashboard, logger,
		)
		dashboardCtrl = controllers.NewDashboardController(dashboardService, logger)
	)

	api := e.Group("/api")
	api.GET("/dashboard", dashboardCtrl.GetDashboard)
	api.GET("/kanban", dashboardCtrl.GetKanban)
	api.GET("/requests", dashboardCtrl.GetCalendarRequests)
	api.GET("/technicians", dashboardCtrl.GetTechnicians)
}
