package routes

import (
	"gearguard/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// InitRouter подключает все маршруты приложения.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config) {
	RUN_TEAM_ROUTER(e, dbConn)
	RUN_MEMBER_ROUTER(e, dbConn)
	RUN_EQUIPMENT_ROUTER(e, dbConn)
	RUN_REQUEST_ROUTER(e, dbConn)
	RUN_DASHBOARD_ROUTER(e, dbConn, redisClient, cfg)
	RUN_REPORT_ROUTER(e, dbConn)
}
