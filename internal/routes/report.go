package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

func RUN_REPORT_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {

	var (
		logger = logger.NewLogger()

		reportRepository = repositories.NewReportRepository(dbConn)
		reportService    = services.NewReportService(reportRepository, logger)
		reportCtrl       = controllers.NewReportController(reportService, logger)
	)

	e.GET("/api/reports/requests/export", reportCtrl.ExportRequests)
}
