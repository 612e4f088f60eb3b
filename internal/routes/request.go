package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

func RUN_REQUEST_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {

	var (
		logger = logger.NewLogger()

		requestRepository   = repositories.NewRequestRepository(dbConn)
		equipmentRepository = repositories.NewEquipmentRepository(dbConn)
		memberRepository    = repositories.NewTeamMemberRepository(dbConn)
		historyRepository   = repositories.NewMaintenanceHistoryRepository(dbConn)
		requestService      = services.NewRequestService(
			requestRepository, equipmentRepository, memberRepository, historyRepository, logger,
		)
		requestCtrl = controllers.NewRequestController(requestService, logger)
	)
	e.GET("/requests", requestCtrl.GetRequests)
	e.GET("/requests/:id", requestCtrl.FindRequest)
	e.POST("/requests", requestCtrl.CreateRequest)
	e.PUT("/requests/:id", requestCtrl.UpdateRequest)
	e.DELETE("/requests/:id", requestCtrl.DeleteRequest)

	e.GET("/requests/:id/history", requestCtrl.GetHistory)
	e.POST("/requests/:id/history", requestCtrl.AddHistoryRecord)

	// Перенос карточки на канбан-доске
	e.POST("/kanban/move", requestCtrl.MoveRequest)
}
