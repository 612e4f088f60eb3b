package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

func RUN_EQUIPMENT_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {

	var (
		logger = logger.NewLogger()

		equipmentRepository = repositories.NewEquipmentRepository(dbConn)
		teamRepository      = repositories.NewTeamRepository(dbConn)
		memberRepository    = repositories.NewTeamMemberRepository(dbConn)
		equipmentService    = services.NewEquipmentService(equipmentRepository, teamRepository, memberRepository, logger)
		equipmentCtrl       = controllers.NewEquipmentController(equipmentService, logger)
	)
	e.GET("/equipment", equipmentCtrl.GetEquipments)
	e.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	e.POST("/equipment", equipmentCtrl.CreateEquipment)
	e.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	e.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}
