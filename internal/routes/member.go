package routes

import (
	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

func RUN_MEMBER_ROUTER(e *echo.Echo, dbConn *pgxpool.Pool) {

	var (
		logger = logger.NewLogger()

		memberRepository = repositories.NewTeamMemberRepository(dbConn)
		teamRepository   = repositories.NewTeamRepository(dbConn)
		memberService    = services.NewTeamMemberService(memberRepository, teamRepository, logger)
		memberCtrl       = controllers.NewTeamMemberController(memberService, logger)
	)
	e.GET("/members", memberCtrl.GetMembers)
	// Маршрут подсказки кода должен стоять раньше /members/:id
	e.GET("/members/next-employee-id", memberCtrl.NextEmployeeCode)
	e.GET("/members/:id", memberCtrl.FindMember)
	e.POST("/members", memberCtrl.CreateMember)
	e.PUT("/members/:id", memberCtrl.UpdateMember)
	e.DELETE("/members/:id", memberCtrl.DeleteMember)
}
