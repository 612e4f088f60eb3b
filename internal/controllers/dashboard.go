package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(service services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: service, logger: logger}
}

func (c *DashboardController) GetDashboard(ctx echo.Context) error {
	stats, err := c.dashboardService.GetDashboard(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetDashboard: ошибка при сборе сводки", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, stats, "Статистика для дашборда получена", http.StatusOK)
}

func (c *DashboardController) GetKanban(ctx echo.Context) error {
	tasks, err := c.dashboardService.GetKanbanTasks(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetKanban: ошибка при сборе задач для доски", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, tasks, "Задачи для канбан-доски получены", http.StatusOK)
}

func (c *DashboardController) GetCalendarRequests(ctx echo.Context) error {
	requests, err := c.dashboardService.GetCalendarRequests(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetCalendarRequests: ошибка при сборе заявок для календаря", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, requests, "Заявки для календаря получены", http.StatusOK)
}

func (c *DashboardController) GetTechnicians(ctx echo.Context) error {
	technicians, err := c.dashboardService.ListTechnicians(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetTechnicians: ошибка при получении списка техников", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.TechnicianListDTO{Technicians: technicians}, "Список техников получен", http.StatusOK)
}
