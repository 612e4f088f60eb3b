package controllers

import (
	"net/http"
	"strconv"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TeamController struct {
	teamService services.TeamServiceInterface
	logger      *zap.Logger
}

func NewTeamController(service services.TeamServiceInterface, logger *zap.Logger) *TeamController {
	return &TeamController{teamService: service, logger: logger}
}

func (c *TeamController) GetTeams(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.teamService.GetTeams(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetTeams: ошибка при получении списка команд", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список команд успешно получен", http.StatusOK, total)
}

func (c *TeamController) FindTeam(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("FindTeam: некорректный ID команды", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID команды", err, nil),
			c.logger,
		)
	}

	res, err := c.teamService.FindTeam(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindTeam: ошибка при поиске команды", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Команда успешно найдена", http.StatusOK)
}

func (c *TeamController) CreateTeam(ctx echo.Context) error {
	var payload dto.CreateTeamDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateTeam: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateTeam: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.teamService.CreateTeam(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateTeam: ошибка при создании команды", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Команда успешно создана", http.StatusCreated)
}

func (c *TeamController) UpdateTeam(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("UpdateTeam: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID команды", err, nil),
			c.logger,
		)
	}

	var payload dto.UpdateTeamDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateTeam: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateTeam: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.teamService.UpdateTeam(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateTeam: ошибка при обновлении команды", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Команда успешно обновлена", http.StatusOK)
}

func (c *TeamController) DeleteTeam(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("DeleteTeam: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID команды", err, nil),
			c.logger,
		)
	}

	if err := c.teamService.DeleteTeam(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteTeam: ошибка при удалении команды", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Команда успешно удалена", http.StatusOK)
}
