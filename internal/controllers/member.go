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

type TeamMemberController struct {
	memberService services.TeamMemberServiceInterface
	logger        *zap.Logger
}

func NewTeamMemberController(service services.TeamMemberServiceInterface, logger *zap.Logger) *TeamMemberController {
	return &TeamMemberController{memberService: service, logger: logger}
}

func (c *TeamMemberController) GetMembers(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.memberService.GetMembers(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetMembers: ошибка при получении списка сотрудников", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список сотрудников успешно получен", http.StatusOK, total)
}

// NextEmployeeCode — подсказка следующего свободного табельного кода.
// Код не резервируется.
func (c *TeamMemberController) NextEmployeeCode(ctx echo.Context) error {
	code, err := c.memberService.NextEmployeeCode(ctx.Request().Context())
	if err != nil {
		c.logger.Error("NextEmployeeCode: ошибка при вычислении табельного кода", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, dto.NextEmployeeCodeDTO{EmployeeID: code}, "Следующий табельный код вычислен", http.StatusOK)
}

func (c *TeamMemberController) FindMember(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("FindMember: некорректный ID сотрудника", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID сотрудника", err, nil),
			c.logger,
		)
	}

	res, err := c.memberService.FindMember(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindMember: ошибка при поиске сотрудника", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно найден", http.StatusOK)
}

func (c *TeamMemberController) CreateMember(ctx echo.Context) error {
	var payload dto.CreateMemberDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateMember: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateMember: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.memberService.CreateMember(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateMember: ошибка при создании сотрудника", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно создан", http.StatusCreated)
}

func (c *TeamMemberController) UpdateMember(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("UpdateMember: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID сотрудника", err, nil),
			c.logger,
		)
	}

	var payload dto.UpdateMemberDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateMember: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateMember: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.memberService.UpdateMember(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateMember: ошибка при обновлении сотрудника", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Сотрудник успешно обновлён", http.StatusOK)
}

func (c *TeamMemberController) DeleteMember(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("DeleteMember: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID сотрудника", err, nil),
			c.logger,
		)
	}

	if err := c.memberService.DeleteMember(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteMember: ошибка при удалении сотрудника", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Сотрудник успешно удалён", http.StatusOK)
}
