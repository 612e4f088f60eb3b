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

type RequestController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewRequestController(service services.RequestServiceInterface, logger *zap.Logger) *RequestController {
	return &RequestController{requestService: service, logger: logger}
}

func (c *RequestController) GetRequests(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, total, err := c.requestService.GetRequests(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetRequests: ошибка при получении списка заявок", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Список заявок успешно получен", http.StatusOK, total)
}

func (c *RequestController) FindRequest(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("FindRequest: некорректный ID заявки", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID заявки", err, nil),
			c.logger,
		)
	}

	res, err := c.requestService.FindRequest(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("FindRequest: ошибка при поиске заявки", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Заявка успешно найдена", http.StatusOK)
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	var payload dto.CreateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("CreateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("CreateRequest: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.CreateRequest(ctx.Request().Context(), payload)
	if err != nil {
		c.logger.Error("CreateRequest: ошибка при создании заявки", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Заявка успешно создана", http.StatusCreated)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("UpdateRequest: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID заявки", err, nil),
			c.logger,
		)
	}

	var payload dto.UpdateRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("UpdateRequest: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.UpdateRequest(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("UpdateRequest: ошибка при обновлении заявки", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Заявка успешно обновлена", http.StatusOK)
}

// MoveRequest — перенос карточки на канбане: {taskId, newStatus}.
func (c *RequestController) MoveRequest(ctx echo.Context) error {
	var payload dto.MoveRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("MoveRequest: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("MoveRequest: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.MoveRequest(ctx.Request().Context(), payload.TaskID, payload.NewStatus)
	if err != nil {
		c.logger.Error("MoveRequest: ошибка при переносе заявки",
			zap.Uint64("taskId", payload.TaskID), zap.String("newStatus", payload.NewStatus), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Заявка успешно перенесена", http.StatusOK)
}

func (c *RequestController) DeleteRequest(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("DeleteRequest: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID заявки", err, nil),
			c.logger,
		)
	}

	if err := c.requestService.DeleteRequest(ctx.Request().Context(), id); err != nil {
		c.logger.Error("DeleteRequest: ошибка при удалении заявки", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Заявка успешно удалена", http.StatusOK)
}

func (c *RequestController) GetHistory(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("GetHistory: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID заявки", err, nil),
			c.logger,
		)
	}

	res, err := c.requestService.ListHistory(ctx.Request().Context(), id)
	if err != nil {
		c.logger.Error("GetHistory: ошибка при получении журнала", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Журнал обслуживания успешно получен", http.StatusOK)
}

func (c *RequestController) AddHistoryRecord(ctx echo.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		c.logger.Error("AddHistoryRecord: неверный формат ID", zap.String("id", ctx.Param("id")), zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат ID заявки", err, nil),
			c.logger,
		)
	}

	var payload dto.CreateHistoryDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("AddHistoryRecord: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(
			ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных в теле запроса", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.logger.Error("AddHistoryRecord: ошибка валидации данных", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.requestService.AddHistoryRecord(ctx.Request().Context(), id, payload)
	if err != nil {
		c.logger.Error("AddHistoryRecord: ошибка при записи в журнал", zap.Uint64("id", id), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "Запись в журнал обслуживания добавлена", http.StatusCreated)
}
