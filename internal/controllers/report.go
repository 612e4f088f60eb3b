package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/services"
	"gearguard/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportRequests выгружает реестр заявок в Excel с учётом фильтров.
func (c *ReportController) ExportRequests(ctx echo.Context) error {
	filter := c.parseFilters(ctx)
	c.logger.Debug("Запрос на выгрузку реестра", zap.Any("filters", filter))

	f, err := c.reportService.ExportRequestsRegister(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("ExportRequests: ошибка при формировании реестра", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileName := fmt.Sprintf("requests_register_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func (c *ReportController) parseFilters(ctx echo.Context) entities.ReportFilter {
	var filter entities.ReportFilter

	if df := ctx.QueryParam("date_from"); df != "" {
		if t, err := time.Parse("2006-01-02", df); err == nil {
			filter.DateFrom = &t
		}
	}
	if dt := ctx.QueryParam("date_to"); dt != "" {
		if t, err := time.Parse("2006-01-02", dt); err == nil {
			filter.DateTo = &t
		}
	}

	parseIDs := func(name string) []uint64 {
		var strs []string
		if arr, ok := ctx.QueryParams()[name+"[]"]; ok {
			strs = arr
		} else if s := ctx.QueryParam(name); s != "" {
			strs = strings.Split(s, ",")
		}
		ids, _ := utils.ParseUint64Slice(strs)
		return ids
	}
	parseStrings := func(name string) []string {
		if arr, ok := ctx.QueryParams()[name+"[]"]; ok {
			return arr
		}
		if s := ctx.QueryParam(name); s != "" {
			return strings.Split(s, ",")
		}
		return nil
	}

	filter.TeamIDs = parseIDs("team_ids")
	filter.TechnicianIDs = parseIDs("technician_ids")
	filter.Types = parseStrings("types")
	filter.Statuses = parseStrings("statuses")
	filter.Priorities = parseStrings("priorities")

	return filter
}
