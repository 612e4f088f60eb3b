package services

import (
	"context"
	"database/sql"
	"fmt"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	ExportRequestsRegister(ctx context.Context, filter entities.ReportFilter) (*excelize.File, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

var reportHeaders = []string{
	"№", "ID", "Заголовок", "Тип", "Приоритет", "Статус",
	"Оборудование", "Команда", "Техник",
	"Плановая дата", "Срок", "Дата завершения",
	"Оценка, ч", "Факт, ч", "Создана",
}

// ExportRequestsRegister собирает реестр заявок в книгу Excel.
// Пустые значения остаются пустыми ячейками, даты выводятся как YYYY-MM-DD.
func (s *ReportService) ExportRequestsRegister(ctx context.Context, filter entities.ReportFilter) (*excelize.File, error) {
	items, total, err := s.reportRepo.GetReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Реестр заявок"
	f.SetSheetName("Sheet1", sheet)

	for col, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("не удалось записать заголовок отчёта: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastHeader, _ := excelize.CoordinatesToCellName(len(reportHeaders), 1)
		_ = f.SetCellStyle(sheet, "A1", lastHeader, headerStyle)
	}

	for i, item := range items {
		row := i + 2
		values := []interface{}{
			i + 1,
			item.RequestID,
			item.Title,
			item.Type,
			item.Priority,
			item.Status,
			nullStringValue(item.EquipmentName),
			nullStringValue(item.TeamName),
			nullStringValue(item.TechnicianName),
			nullDateValue(item.ScheduledDate),
			nullDateValue(item.DueDate),
			nullDateValue(item.CompletedDate),
			nullFloatValue(item.EstimatedHours),
			nullFloatValue(item.ActualHours),
			item.CreatedAt.Format("2006-01-02"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("не удалось записать строку отчёта: %w", err)
			}
		}
	}

	s.logger.Info("реестр заявок выгружен", zap.Uint64("rows", total))
	return f, nil
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func nullDateValue(v sql.NullTime) string {
	if !v.Valid {
		return ""
	}
	return v.Time.Format("2006-01-02")
}

func nullFloatValue(v sql.NullFloat64) interface{} {
	if !v.Valid {
		return ""
	}
	return v.Float64
}
