package services

import (
	"context"
	"strings"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter types.Filter) ([]dto.RequestDTO, uint64, error)
	FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error)
	CreateRequest(ctx context.Context, data dto.CreateRequestDTO) (*dto.RequestDTO, error)
	UpdateRequest(ctx context.Context, id uint64, data dto.UpdateRequestDTO) (*dto.RequestDTO, error)
	MoveRequest(ctx context.Context, id uint64, newStatus string) (*dto.RequestDTO, error)
	DeleteRequest(ctx context.Context, id uint64) error

	AddHistoryRecord(ctx context.Context, requestID uint64, data dto.CreateHistoryDTO) (*dto.HistoryDTO, error)
	ListHistory(ctx context.Context, requestID uint64) ([]dto.HistoryDTO, error)
}

// RequestService — жизненный цикл заявки: создание с назначением команды,
// перевод по статусам и полное редактирование.
type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	memberRepo    repositories.TeamMemberRepositoryInterface
	historyRepo   repositories.MaintenanceHistoryRepositoryInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	memberRepo repositories.TeamMemberRepositoryInterface,
	historyRepo repositories.MaintenanceHistoryRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		memberRepo:    memberRepo,
		historyRepo:   historyRepo,
		logger:        logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter types.Filter) ([]dto.RequestDTO, uint64, error) {
	requests, total, err := s.requestRepo.GetRequests(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	dtos := make([]dto.RequestDTO, len(requests))
	for i := range requests {
		dtos[i] = requestToDTO(&requests[i], now)
	}
	return dtos, total, nil
}

func (s *RequestService) FindRequest(ctx context.Context, id uint64) (*dto.RequestDTO, error) {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	res := requestToDTO(req, time.Now())
	return &res, nil
}

// CreateRequest создаёт заявку. Обязательны заголовок и существующий техник;
// значения по умолчанию (статус, тип, приоритет) назначаются только здесь,
// а не в каждом обработчике. Команда выводится из оборудования один раз,
// при создании; дальнейшие правки оборудования заявку не трогают.
func (s *RequestService) CreateRequest(ctx context.Context, data dto.CreateRequestDTO) (*dto.RequestDTO, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, apperrors.NewFieldError("title", "Заголовок заявки обязателен.")
	}
	if data.TechnicianID == 0 {
		return nil, apperrors.NewFieldError("technician_id", "Для заявки обязателен техник.")
	}

	if _, err := s.memberRepo.FindMember(ctx, data.TechnicianID); err != nil {
		return nil, err
	}

	req := entities.Request{
		Title:        strings.TrimSpace(data.Title),
		Description:  data.Description,
		TechnicianID: data.TechnicianID,
		Status:       constants.DefaultRequestStatus,
		Type:         constants.DefaultRequestType,
		Priority:     constants.DefaultRequestPriority,
	}
	if data.Status != nil && *data.Status != "" {
		req.Status = *data.Status
	}
	if data.Type != nil && *data.Type != "" {
		req.Type = *data.Type
	}
	if data.Priority != nil && *data.Priority != "" {
		req.Priority = *data.Priority
	}
	req.EstimatedHours = data.EstimatedHours

	var err error
	if req.ScheduledDate, err = utils.ParseDatePtr(strOrEmpty(data.ScheduledDate)); err != nil {
		return nil, apperrors.NewFieldError("scheduled_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
	}
	if req.DueDate, err = utils.ParseDatePtr(strOrEmpty(data.DueDate)); err != nil {
		return nil, apperrors.NewFieldError("due_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
	}

	// Назначение команды из оборудования
	if data.EquipmentID.Valid {
		equipmentID := data.EquipmentID.Uint64
		teamID, err := s.resolveTeamFromEquipment(ctx, equipmentID)
		if err != nil {
			return nil, err
		}
		req.EquipmentID = &equipmentID
		req.TeamID = teamID
	}

	newID, err := s.requestRepo.CreateRequest(ctx, req)
	if err != nil {
		s.logger.Error("не удалось создать заявку", zap.Error(err))
		return nil, err
	}

	s.logger.Info("заявка создана",
		zap.Uint64("id", newID),
		zap.String("status", req.Status),
		zap.Uint64("technicianId", req.TechnicianID),
	)
	return s.FindRequest(ctx, newID)
}

// resolveTeamFromEquipment выводит команду заявки из обслуживающей команды
// оборудования. Если команда у оборудования не задана, заявка остаётся без
// команды — резолвер ничего не придумывает.
func (s *RequestService) resolveTeamFromEquipment(ctx context.Context, equipmentID uint64) (*uint64, error) {
	eq, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	return eq.MaintenanceTeamID, nil
}

// MoveRequest — перенос карточки на канбане: лёгкая смена статуса.
// Граф переходов сознательно не ограничен: любой известный статус можно
// назначить из любого, это повторяет поведение исходной доски.
func (s *RequestService) MoveRequest(ctx context.Context, id uint64, newStatus string) (*dto.RequestDTO, error) {
	if !constants.IsKnownRequestStatus(newStatus) {
		return nil, apperrors.NewFieldError("newStatus", "Неизвестный статус заявки: %s", newStatus)
	}

	if err := s.requestRepo.UpdateRequestStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	s.logger.Info("заявка переведена в новый статус",
		zap.Uint64("id", id), zap.String("status", newStatus))
	return s.FindRequest(ctx, id)
}

// UpdateRequest — полное редактирование. Резолвер команды повторно не
// запускается: смена оборудования не переназначает команду задним числом.
func (s *RequestService) UpdateRequest(ctx context.Context, id uint64, data dto.UpdateRequestDTO) (*dto.RequestDTO, error) {
	existing, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing

	if data.Title != nil {
		if strings.TrimSpace(*data.Title) == "" {
			return nil, apperrors.NewFieldError("title", "Заголовок заявки обязателен.")
		}
		merged.Title = strings.TrimSpace(*data.Title)
	}
	if data.Description != nil {
		merged.Description = data.Description
	}
	if data.TechnicianID != nil {
		if _, err := s.memberRepo.FindMember(ctx, *data.TechnicianID); err != nil {
			return nil, err
		}
		merged.TechnicianID = *data.TechnicianID
	}
	if data.EquipmentID.Valid {
		equipmentID := data.EquipmentID.Uint64
		if _, err := s.equipmentRepo.FindEquipment(ctx, equipmentID); err != nil {
			return nil, err
		}
		merged.EquipmentID = &equipmentID
	}
	if data.TeamID.Valid {
		teamID := data.TeamID.Uint64
		merged.TeamID = &teamID
	}
	if data.Type != nil {
		merged.Type = *data.Type
	}
	if data.Priority != nil {
		merged.Priority = *data.Priority
	}
	if data.Status != nil {
		if !constants.IsKnownRequestStatus(*data.Status) {
			return nil, apperrors.NewFieldError("status", "Неизвестный статус заявки: %s", *data.Status)
		}
		merged.Status = *data.Status
	}
	if data.ScheduledDate != nil {
		if merged.ScheduledDate, err = utils.ParseDatePtr(*data.ScheduledDate); err != nil {
			return nil, apperrors.NewFieldError("scheduled_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
		}
	}
	if data.DueDate != nil {
		if merged.DueDate, err = utils.ParseDatePtr(*data.DueDate); err != nil {
			return nil, apperrors.NewFieldError("due_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
		}
	}
	if data.CompletedDate != nil {
		if merged.CompletedDate, err = utils.ParseDatePtr(*data.CompletedDate); err != nil {
			return nil, apperrors.NewFieldError("completed_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
		}
	}
	if data.EstimatedHours != nil {
		merged.EstimatedHours = data.EstimatedHours
	}
	if data.ActualHours != nil {
		merged.ActualHours = data.ActualHours
	}

	if err := s.requestRepo.UpdateRequest(ctx, id, merged); err != nil {
		s.logger.Error("не удалось обновить заявку", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return s.FindRequest(ctx, id)
}

// DeleteRequest — грубое операторское удаление; рабочий процесс заявки
// сам по себе записи не удаляет.
func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}

// AddHistoryRecord пишет запись журнала обслуживания по команде внешнего
// участника. Автоматически (например, при переходе в COMPLETED) журнал
// не пополняется.
func (s *RequestService) AddHistoryRecord(ctx context.Context, requestID uint64, data dto.CreateHistoryDTO) (*dto.HistoryDTO, error) {
	if _, err := s.requestRepo.FindRequest(ctx, requestID); err != nil {
		return nil, err
	}

	record := entities.MaintenanceHistory{
		RequestID:  requestID,
		Note:       data.Note,
		RecordedAt: time.Now(),
	}
	newID, err := s.historyRepo.CreateRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	return &dto.HistoryDTO{
		ID:         newID,
		RequestID:  requestID,
		Note:       record.Note,
		RecordedAt: record.RecordedAt.Format(time.RFC3339),
	}, nil
}

func (s *RequestService) ListHistory(ctx context.Context, requestID uint64) ([]dto.HistoryDTO, error) {
	if _, err := s.requestRepo.FindRequest(ctx, requestID); err != nil {
		return nil, err
	}

	records, err := s.historyRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	dtos := make([]dto.HistoryDTO, len(records))
	for i, rec := range records {
		dtos[i] = dto.HistoryDTO{
			ID:         rec.ID,
			RequestID:  rec.RequestID,
			Note:       rec.Note,
			RecordedAt: rec.RecordedAt.Format(time.RFC3339),
		}
	}
	return dtos, nil
}

func requestToDTO(req *entities.Request, now time.Time) dto.RequestDTO {
	return dto.RequestDTO{
		ID:             req.ID,
		Title:          req.Title,
		Description:    req.Description,
		EquipmentID:    req.EquipmentID,
		EquipmentName:  req.EquipmentName,
		TechnicianID:   req.TechnicianID,
		TechnicianName: req.TechnicianName,
		TeamID:         req.TeamID,
		TeamName:       req.TeamName,
		Status:         req.Status,
		Type:           req.Type,
		Priority:       req.Priority,
		ScheduledDate:  utils.FormatDatePtr(req.ScheduledDate),
		DueDate:        utils.FormatDatePtr(req.DueDate),
		CompletedDate:  utils.FormatDatePtr(req.CompletedDate),
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
		IsOverdue:      RequestIsOverdue(req, now),
		CreatedAt:      formatEntityTime(req.CreatedAt),
		UpdatedAt:      formatEntityTime(req.UpdatedAt),
	}
}

func formatEntityTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
