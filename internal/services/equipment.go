package services

import (
	"context"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error)
	FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id uint64, data dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	memberRepo    repositories.TeamMemberRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	memberRepo repositories.TeamMemberRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		memberRepo:    memberRepo,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, uint64, error) {
	items, total, err := s.equipmentRepo.GetEquipments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.EquipmentDTO, len(items))
	for i := range items {
		dtos[i] = equipmentToDTO(&items[i])
	}
	return dtos, total, nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id uint64) (*dto.EquipmentDTO, error) {
	eq, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	res := equipmentToDTO(eq)
	return &res, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, data dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return nil, apperrors.NewFieldError("name", "Название оборудования обязательно.")
	}

	exists, err := s.equipmentRepo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewFieldError("name", "Оборудование с названием %q уже существует.", name)
	}

	eq := entities.Equipment{
		Name:           name,
		Category:       data.Category,
		Company:        data.Company,
		Status:         constants.EquipmentStatusAvailable,
		Location:       data.Location,
		UsedInLocation: data.UsedInLocation,
		WorkCenter:     data.WorkCenter,
		Description:    data.Description,
	}
	if data.Status != nil && *data.Status != "" {
		eq.Status = *data.Status
	}

	if data.MaintenanceTeamID.Valid {
		teamID := data.MaintenanceTeamID.Uint64
		if _, err := s.teamRepo.FindTeam(ctx, teamID); err != nil {
			return nil, err
		}
		eq.MaintenanceTeamID = &teamID
	}
	if data.TechnicianID.Valid {
		technicianID := data.TechnicianID.Uint64
		if _, err := s.memberRepo.FindMember(ctx, technicianID); err != nil {
			return nil, err
		}
		eq.TechnicianID = &technicianID
	}

	if eq.AssignedDate, err = utils.ParseDatePtr(strOrEmpty(data.AssignedDate)); err != nil {
		return nil, apperrors.NewFieldError("assigned_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
	}
	if eq.ScrapDate, err = utils.ParseDatePtr(strOrEmpty(data.ScrapDate)); err != nil {
		return nil, apperrors.NewFieldError("scrap_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
	}

	newID, err := s.equipmentRepo.CreateEquipment(ctx, eq)
	if err != nil {
		s.logger.Error("не удалось создать оборудование", zap.Error(err))
		return nil, err
	}

	s.logger.Info("оборудование создано", zap.Uint64("id", newID), zap.String("name", name))
	return s.FindEquipment(ctx, newID)
}

// UpdateEquipment меняет карточку оборудования. Смена обслуживающей команды
// действует только на будущие заявки: уже созданные сохраняют команду,
// назначенную при создании.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, data dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	existing, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if data.Name != nil {
		name := strings.TrimSpace(*data.Name)
		if name == "" {
			return nil, apperrors.NewFieldError("name", "Название оборудования обязательно.")
		}
		exists, err := s.equipmentRepo.ExistsByName(ctx, name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewFieldError("name", "Оборудование с названием %q уже существует.", name)
		}
		merged.Name = name
	}
	if data.Category != nil {
		merged.Category = data.Category
	}
	if data.Company != nil {
		merged.Company = data.Company
	}
	if data.Status != nil && *data.Status != "" {
		merged.Status = *data.Status
	}
	if data.Location != nil {
		merged.Location = data.Location
	}
	if data.UsedInLocation != nil {
		merged.UsedInLocation = data.UsedInLocation
	}
	if data.WorkCenter != nil {
		merged.WorkCenter = data.WorkCenter
	}
	if data.Description != nil {
		merged.Description = data.Description
	}
	if data.MaintenanceTeamID.Valid {
		teamID := data.MaintenanceTeamID.Uint64
		if _, err := s.teamRepo.FindTeam(ctx, teamID); err != nil {
			return nil, err
		}
		merged.MaintenanceTeamID = &teamID
	}
	if data.TechnicianID.Valid {
		technicianID := data.TechnicianID.Uint64
		if _, err := s.memberRepo.FindMember(ctx, technicianID); err != nil {
			return nil, err
		}
		merged.TechnicianID = &technicianID
	}
	if data.AssignedDate != nil {
		if merged.AssignedDate, err = utils.ParseDatePtr(*data.AssignedDate); err != nil {
			return nil, apperrors.NewFieldError("assigned_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
		}
	}
	if data.ScrapDate != nil {
		if merged.ScrapDate, err = utils.ParseDatePtr(*data.ScrapDate); err != nil {
			return nil, apperrors.NewFieldError("scrap_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
		}
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, merged); err != nil {
		s.logger.Error("не удалось обновить оборудование", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return s.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	s.logger.Info("оборудование удалено", zap.Uint64("id", id))
	return nil
}

func equipmentToDTO(eq *entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:                eq.ID,
		Name:              eq.Name,
		Category:          eq.Category,
		Company:           eq.Company,
		Status:            eq.Status,
		Location:          eq.Location,
		UsedInLocation:    eq.UsedInLocation,
		WorkCenter:        eq.WorkCenter,
		Description:       eq.Description,
		MaintenanceTeamID: eq.MaintenanceTeamID,
		MaintenanceTeam:   eq.MaintenanceTeamName,
		TechnicianID:      eq.TechnicianID,
		Technician:        eq.TechnicianName,
		AssignedDate:      utils.FormatDatePtr(eq.AssignedDate),
		ScrapDate:         utils.FormatDatePtr(eq.ScrapDate),
		CreatedAt:         formatEntityTime(eq.CreatedAt),
		UpdatedAt:         formatEntityTime(eq.UpdatedAt),
	}
}
