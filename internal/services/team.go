package services

import (
	"context"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context, filter types.Filter) ([]dto.TeamDTO, uint64, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error)
	CreateTeam(ctx context.Context, data dto.CreateTeamDTO) (*dto.TeamDTO, error)
	UpdateTeam(ctx context.Context, id uint64, data dto.UpdateTeamDTO) (*dto.TeamDTO, error)
	DeleteTeam(ctx context.Context, id uint64) error
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context, filter types.Filter) ([]dto.TeamDTO, uint64, error) {
	teams, total, err := s.teamRepo.GetTeams(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.TeamDTO, len(teams))
	for i := range teams {
		dtos[i] = teamToDTO(&teams[i])
	}
	return dtos, total, nil
}

func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	res := teamToDTO(team)
	return &res, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, data dto.CreateTeamDTO) (*dto.TeamDTO, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return nil, apperrors.NewFieldError("name", "Название команды обязательно.")
	}

	exists, err := s.teamRepo.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewFieldError("name", "Команда с названием %q уже существует.", name)
	}

	team := entities.Team{
		Name:        name,
		Department:  data.Department,
		Company:     data.Company,
		Description: data.Description,
	}

	newID, err := s.teamRepo.CreateTeam(ctx, team)
	if err != nil {
		s.logger.Error("не удалось создать команду", zap.Error(err))
		return nil, err
	}

	s.logger.Info("команда создана", zap.Uint64("id", newID), zap.String("name", name))
	return s.FindTeam(ctx, newID)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, data dto.UpdateTeamDTO) (*dto.TeamDTO, error) {
	existing, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if data.Name != nil {
		name := strings.TrimSpace(*data.Name)
		if name == "" {
			return nil, apperrors.NewFieldError("name", "Название команды обязательно.")
		}
		exists, err := s.teamRepo.ExistsByName(ctx, name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewFieldError("name", "Команда с названием %q уже существует.", name)
		}
		merged.Name = name
	}
	if data.Department != nil {
		merged.Department = data.Department
	}
	if data.Company != nil {
		merged.Company = data.Company
	}
	if data.Description != nil {
		merged.Description = data.Description
	}

	if err := s.teamRepo.UpdateTeam(ctx, id, merged); err != nil {
		s.logger.Error("не удалось обновить команду", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return s.FindTeam(ctx, id)
}

// DeleteTeam удаляет команду вместе с её сотрудниками (каскад в БД).
func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	if err := s.teamRepo.DeleteTeam(ctx, id); err != nil {
		return err
	}
	s.logger.Info("команда удалена", zap.Uint64("id", id))
	return nil
}

func teamToDTO(team *entities.Team) dto.TeamDTO {
	return dto.TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Department:  team.Department,
		Company:     team.Company,
		Description: team.Description,
		MemberCount: team.MemberCount,
		CreatedAt:   formatEntityTime(team.CreatedAt),
		UpdatedAt:   formatEntityTime(team.UpdatedAt),
	}
}
