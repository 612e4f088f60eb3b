package services

import (
	"context"
	"encoding/json"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"

	"go.uber.org/zap"
)

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardStatsDTO, error)
	GetKanbanTasks(ctx context.Context) ([]dto.KanbanTaskDTO, error)
	GetCalendarRequests(ctx context.Context) ([]dto.CalendarRequestDTO, error)
	ListTechnicians(ctx context.Context) ([]dto.ShortMemberDTO, error)
}

// DashboardService — агрегирующий фасад: собирает сводку из репозиториев
// и отдаёт проекции заявок для канбана и календаря. Метрики каждый раз
// считаются заново; кэшируется только список техников.
type DashboardService struct {
	teamRepo      repositories.TeamRepositoryInterface
	memberRepo    repositories.TeamMemberRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	cache         repositories.CacheRepositoryInterface
	cfg           config.DashboardConfig
	logger        *zap.Logger
}

func NewDashboardService(
	teamRepo repositories.TeamRepositoryInterface,
	memberRepo repositories.TeamMemberRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	cache repositories.CacheRepositoryInterface,
	cfg config.DashboardConfig,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		teamRepo:      teamRepo,
		memberRepo:    memberRepo,
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		cache:         cache,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	stats := &dto.DashboardStatsDTO{}

	var err error
	if stats.TotalTeams, err = s.teamRepo.CountTeams(ctx); err != nil {
		return nil, err
	}
	if stats.TotalMembers, err = s.memberRepo.CountMembers(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveMembers, err = s.memberRepo.CountByStatus(ctx, constants.MemberStatusActive); err != nil {
		return nil, err
	}
	if stats.TotalEquipment, err = s.equipmentRepo.CountEquipment(ctx); err != nil {
		return nil, err
	}
	if stats.TotalRequests, err = s.requestRepo.CountRequests(ctx); err != nil {
		return nil, err
	}

	// В ожидании — только новые заявки; взятые в работу в нагрузку не входят.
	pending, err := s.requestRepo.CountByStatus(ctx, constants.RequestStatusNew)
	if err != nil {
		return nil, err
	}
	stats.PendingRequests = pending

	if stats.OverdueRequests, err = s.requestRepo.CountOverdue(ctx, now); err != nil {
		return nil, err
	}
	if stats.CorrectiveRequests, err = s.requestRepo.CountByType(ctx, constants.RequestTypeCorrective); err != nil {
		return nil, err
	}
	if stats.PreventiveRequests, err = s.requestRepo.CountByType(ctx, constants.RequestTypePreventive); err != nil {
		return nil, err
	}

	stats.TechnicianLoad = TechnicianLoad(pending, stats.ActiveMembers)

	if stats.EquipmentByStatus, err = s.equipmentRepo.CountByStatus(ctx); err != nil {
		return nil, err
	}

	recentRequests, err := s.requestRepo.ListRecent(ctx, s.cfg.RecentLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentRequests = make([]dto.RequestDTO, len(recentRequests))
	for i := range recentRequests {
		stats.RecentRequests[i] = requestToDTO(&recentRequests[i], now)
	}

	recentTeams, err := s.teamRepo.GetRecentTeams(ctx, s.cfg.RecentLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentTeams = make([]dto.TeamDTO, len(recentTeams))
	for i := range recentTeams {
		stats.RecentTeams[i] = teamToDTO(&recentTeams[i])
	}

	if stats.Technicians, err = s.ListTechnicians(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetKanbanTasks — узкая проекция для доски: только то, что нужно карточке.
func (s *DashboardService) GetKanbanTasks(ctx context.Context) ([]dto.KanbanTaskDTO, error) {
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]dto.KanbanTaskDTO, len(requests))
	for i := range requests {
		req := &requests[i]
		var dueDate *string
		if req.DueDate != nil {
			formatted := req.DueDate.Format("2006-01-02")
			dueDate = &formatted
		}
		tasks[i] = dto.KanbanTaskDTO{
			ID:      req.ID,
			Title:   req.Title,
			Status:  req.Status,
			Type:    req.Type,
			DueDate: dueDate,
		}
	}
	return tasks, nil
}

func (s *DashboardService) GetCalendarRequests(ctx context.Context) ([]dto.CalendarRequestDTO, error) {
	requests, err := s.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]dto.CalendarRequestDTO, len(requests))
	for i := range requests {
		req := &requests[i]
		full := requestToDTO(req, now)
		items[i] = dto.CalendarRequestDTO{
			ID:             full.ID,
			Title:          full.Title,
			Description:    full.Description,
			EquipmentID:    full.EquipmentID,
			EquipmentName:  full.EquipmentName,
			Status:         full.Status,
			Type:           full.Type,
			Priority:       full.Priority,
			DueDate:        full.DueDate,
			ScheduledDate:  full.ScheduledDate,
			TechnicianID:   full.TechnicianID,
			TechnicianName: full.TechnicianName,
			TeamID:         full.TeamID,
			TeamName:       full.TeamName,
			IsOverdue:      full.IsOverdue,
			CreatedAt:      full.CreatedAt,
		}
	}
	return items, nil
}

// ListTechnicians отдаёт активных сотрудников для выпадающих списков.
// Список меняется редко, поэтому живёт в Redis с коротким TTL; ошибки кэша
// не фатальны, при любой из них идём в базу.
func (s *DashboardService) ListTechnicians(ctx context.Context) ([]dto.ShortMemberDTO, error) {
	if cached, err := s.cache.Get(ctx, constants.CacheKeyTechnicians); err == nil {
		var technicians []dto.ShortMemberDTO
		if err := json.Unmarshal([]byte(cached), &technicians); err == nil {
			return technicians, nil
		}
		s.logger.Warn("повреждённая запись в кэше техников, перечитываем из базы",
			zap.String("key", constants.CacheKeyTechnicians))
	}

	members, err := s.memberRepo.ListActiveTechnicians(ctx)
	if err != nil {
		return nil, err
	}

	technicians := make([]dto.ShortMemberDTO, len(members))
	for i, m := range members {
		technicians[i] = dto.ShortMemberDTO{ID: m.ID, Name: m.Name}
	}

	if payload, err := json.Marshal(technicians); err == nil {
		if err := s.cache.Set(ctx, constants.CacheKeyTechnicians, payload, s.cfg.TechniciansCacheTTL); err != nil {
			s.logger.Warn("не удалось записать список техников в кэш", zap.Error(err))
		}
	}

	return technicians, nil
}
