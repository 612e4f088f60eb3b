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

type TeamMemberServiceInterface interface {
	GetMembers(ctx context.Context, filter types.Filter) ([]dto.MemberDTO, uint64, error)
	FindMember(ctx context.Context, id uint64) (*dto.MemberDTO, error)
	CreateMember(ctx context.Context, data dto.CreateMemberDTO) (*dto.MemberDTO, error)
	UpdateMember(ctx context.Context, id uint64, data dto.UpdateMemberDTO) (*dto.MemberDTO, error)
	DeleteMember(ctx context.Context, id uint64) error

	// NextEmployeeCode — предпросмотр следующего табельного кода для формы.
	// Код не резервируется: до сохранения сотрудника его может занять другой.
	NextEmployeeCode(ctx context.Context) (string, error)
}

type TeamMemberService struct {
	memberRepo repositories.TeamMemberRepositoryInterface
	teamRepo   repositories.TeamRepositoryInterface
	logger     *zap.Logger
}

func NewTeamMemberService(
	memberRepo repositories.TeamMemberRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) TeamMemberServiceInterface {
	return &TeamMemberService{memberRepo: memberRepo, teamRepo: teamRepo, logger: logger}
}

func (s *TeamMemberService) GetMembers(ctx context.Context, filter types.Filter) ([]dto.MemberDTO, uint64, error) {
	members, total, err := s.memberRepo.GetMembers(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]dto.MemberDTO, len(members))
	for i := range members {
		dtos[i] = memberToDTO(&members[i])
	}
	return dtos, total, nil
}

func (s *TeamMemberService) FindMember(ctx context.Context, id uint64) (*dto.MemberDTO, error) {
	member, err := s.memberRepo.FindMember(ctx, id)
	if err != nil {
		return nil, err
	}
	res := memberToDTO(member)
	return &res, nil
}

func (s *TeamMemberService) NextEmployeeCode(ctx context.Context) (string, error) {
	codes, err := s.memberRepo.ListEmployeeCodes(ctx)
	if err != nil {
		return "", err
	}
	return NextEmployeeCode(codes), nil
}

func (s *TeamMemberService) CreateMember(ctx context.Context, data dto.CreateMemberDTO) (*dto.MemberDTO, error) {
	if _, err := s.teamRepo.FindTeam(ctx, data.TeamID); err != nil {
		return nil, err
	}

	if err := s.checkDuplicates(ctx, data.Name, data.Email, data.Phone, data.EmployeeID, 0); err != nil {
		return nil, err
	}

	member := entities.TeamMember{
		Name:     strings.TrimSpace(data.Name),
		Email:    data.Email,
		Phone:    data.Phone,
		Position: data.Position,
		TeamID:   data.TeamID,
		Status:   constants.MemberStatusActive,
	}

	var err error
	if member.JoiningDate, err = utils.ParseDatePtr(strOrEmpty(data.JoiningDate)); err != nil {
		return nil, apperrors.NewFieldError("joining_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
	}

	// Код не прислали — выделяем следующий свободный. Единственная защита от
	// гонки двух одновременных созданий — уникальный индекс в БД.
	if data.EmployeeID != nil && strings.TrimSpace(*data.EmployeeID) != "" {
		code := strings.TrimSpace(*data.EmployeeID)
		member.EmployeeID = &code
	} else {
		codes, err := s.memberRepo.ListEmployeeCodes(ctx)
		if err != nil {
			return nil, err
		}
		code := NextEmployeeCode(codes)
		member.EmployeeID = &code
	}

	newID, err := s.memberRepo.CreateMember(ctx, member)
	if err != nil {
		s.logger.Error("не удалось создать сотрудника", zap.Error(err))
		return nil, err
	}

	s.logger.Info("сотрудник создан",
		zap.Uint64("id", newID),
		zap.Stringp("employeeId", member.EmployeeID),
	)
	return s.FindMember(ctx, newID)
}

func (s *TeamMemberService) UpdateMember(ctx context.Context, id uint64, data dto.UpdateMemberDTO) (*dto.MemberDTO, error) {
	existing, err := s.memberRepo.FindMember(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if data.Name != nil {
		merged.Name = strings.TrimSpace(*data.Name)
	}
	if data.Email != nil {
		merged.Email = *data.Email
	}
	if data.Phone != nil {
		merged.Phone = data.Phone
	}
	if data.Position != nil {
		merged.Position = data.Position
	}
	if data.EmployeeID != nil {
		// Очищенный код трактуем как на создании: выделяем следующий свободный,
		// пустая строка в employee_id не сохраняется.
		code := strings.TrimSpace(*data.EmployeeID)
		if code == "" {
			codes, err := s.memberRepo.ListEmployeeCodes(ctx)
			if err != nil {
				return nil, err
			}
			code = NextEmployeeCode(codes)
		}
		merged.EmployeeID = &code
	}
	if data.Status != nil {
		merged.Status = *data.Status
	}
	if data.TeamID != nil {
		if _, err := s.teamRepo.FindTeam(ctx, *data.TeamID); err != nil {
			return nil, err
		}
		merged.TeamID = *data.TeamID
	}
	if data.JoiningDate != nil {
		if merged.JoiningDate, err = utils.ParseDatePtr(*data.JoiningDate); err != nil {
			return nil, apperrors.NewFieldError("joining_date", "Неверный формат даты, ожидается YYYY-MM-DD.")
		}
	}

	if err := s.checkDuplicates(ctx, merged.Name, merged.Email, merged.Phone, merged.EmployeeID, id); err != nil {
		return nil, err
	}

	if err := s.memberRepo.UpdateMember(ctx, id, merged); err != nil {
		s.logger.Error("не удалось обновить сотрудника", zap.Uint64("id", id), zap.Error(err))
		return nil, err
	}

	return s.FindMember(ctx, id)
}

func (s *TeamMemberService) DeleteMember(ctx context.Context, id uint64) error {
	if err := s.memberRepo.DeleteMember(ctx, id); err != nil {
		return err
	}
	s.logger.Info("сотрудник удалён", zap.Uint64("id", id))
	return nil
}

// checkDuplicates держит все проверки уникальности сотрудника в одном месте,
// чтобы ошибка всегда называла конкретное поле.
func (s *TeamMemberService) checkDuplicates(ctx context.Context, name, email string, phone, employeeID *string, excludeID uint64) error {
	if exists, err := s.memberRepo.ExistsByName(ctx, strings.TrimSpace(name), excludeID); err != nil {
		return err
	} else if exists {
		return apperrors.NewFieldError("name", "Сотрудник с именем %q уже существует.", name)
	}

	if exists, err := s.memberRepo.ExistsByEmail(ctx, email, excludeID); err != nil {
		return err
	} else if exists {
		return apperrors.NewFieldError("email", "Сотрудник с email %q уже существует.", email)
	}

	if phone != nil && *phone != "" {
		if exists, err := s.memberRepo.ExistsByPhone(ctx, *phone, excludeID); err != nil {
			return err
		} else if exists {
			return apperrors.NewFieldError("phone", "Сотрудник с телефоном %q уже существует.", *phone)
		}
	}

	if employeeID != nil && *employeeID != "" {
		if exists, err := s.memberRepo.ExistsByEmployeeID(ctx, *employeeID, excludeID); err != nil {
			return err
		} else if exists {
			return apperrors.NewFieldError("employee_id", "Табельный код %q уже занят.", *employeeID)
		}
	}

	return nil
}

func memberToDTO(member *entities.TeamMember) dto.MemberDTO {
	return dto.MemberDTO{
		ID:          member.ID,
		Name:        member.Name,
		Email:       member.Email,
		Phone:       member.Phone,
		Position:    member.Position,
		EmployeeID:  member.EmployeeID,
		Status:      member.Status,
		JoiningDate: utils.FormatDatePtr(member.JoiningDate),
		TeamID:      member.TeamID,
		TeamName:    member.TeamName,
		CreatedAt:   formatEntityTime(member.CreatedAt),
		UpdatedAt:   formatEntityTime(member.UpdatedAt),
	}
}
