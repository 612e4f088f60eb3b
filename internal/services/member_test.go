package services

import (
	"context"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memberServiceFixture struct {
	svc     TeamMemberServiceInterface
	members *fakeMemberRepo
	teams   *fakeTeamRepo
	teamID  uint64
}

func newMemberServiceFixture(t *testing.T) *memberServiceFixture {
	t.Helper()

	f := &memberServiceFixture{
		members: newFakeMemberRepo(),
		teams:   newFakeTeamRepo(),
	}
	var err error
	f.teamID, err = f.teams.CreateTeam(context.Background(), entities.Team{Name: "Electrical Team"})
	require.NoError(t, err)

	f.svc = NewTeamMemberService(f.members, f.teams, zap.NewNop())
	return f
}

func TestCreateMember_AllocatesEmployeeCode(t *testing.T) {
	f := newMemberServiceFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateMember(ctx, dto.CreateMemberDTO{
		Name: "Rajesh Kumar", Email: "rajesh@example.com", TeamID: f.teamID,
	})
	require.NoError(t, err)
	require.NotNil(t, first.EmployeeID)
	assert.Equal(t, "EMP0001", *first.EmployeeID)

	second, err := f.svc.CreateMember(ctx, dto.CreateMemberDTO{
		Name: "Priya Sharma", Email: "priya@example.com", TeamID: f.teamID,
	})
	require.NoError(t, err)
	require.NotNil(t, second.EmployeeID)
	assert.Equal(t, "EMP0002", *second.EmployeeID)
}

func TestCreateMember_RespectsExplicitCode(t *testing.T) {
	f := newMemberServiceFixture(t)

	res, err := f.svc.CreateMember(context.Background(), dto.CreateMemberDTO{
		Name: "Amit Patel", Email: "amit@example.com", TeamID: f.teamID,
		EmployeeID: utils.StringPtr("EMP0042"),
	})
	require.NoError(t, err)
	require.NotNil(t, res.EmployeeID)
	assert.Equal(t, "EMP0042", *res.EmployeeID)
}

func TestCreateMember_DuplicateChecksNameField(t *testing.T) {
	f := newMemberServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateMember(ctx, dto.CreateMemberDTO{
		Name: "Rajesh Kumar", Email: "rajesh@example.com", TeamID: f.teamID,
		Phone: utils.StringPtr("9876543210"),
	})
	require.NoError(t, err)

	cases := []struct {
		name    string
		payload dto.CreateMemberDTO
		field   string
	}{
		{
			name:    "повтор имени",
			payload: dto.CreateMemberDTO{Name: "Rajesh Kumar", Email: "other@example.com", TeamID: f.teamID},
			field:   "name",
		},
		{
			name:    "повтор email",
			payload: dto.CreateMemberDTO{Name: "Другой", Email: "rajesh@example.com", TeamID: f.teamID},
			field:   "email",
		},
		{
			name: "повтор телефона",
			payload: dto.CreateMemberDTO{
				Name: "Третий", Email: "third@example.com", TeamID: f.teamID,
				Phone: utils.StringPtr("9876543210"),
			},
			field: "phone",
		},
		{
			name: "повтор табельного кода",
			payload: dto.CreateMemberDTO{
				Name: "Четвёртый", Email: "fourth@example.com", TeamID: f.teamID,
				EmployeeID: utils.StringPtr("EMP0001"),
			},
			field: "employee_id",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateMember(ctx, tc.payload)
			var fieldErr *apperrors.InvalidInputError
			require.ErrorAs(t, err, &fieldErr)
			assert.Equal(t, tc.field, fieldErr.Field, "ошибка должна называть конкретное поле")
		})
	}
}

func TestCreateMember_UnknownTeam(t *testing.T) {
	f := newMemberServiceFixture(t)

	_, err := f.svc.CreateMember(context.Background(), dto.CreateMemberDTO{
		Name: "Без команды", Email: "lost@example.com", TeamID: 999,
	})
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
}

func TestNextEmployeeCode_PreviewDoesNotReserve(t *testing.T) {
	f := newMemberServiceFixture(t)
	ctx := context.Background()

	code, err := f.svc.NextEmployeeCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EMP0001", code)

	again, err := f.svc.NextEmployeeCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, code, again, "предпросмотр ничего не резервирует")

	created, err := f.svc.CreateMember(ctx, dto.CreateMemberDTO{
		Name: "Mohammed Ali", Email: "ali@example.com", TeamID: f.teamID,
	})
	require.NoError(t, err)
	assert.Equal(t, code, *created.EmployeeID)

	next, err := f.svc.NextEmployeeCode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EMP0002", next, "после вставки подсказка сдвигается")
}

func TestUpdateMember_DuplicateExcludesSelf(t *testing.T) {
	f := newMemberServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateMember(ctx, dto.CreateMemberDTO{
		Name: "Sunita Verma", Email: "sunita@example.com", TeamID: f.teamID,
	})
	require.NoError(t, err)

	// Обновление без смены email не должно спотыкаться о собственную запись
	updated, err := f.svc.UpdateMember(ctx, created.ID, dto.UpdateMemberDTO{
		Position: utils.StringPtr("Mechanic"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Position)
	assert.Equal(t, "Mechanic", *updated.Position)
}

func TestUpdateMember_ClearedCodeReallocated(t *testing.T) {
	f := newMemberServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateMember(ctx, dto.CreateMemberDTO{
		Name: "Vikram Singh", Email: "vikram@example.com", TeamID: f.teamID,
	})
	require.NoError(t, err)
	require.NotNil(t, created.EmployeeID)
	assert.Equal(t, "EMP0001", *created.EmployeeID)

	// Пустой код на редактировании означает "выдать заново", а не пустую строку
	updated, err := f.svc.UpdateMember(ctx, created.ID, dto.UpdateMemberDTO{
		EmployeeID: utils.StringPtr("  "),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EmployeeID)
	assert.NotEmpty(t, *updated.EmployeeID)
	assert.Regexp(t, `^EMP\d{4,}$`, *updated.EmployeeID)

	// Второй сотрудник с очищенным кодом не должен упереться в уникальный индекс
	other, err := f.svc.CreateMember(ctx, dto.CreateMemberDTO{
		Name: "Anita Desai", Email: "anita@example.com", TeamID: f.teamID,
	})
	require.NoError(t, err)

	otherUpdated, err := f.svc.UpdateMember(ctx, other.ID, dto.UpdateMemberDTO{
		EmployeeID: utils.StringPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, otherUpdated.EmployeeID)
	assert.NotEqual(t, *updated.EmployeeID, *otherUpdated.EmployeeID)
}
