package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"
)

// Фейковые репозитории в памяти для тестов сервисного слоя.

type fakeTeamRepo struct {
	teams  map[uint64]entities.Team
	nextID uint64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uint64]entities.Team), nextID: 1}
}

func (f *fakeTeamRepo) GetTeams(ctx context.Context, filter types.Filter) ([]entities.Team, uint64, error) {
	out := f.sorted()
	return out, uint64(len(out)), nil
}

func (f *fakeTeamRepo) GetRecentTeams(ctx context.Context, limit int) ([]entities.Team, error) {
	out := f.sorted()
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeTeamRepo) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return &team, nil
}

func (f *fakeTeamRepo) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	for id, t := range f.teams {
		if t.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeamRepo) CreateTeam(ctx context.Context, team entities.Team) (uint64, error) {
	team.ID = f.nextID
	f.nextID++
	f.teams[team.ID] = team
	return team.ID, nil
}

func (f *fakeTeamRepo) UpdateTeam(ctx context.Context, id uint64, team entities.Team) error {
	if _, ok := f.teams[id]; !ok {
		return apperrors.ErrTeamNotFound
	}
	team.ID = id
	f.teams[id] = team
	return nil
}

func (f *fakeTeamRepo) DeleteTeam(ctx context.Context, id uint64) error {
	if _, ok := f.teams[id]; !ok {
		return apperrors.ErrTeamNotFound
	}
	delete(f.teams, id)
	return nil
}

func (f *fakeTeamRepo) CountTeams(ctx context.Context) (int, error) { return len(f.teams), nil }

func (f *fakeTeamRepo) sorted() []entities.Team {
	out := make([]entities.Team, 0, len(f.teams))
	for _, t := range f.teams {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeMemberRepo struct {
	members map[uint64]entities.TeamMember
	nextID  uint64
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[uint64]entities.TeamMember), nextID: 1}
}

func (f *fakeMemberRepo) GetMembers(ctx context.Context, filter types.Filter) ([]entities.TeamMember, uint64, error) {
	out := f.sorted()
	return out, uint64(len(out)), nil
}

func (f *fakeMemberRepo) FindMember(ctx context.Context, id uint64) (*entities.TeamMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	return &m, nil
}

func (f *fakeMemberRepo) CreateMember(ctx context.Context, member entities.TeamMember) (uint64, error) {
	member.ID = f.nextID
	f.nextID++
	f.members[member.ID] = member
	return member.ID, nil
}

func (f *fakeMemberRepo) UpdateMember(ctx context.Context, id uint64, member entities.TeamMember) error {
	if _, ok := f.members[id]; !ok {
		return apperrors.ErrMemberNotFound
	}
	member.ID = id
	f.members[id] = member
	return nil
}

func (f *fakeMemberRepo) DeleteMember(ctx context.Context, id uint64) error {
	if _, ok := f.members[id]; !ok {
		return apperrors.ErrMemberNotFound
	}
	delete(f.members, id)
	return nil
}

func (f *fakeMemberRepo) ListEmployeeCodes(ctx context.Context) ([]string, error) {
	var codes []string
	for _, m := range f.sorted() {
		if m.EmployeeID != nil {
			codes = append(codes, *m.EmployeeID)
		}
	}
	return codes, nil
}

func (f *fakeMemberRepo) ExistsByEmail(ctx context.Context, email string, excludeID uint64) (bool, error) {
	for id, m := range f.members {
		if m.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) ExistsByPhone(ctx context.Context, phone string, excludeID uint64) (bool, error) {
	for id, m := range f.members {
		if m.Phone != nil && *m.Phone == phone && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	for id, m := range f.members {
		if m.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) ExistsByEmployeeID(ctx context.Context, employeeID string, excludeID uint64) (bool, error) {
	for id, m := range f.members {
		if m.EmployeeID != nil && *m.EmployeeID == employeeID && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) CountMembers(ctx context.Context) (int, error) { return len(f.members), nil }

func (f *fakeMemberRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	count := 0
	for _, m := range f.members {
		if m.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeMemberRepo) ListActiveTechnicians(ctx context.Context) ([]entities.TeamMember, error) {
	var out []entities.TeamMember
	for _, m := range f.sorted() {
		if m.Status == "active" {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMemberRepo) sorted() []entities.TeamMember {
	out := make([]entities.TeamMember, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeEquipmentRepo struct {
	items  map[uint64]entities.Equipment
	nextID uint64
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: make(map[uint64]entities.Equipment), nextID: 1}
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	out := make([]entities.Equipment, 0, len(f.items))
	for _, e := range f.items {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, uint64(len(out)), nil
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}
	return &e, nil
}

func (f *fakeEquipmentRepo) ExistsByName(ctx context.Context, name string, excludeID uint64) (bool, error) {
	for id, e := range f.items {
		if e.Name == name && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, eq entities.Equipment) (uint64, error) {
	eq.ID = f.nextID
	f.nextID++
	f.items[eq.ID] = eq
	return eq.ID, nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, eq entities.Equipment) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrEquipmentNotFound
	}
	eq.ID = id
	f.items[id] = eq
	return nil
}

func (f *fakeEquipmentRepo) DeleteEquipment(ctx context.Context, id uint64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrEquipmentNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeEquipmentRepo) CountEquipment(ctx context.Context) (int, error) { return len(f.items), nil }

func (f *fakeEquipmentRepo) CountByStatus(ctx context.Context) ([]dto.EquipmentStatusCountDTO, error) {
	counts := make(map[string]int)
	for _, e := range f.items {
		counts[e.Status]++
	}
	out := make([]dto.EquipmentStatusCountDTO, 0, len(counts))
	for status, count := range counts {
		out = append(out, dto.EquipmentStatusCountDTO{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}

type fakeRequestRepo struct {
	requests map[uint64]entities.Request
	nextID   uint64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint64]entities.Request), nextID: 1}
}

func (f *fakeRequestRepo) GetRequests(ctx context.Context, filter types.Filter) ([]entities.Request, uint64, error) {
	out := f.sorted()
	return out, uint64(len(out)), nil
}

func (f *fakeRequestRepo) FindRequest(ctx context.Context, id uint64) (*entities.Request, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return &r, nil
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, req entities.Request) (uint64, error) {
	req.ID = f.nextID
	f.nextID++
	now := time.Now()
	req.CreatedAt = &now
	req.UpdatedAt = &now
	f.requests[req.ID] = req
	return req.ID, nil
}

func (f *fakeRequestRepo) UpdateRequest(ctx context.Context, id uint64, req entities.Request) error {
	if _, ok := f.requests[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	req.ID = id
	f.requests[id] = req
	return nil
}

func (f *fakeRequestRepo) UpdateRequestStatus(ctx context.Context, id uint64, status string) error {
	r, ok := f.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	r.Status = status
	f.requests[id] = r
	return nil
}

func (f *fakeRequestRepo) DeleteRequest(ctx context.Context, id uint64) error {
	if _, ok := f.requests[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeRequestRepo) ListRecent(ctx context.Context, limit int) ([]entities.Request, error) {
	out := f.sorted()
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeRequestRepo) ListAll(ctx context.Context) ([]entities.Request, error) {
	return f.sorted(), nil
}

func (f *fakeRequestRepo) CountRequests(ctx context.Context) (int, error) { return len(f.requests), nil }

func (f *fakeRequestRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	return CountByStatus(f.sorted(), status), nil
}

func (f *fakeRequestRepo) CountByType(ctx context.Context, reqType string) (int, error) {
	return CountByType(f.sorted(), reqType), nil
}

func (f *fakeRequestRepo) CountOverdue(ctx context.Context, today time.Time) (int, error) {
	return CountOverdue(f.sorted(), today), nil
}

func (f *fakeRequestRepo) sorted() []entities.Request {
	out := make([]entities.Request, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeHistoryRepo struct {
	records []entities.MaintenanceHistory
	nextID  uint64
}

func newFakeHistoryRepo() *fakeHistoryRepo { return &fakeHistoryRepo{nextID: 1} }

func (f *fakeHistoryRepo) CreateRecord(ctx context.Context, record entities.MaintenanceHistory) (uint64, error) {
	record.ID = f.nextID
	f.nextID++
	f.records = append(f.records, record)
	return record.ID, nil
}

func (f *fakeHistoryRepo) ListByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error) {
	var out []entities.MaintenanceHistory
	for _, r := range f.records {
		if r.RequestID == requestID {
			out = append(out, r)
		}
	}
	return out, nil
}

var errCacheMiss = errors.New("cache: ключ не найден")

type fakeCacheRepo struct {
	values map[string]string
	sets   int
	gets   int
	broken bool
}

func newFakeCacheRepo() *fakeCacheRepo { return &fakeCacheRepo{values: make(map[string]string)} }

func (f *fakeCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if f.broken {
		return errors.New("cache: недоступен")
	}
	f.sets++
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return nil
}

func (f *fakeCacheRepo) Get(ctx context.Context, key string) (string, error) {
	if f.broken {
		return "", errors.New("cache: недоступен")
	}
	f.gets++
	v, ok := f.values[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (f *fakeCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}
