package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/model"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/repository"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/validator"
)

// ── 内存存储：三个 mock 仓储共享，用于验证级联与父级查找 ──

type memStore struct {
	cohorts  map[string]model.Cohort
	units    map[string]model.CurricularUnit
	sessions map[string]model.Session
	clock    time.Time
	// failWith 非 nil 时所有操作返回该错误，模拟数据库故障
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		cohorts:  make(map[string]model.Cohort),
		units:    make(map[string]model.CurricularUnit),
		sessions: make(map[string]model.Session),
		clock:    time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// tick 每次写入推进一秒，保证时间戳严格递增
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) cohortPtr(id string) *model.Cohort {
	c, ok := m.cohorts[id]
	if !ok {
		return nil
	}
	return &c
}

func (m *memStore) unitWithCohort(id string) (*model.CurricularUnit, bool) {
	u, ok := m.units[id]
	if !ok {
		return nil, false
	}
	u.Cohort = m.cohortPtr(u.CohortID)
	return &u, true
}

func (m *memStore) sessionsOf(unitID string) []model.Session {
	var result []model.Session
	for _, s := range m.sessions {
		if s.UnitID == unitID {
			result = append(result, s)
		}
	}
	sortSessions(result)
	return result
}

func sortSessions(list []model.Session) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Ordem != b.Ordem {
			return a.Ordem < b.Ordem
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.SessionID < b.SessionID
	})
}

func sortUnits(list []model.CurricularUnit) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Ordem != b.Ordem {
			return a.Ordem < b.Ordem
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.UnitID < b.UnitID
	})
}

// ── Mock CohortRepository ──

type mockCohortRepo struct{ *memStore }

func (m *mockCohortRepo) Create(_ context.Context, c *model.Cohort) error {
	if m.failWith != nil {
		return m.failWith
	}
	_ = c.BeforeCreate(nil)
	now := m.tick()
	c.CreatedAt, c.UpdatedAt = now, now
	stored := *c
	stored.Units = nil
	m.cohorts[c.CohortID] = stored
	return nil
}

func (m *mockCohortRepo) GetByID(_ context.Context, id string) (*model.Cohort, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if c := m.cohortPtr(id); c != nil {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCohortRepo) GetDetail(ctx context.Context, id string) (*model.Cohort, error) {
	c, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Units = m.unitsOf(id)
	for i := range c.Units {
		c.Units[i].Sessions = m.sessionsOf(c.Units[i].UnitID)
	}
	return c, nil
}

func (m *mockCohortRepo) unitsOf(cohortID string) []model.CurricularUnit {
	var result []model.CurricularUnit
	for _, u := range m.units {
		if u.CohortID == cohortID {
			result = append(result, u)
		}
	}
	sortUnits(result)
	return result
}

func (m *mockCohortRepo) List(_ context.Context) ([]model.Cohort, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]model.Cohort, 0, len(m.cohorts))
	for _, c := range m.cohorts {
		c.Units = m.unitsOf(c.CohortID)
		result = append(result, c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Term != b.Term {
			return a.Term > b.Term
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.CohortID < b.CohortID
	})
	return result, nil
}

func (m *mockCohortRepo) Update(_ context.Context, c *model.Cohort) error {
	if m.failWith != nil {
		return m.failWith
	}
	old, ok := m.cohorts[c.CohortID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = m.tick()
	stored := *c
	stored.Units = nil
	m.cohorts[c.CohortID] = stored
	return nil
}

func (m *mockCohortRepo) Delete(_ context.Context, id string) (*repository.DeleteResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if _, ok := m.cohorts[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	res := &repository.DeleteResult{}
	for uid, u := range m.units {
		if u.CohortID != id {
			continue
		}
		for sid, s := range m.sessions {
			if s.UnitID == uid {
				delete(m.sessions, sid)
				res.Sessions++
			}
		}
		delete(m.units, uid)
		res.Units++
	}
	delete(m.cohorts, id)
	return res, nil
}

// ── Mock UnitRepository ──

type mockUnitRepo struct{ *memStore }

func (m *mockUnitRepo) Create(_ context.Context, u *model.CurricularUnit) error {
	if m.failWith != nil {
		return m.failWith
	}
	_ = u.BeforeCreate(nil)
	now := m.tick()
	u.CreatedAt, u.UpdatedAt = now, now
	stored := *u
	stored.Cohort, stored.Sessions = nil, nil
	m.units[u.UnitID] = stored
	return nil
}

func (m *mockUnitRepo) GetByID(_ context.Context, id string) (*model.CurricularUnit, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if u, ok := m.unitWithCohort(id); ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUnitRepo) GetDetail(ctx context.Context, id string) (*model.CurricularUnit, error) {
	u, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Sessions = m.sessionsOf(id)
	return u, nil
}

func (m *mockUnitRepo) List(_ context.Context, cohortID string) ([]model.CurricularUnit, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []model.CurricularUnit
	for id, u := range m.units {
		if cohortID != "" && u.CohortID != cohortID {
			continue
		}
		full, _ := m.unitWithCohort(id)
		result = append(result, *full)
	}
	sortUnits(result)
	return result, nil
}

func (m *mockUnitRepo) Update(_ context.Context, u *model.CurricularUnit) error {
	if m.failWith != nil {
		return m.failWith
	}
	old, ok := m.units[u.UnitID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.CreatedAt = old.CreatedAt
	u.UpdatedAt = m.tick()
	stored := *u
	stored.CohortID = old.CohortID
	stored.Cohort, stored.Sessions = nil, nil
	m.units[u.UnitID] = stored
	return nil
}

func (m *mockUnitRepo) Delete(_ context.Context, id string) (*repository.DeleteResult, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if _, ok := m.units[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	res := &repository.DeleteResult{}
	for sid, s := range m.sessions {
		if s.UnitID == id {
			delete(m.sessions, sid)
			res.Sessions++
		}
	}
	delete(m.units, id)
	return res, nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct{ *memStore }

func (m *mockSessionRepo) Create(_ context.Context, s *model.Session) error {
	if m.failWith != nil {
		return m.failWith
	}
	_ = s.BeforeCreate(nil)
	now := m.tick()
	s.CreatedAt, s.UpdatedAt = now, now
	stored := *s
	stored.Unit = nil
	m.sessions[s.SessionID] = stored
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	s, ok := m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if u, ok := m.units[s.UnitID]; ok {
		s.Unit = &u
	}
	return &s, nil
}

func (m *mockSessionRepo) GetDetail(_ context.Context, id string) (*model.Session, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	s, ok := m.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.Unit, _ = m.unitWithCohort(s.UnitID)
	return &s, nil
}

func (m *mockSessionRepo) List(_ context.Context, filter repository.SessionFilter) ([]model.Session, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []model.Session
	for _, s := range m.sessions {
		if filter.UnitID != "" && s.UnitID != filter.UnitID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		s.Unit, _ = m.unitWithCohort(s.UnitID)
		result = append(result, s)
	}
	sortSessions(result)
	return result, nil
}

func (m *mockSessionRepo) Update(_ context.Context, s *model.Session) error {
	if m.failWith != nil {
		return m.failWith
	}
	old, ok := m.sessions[s.SessionID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.CreatedAt = old.CreatedAt
	s.UpdatedAt = m.tick()
	stored := *s
	stored.UnitID = old.UnitID
	stored.Unit = nil
	m.sessions[s.SessionID] = stored
	return nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.sessions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionRepo) CountByUnitIDs(_ context.Context, unitIDs []string) (map[string]int64, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	want := make(map[string]bool, len(unitIDs))
	for _, id := range unitIDs {
		want[id] = true
	}
	counts := make(map[string]int64)
	for _, s := range m.sessions {
		if want[s.UnitID] {
			counts[s.UnitID]++
		}
	}
	return counts, nil
}

func (m *mockSessionRepo) CountByStatus(_ context.Context, unitID string) (map[model.SessionStatus]int64, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	counts := make(map[model.SessionStatus]int64)
	for _, s := range m.sessions {
		if s.UnitID == unitID {
			counts[s.Status]++
		}
	}
	return counts, nil
}

// ── 测试辅助 ──

// missingID 格式合法但不存在的主键
const missingID = "00000000-0000-4000-8000-000000000000"

type testServices struct {
	store   *memStore
	cohort  CohortService
	unit    UnitService
	session SessionService
	export  *exportService
}

func setupTestServices() *testServices {
	store := newMemStore()
	repo := &repository.Repository{
		Cohort:  &mockCohortRepo{store},
		Unit:    &mockUnitRepo{store},
		Session: &mockSessionRepo{store},
	}
	logger := zap.NewNop()
	v := validator.New()
	return &testServices{
		store:   store,
		cohort:  NewCohortService(repo, v, logger),
		unit:    NewUnitService(repo, v, logger),
		session: NewSessionService(repo, v, logger),
		export: &exportService{
			repo:   repo,
			logger: logger,
			now:    func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
		},
	}
}
