package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/gradplan/internal/app/models"
	"github.com/yigit/gradplan/internal/pkg/apperrors"
	"github.com/yigit/gradplan/internal/rag"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u.UpdatedAt = u.CreatedAt
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		out := *u
		return &out, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*models.RefreshToken{}}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = &models.RefreshToken{Token: token, UserID: userID, ExpiryDate: expiry}
	return nil
}

func (r *fakeTokenRepo) GetToken(_ context.Context, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[token]; ok {
		out := *t
		return &out, nil
	}
	return nil, apperrors.ErrTokenNotFound
}

func (r *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	t.IsRevoked = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.UserID == userID {
			t.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepo) CleanupExpiredTokens(context.Context) (int64, error) {
	return 0, nil
}

func (r *fakeTokenRepo) active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.tokens {
		if !t.IsRevoked {
			n++
		}
	}
	return n
}

type fakeScheduleRepo struct {
	mu        sync.Mutex
	schedules map[uuid.UUID]*models.Schedule
	clock     time.Time
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		schedules: map[uuid.UUID]*models.Schedule{},
		clock:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *fakeScheduleRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = r.tick()
	s.UpdatedAt = s.CreatedAt
	stored := *s
	r.schedules[s.ID] = &stored
	return nil
}

func (r *fakeScheduleRepo) GetByID(_ context.Context, userID int64, id uuid.UUID) (*models.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[id]
	if !ok || s.UserID != userID {
		return nil, apperrors.ErrScheduleNotFound
	}
	out := *s
	return &out, nil
}

func (r *fakeScheduleRepo) ListByUser(_ context.Context, userID int64, offset, limit uint64) ([]models.ScheduleSummary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var own []*models.Schedule
	for _, s := range r.schedules {
		if s.UserID == userID {
			own = append(own, s)
		}
	}
	sort.Slice(own, func(i, j int) bool { return own[i].CreatedAt.After(own[j].CreatedAt) })

	out := []models.ScheduleSummary{}
	for i := offset; i < uint64(len(own)) && i < offset+limit; i++ {
		s := own[i]
		out = append(out, models.ScheduleSummary{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt})
	}
	return out, int64(len(own)), nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, s *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.schedules[s.ID]
	if !ok || existing.UserID != s.UserID {
		return apperrors.ErrScheduleNotFound
	}
	existing.Name = s.Name
	existing.Plan = s.Plan
	existing.UpdatedAt = r.tick()
	s.CreatedAt, s.UpdatedAt = existing.CreatedAt, existing.UpdatedAt
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, userID int64, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schedules[id]
	if !ok || s.UserID != userID {
		return apperrors.ErrScheduleNotFound
	}
	delete(r.schedules, id)
	return nil
}

// fakeSearcher serves canned semantic hits
type fakeSearcher struct {
	state rag.State
	hits  []rag.CourseHit
}

func (f *fakeSearcher) SearchCourses(context.Context, string, int) []rag.CourseHit {
	return f.hits
}

func (f *fakeSearcher) State() (rag.State, string) {
	return f.state, ""
}

type countingObserver struct {
	mu      sync.Mutex
	sources []string
}

func (o *countingObserver) PlanGenerated(source string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sources = append(o.sources, source)
}
