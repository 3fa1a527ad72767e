package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/BG-legacy/TimeWell/internal/clients/redis"
	"github.com/BG-legacy/TimeWell/internal/types"
)

// In-memory repo fakes keyed by ID. They honor only the semantics the
// service layer relies on: missing rows surface gorm.ErrRecordNotFound and
// Create assigns an ID when the caller left it zero.

type fakeEventRepo struct {
	events map[uuid.UUID]*types.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[uuid.UUID]*types.Event{}}
}

func (f *fakeEventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now().UTC()
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) (*types.Event, error) {
	e, ok := f.events[eventID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Event, error) {
	var out []*types.Event
	for _, e := range f.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByUserBetween(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.Event, error) {
	var out []*types.Event
	for _, e := range f.events {
		if e.UserID == userID && !e.StartTime.Before(from) && e.StartTime.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error) {
	if _, ok := f.events[event.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error {
	delete(f.events, eventID)
	return nil
}

type fakeGoalRepo struct {
	goals map[uuid.UUID]*types.Goal
	err   error
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: map[uuid.UUID]*types.Goal{}}
}

func (f *fakeGoalRepo) Create(ctx context.Context, tx *gorm.DB, goal *types.Goal) (*types.Goal, error) {
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	f.goals[goal.ID] = goal
	return goal, nil
}

func (f *fakeGoalRepo) GetByID(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) (*types.Goal, error) {
	g, ok := f.goals[goalID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (f *fakeGoalRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Goal, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*types.Goal
	for _, g := range f.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) Update(ctx context.Context, tx *gorm.DB, goal *types.Goal) (*types.Goal, error) {
	if _, ok := f.goals[goal.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	f.goals[goal.ID] = goal
	return goal, nil
}

func (f *fakeGoalRepo) Delete(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) error {
	delete(f.goals, goalID)
	return nil
}

type fakePrefsRepo struct {
	prefs map[uuid.UUID]*types.UserPreferences
}

func newFakePrefsRepo() *fakePrefsRepo {
	return &fakePrefsRepo{prefs: map[uuid.UUID]*types.UserPreferences{}}
}

func (f *fakePrefsRepo) Create(ctx context.Context, tx *gorm.DB, p *types.UserPreferences) (*types.UserPreferences, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.prefs[p.UserID] = p
	return p, nil
}

func (f *fakePrefsRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error) {
	p, ok := f.prefs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakePrefsRepo) Update(ctx context.Context, tx *gorm.DB, p *types.UserPreferences) (*types.UserPreferences, error) {
	f.prefs[p.UserID] = p
	return p, nil
}

type fakeSuggestionRepo struct {
	suggestions map[uuid.UUID]*types.Suggestion
	createErr   error
}

func newFakeSuggestionRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{suggestions: map[uuid.UUID]*types.Suggestion{}}
}

func (f *fakeSuggestionRepo) Create(ctx context.Context, tx *gorm.DB, s *types.Suggestion) (*types.Suggestion, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now().UTC()
	f.suggestions[s.ID] = s
	return s, nil
}

func (f *fakeSuggestionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Suggestion, error) {
	s, ok := f.suggestions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSuggestionRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Suggestion, error) {
	var out []*types.Suggestion
	for _, s := range f.suggestions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSuggestionRepo) ListByEvent(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) ([]*types.Suggestion, error) {
	var out []*types.Suggestion
	for _, s := range f.suggestions {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSuggestionRepo) Update(ctx context.Context, tx *gorm.DB, s *types.Suggestion) (*types.Suggestion, error) {
	if _, ok := f.suggestions[s.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	f.suggestions[s.ID] = s
	return s, nil
}

func (f *fakeSuggestionRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	delete(f.suggestions, id)
	return nil
}

// fakeModelClient scripts the model's reply.
type fakeModelClient struct {
	result     map[string]any
	err        error
	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeModelClient) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return nil, f.err
	}
	if f.result == nil {
		return nil, errors.New("no scripted result")
	}
	return f.result, nil
}

type fakeNotifier struct {
	published []redisclient.SuggestionEvent
	err       error
}

func (f *fakeNotifier) Publish(ctx context.Context, evt redisclient.SuggestionEvent) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, evt)
	return nil
}

func (f *fakeNotifier) Close() error { return nil }
