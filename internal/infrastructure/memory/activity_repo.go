package memory

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"activityroster/internal/domain"
	"activityroster/internal/domain/activity"
)

// ActivityRepository keeps the activity directory in process memory.
// It is safe for concurrent use; every returned Activity is a copy.
type ActivityRepository struct {
	mu     sync.RWMutex
	byName map[string]*activity.Activity
}

func NewActivityRepository(seed []activity.Activity) *ActivityRepository {
	r := &ActivityRepository{byName: make(map[string]*activity.Activity, len(seed))}
	for _, a := range seed {
		c := a.Clone()
		r.byName[a.Name] = &c
	}
	return r
}

func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]activity.Activity, 0, len(r.byName))
	for _, a := range r.byName {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ActivityRepository) Get(ctx context.Context, name string) (activity.Activity, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byName[name]
	if !ok {
		return activity.Activity{}, notFound()
	}
	return a.Clone(), nil
}

func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) (activity.Activity, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byName[name]
	if !ok {
		return activity.Activity{}, notFound()
	}
	// Uniqueness holds even for callers that skip the service-level check.
	if a.HasParticipant(email) {
		return activity.Activity{}, &domain.DomainError{
			Code:       domain.ErrorCodeAlreadySignedUp,
			Message:    activity.MsgAlreadySignedUp,
			HTTPStatus: http.StatusBadRequest,
		}
	}

	a.Participants = append(a.Participants, email)
	return a.Clone(), nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) (activity.Activity, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byName[name]
	if !ok {
		return activity.Activity{}, notFound()
	}

	idx := -1
	for i, p := range a.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return activity.Activity{}, &domain.DomainError{
			Code:       domain.ErrorCodeNotSignedUp,
			Message:    activity.MsgNotSignedUp,
			HTTPStatus: http.StatusBadRequest,
		}
	}

	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)
	return a.Clone(), nil
}

func notFound() error {
	return domain.NewNotFound(activity.MsgActivityNotFound)
}
