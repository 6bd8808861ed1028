package activity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"activityroster/internal/domain"
)

const (
	EventSignedUp     = "activity.signed_up"
	EventUnregistered = "activity.unregistered"
)

// Client-visible messages. Callers match on substrings of these, so keep the
// wording stable.
const (
	MsgActivityNotFound = "Activity not found"
	MsgAlreadySignedUp  = "Student is already signed up for this activity"
	MsgNotSignedUp      = "Student is not signed up for this activity"
	MsgActivityFull     = "Activity is full"
	MsgEmailRequired    = "email is required"
)

type Service interface {
	List(ctx context.Context) (map[string]Activity, error)
	SignUp(ctx context.Context, name, email string) (string, error)
	Unregister(ctx context.Context, name, email string) (string, error)
}

type Options struct {
	// EnforceCapacity rejects signups once MaxParticipants is reached.
	EnforceCapacity bool
}

type service struct {
	uow    domain.UnitOfWork
	repo   Repository
	events domain.EventBus
	opts   Options
	now    func() time.Time
}

func NewService(uow domain.UnitOfWork, repo Repository, events domain.EventBus, opts Options) Service {
	return &service{
		uow:    uow,
		repo:   repo,
		events: events,
		opts:   opts,
		now:    time.Now,
	}
}

func (s *service) List(ctx context.Context) (map[string]Activity, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Activity, len(list))
	for _, a := range list {
		out[a.Name] = a
	}
	return out, nil
}

func (s *service) SignUp(ctx context.Context, name, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.NewValidation(MsgEmailRequired)
	}

	var updated Activity
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.Get(ctx, name)
		if err != nil {
			return err
		}
		if current.HasParticipant(email) {
			return &domain.DomainError{
				Code:       domain.ErrorCodeAlreadySignedUp,
				Message:    MsgAlreadySignedUp,
				HTTPStatus: http.StatusBadRequest,
			}
		}
		if s.opts.EnforceCapacity && current.IsFull() {
			return &domain.DomainError{
				Code:       domain.ErrorCodeActivityFull,
				Message:    MsgActivityFull,
				HTTPStatus: http.StatusBadRequest,
			}
		}

		updated, err = s.repo.AddParticipant(ctx, name, email)
		return err
	})
	if err != nil {
		return "", err
	}

	s.publish(ctx, EventSignedUp, updated, email)
	return fmt.Sprintf("%s signed up for %s", email, name), nil
}

func (s *service) Unregister(ctx context.Context, name, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.NewValidation(MsgEmailRequired)
	}

	var updated Activity
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.Get(ctx, name)
		if err != nil {
			return err
		}
		if !current.HasParticipant(email) {
			return &domain.DomainError{
				Code:       domain.ErrorCodeNotSignedUp,
				Message:    MsgNotSignedUp,
				HTTPStatus: http.StatusBadRequest,
			}
		}

		updated, err = s.repo.RemoveParticipant(ctx, name, email)
		return err
	})
	if err != nil {
		return "", err
	}

	s.publish(ctx, EventUnregistered, updated, email)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func (s *service) publish(ctx context.Context, typ string, a Activity, email string) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, domain.Event{
		Type:       typ,
		OccurredAt: s.now().UTC(),
		Payload: map[string]any{
			"activity":     a.Name,
			"email":        email,
			"participants": len(a.Participants),
		},
	})
}
