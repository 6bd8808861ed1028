package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activityroster/internal/domain"
	"activityroster/internal/domain/activity"
)

func TestActivityRepository_ListReturnsSeedCopies(t *testing.T) {
	t.Parallel()

	r := NewActivityRepository(activity.SeedActivities())

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 10)

	// Mutating the result must not leak into the store.
	for i := range list {
		if list[i].Name == "Debate Club" {
			list[i].Participants[0] = "mutated@x.edu"
		}
	}

	got, err := r.Get(context.Background(), "Debate Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"alex@mergington.edu"}, got.Participants)
}

func TestActivityRepository_GetUnknown(t *testing.T) {
	t.Parallel()

	r := NewActivityRepository(activity.SeedActivities())

	_, err := r.Get(context.Background(), "Ghost Club")
	assert.True(t, domain.HasCode(err, domain.ErrorCodeNotFound), "err=%v", err)
}

func TestActivityRepository_AddAndRemovePreserveOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewActivityRepository(activity.SeedActivities())

	_, err := r.AddParticipant(ctx, "Robotics Team", "zoe@mergington.edu")
	require.NoError(t, err)

	got, err := r.RemoveParticipant(ctx, "Robotics Team", "sara@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, []string{"james@mergington.edu", "zoe@mergington.edu"}, got.Participants)
}

func TestActivityRepository_AddRejectsDuplicate(t *testing.T) {
	t.Parallel()

	r := NewActivityRepository(activity.SeedActivities())

	_, err := r.AddParticipant(context.Background(), "Debate Club", "alex@mergington.edu")
	assert.True(t, domain.HasCode(err, domain.ErrorCodeAlreadySignedUp), "err=%v", err)
}

func TestActivityRepository_RemoveMissing(t *testing.T) {
	t.Parallel()

	r := NewActivityRepository(activity.SeedActivities())

	_, err := r.RemoveParticipant(context.Background(), "Debate Club", "ghost@x.edu")
	assert.True(t, domain.HasCode(err, domain.ErrorCodeNotSignedUp), "err=%v", err)

	_, err = r.RemoveParticipant(context.Background(), "Ghost Club", "ghost@x.edu")
	assert.True(t, domain.HasCode(err, domain.ErrorCodeNotFound), "err=%v", err)
}

func TestService_ConcurrentSignUpKeepsParticipantsUnique(t *testing.T) {
	t.Parallel()

	repo := NewActivityRepository(activity.SeedActivities())
	svc := activity.NewService(NewTxManager(), repo, nil, activity.Options{})

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SignUp(context.Background(), "Chess Club", "race@mergington.edu")
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)

	got, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	count := 0
	for _, p := range got.Participants {
		if p == "race@mergington.edu" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestService_ConcurrentDistinctSignUps(t *testing.T) {
	t.Parallel()

	repo := NewActivityRepository(activity.SeedActivities())
	svc := activity.NewService(NewTxManager(), repo, nil, activity.Options{})

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.SignUp(context.Background(), "Gym Class", fmt.Sprintf("s%d@mergington.edu", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := repo.Get(context.Background(), "Gym Class")
	require.NoError(t, err)
	assert.Len(t, got.Participants, 2+n)
}
