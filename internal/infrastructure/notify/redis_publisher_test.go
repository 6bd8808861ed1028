package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activityroster/internal/domain"
)

func TestRedisPublisher_Deliver(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	pub := NewRedisPublisher(RedisConfig{Address: mr.Addr(), Channel: "activities.events"})
	defer pub.Close()
	require.NoError(t, pub.Ping(ctx))

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	sub := client.Subscribe(ctx, "activities.events")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	at := time.Date(2025, time.September, 1, 15, 0, 0, 0, time.UTC)
	err = pub.Deliver(ctx, domain.Event{
		Type:       "activity.signed_up",
		OccurredAt: at,
		Payload:    map[string]any{"activity": "Debate Club", "email": "new@x.edu", "participants": 2},
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got Message
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, "activity.signed_up", got.Type)
		assert.True(t, at.Equal(got.OccurredAt))
		assert.Equal(t, "Debate Club", got.Payload["activity"])
		assert.Equal(t, "new@x.edu", got.Payload["email"])
	case <-ctx.Done():
		t.Fatal("timed out waiting for published event")
	}
}

func TestRedisPublisher_PingFailsWhenServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	pub := NewRedisPublisher(RedisConfig{Address: mr.Addr(), Channel: "activities.events"})
	defer pub.Close()
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, pub.Ping(ctx))
}
