package metrics

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activityroster/internal/domain/activity"
)

type rosterStub struct {
	list []activity.Activity
	err  error
}

func (s *rosterStub) List(context.Context) ([]activity.Activity, error) {
	return s.list, s.err
}

func TestRosterCollector_ReadsCurrentRoster(t *testing.T) {
	src := &rosterStub{list: []activity.Activity{
		{Name: "Chess Club", MaxParticipants: 12, Participants: []string{"a@x.edu", "b@x.edu"}},
		{Name: "Gym Class", MaxParticipants: 30},
	}}
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewRosterCollector(src))

	expected := `
# HELP activity_roster_participants Current number of participants per activity.
# TYPE activity_roster_participants gauge
activity_roster_participants{activity="Chess Club"} 2
activity_roster_participants{activity="Gym Class"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "activity_roster_participants"))

	// The next scrape sees the change without any push.
	src.list[1].Participants = []string{"c@x.edu"}
	expected = strings.Replace(expected, `{activity="Gym Class"} 0`, `{activity="Gym Class"} 1`, 1)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "activity_roster_participants"))

	count, err := testutil.GatherAndCount(reg, "activity_roster_max_participants")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRosterCollector_SourceError(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewRosterCollector(&rosterStub{err: errors.New("unavailable")}))

	_, err := reg.Gather()
	assert.Error(t, err)
}
