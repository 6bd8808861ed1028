package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"activityroster/internal/domain/activity"
)

const scrapeTimeout = 2 * time.Second

// RosterSource is the read side of the activity directory.
type RosterSource interface {
	List(ctx context.Context) ([]activity.Activity, error)
}

// RosterCollector reports roster sizes read from the directory at scrape time.
type RosterCollector struct {
	source       RosterSource
	participants *prometheus.Desc
	capacity     *prometheus.Desc
}

func NewRosterCollector(source RosterSource) *RosterCollector {
	return &RosterCollector{
		source: source,
		participants: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "participants"),
			"Current number of participants per activity.",
			[]string{"activity"}, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "max_participants"),
			"Advertised capacity per activity.",
			[]string{"activity"}, nil,
		),
	}
}

func (c *RosterCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.participants
	ch <- c.capacity
}

func (c *RosterCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	list, err := c.source.List(ctx)
	if err != nil {
		ch <- prometheus.NewInvalidMetric(c.participants, err)
		return
	}
	for _, a := range list {
		ch <- prometheus.MustNewConstMetric(c.participants, prometheus.GaugeValue, float64(len(a.Participants)), a.Name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(a.MaxParticipants), a.Name)
	}
}
