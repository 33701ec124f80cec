package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// metrics counts the replayed commands.
type metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chainreplay",
			Name:      "commands_total",
			Help:      "Number of replayed commands by container, command and outcome.",
		}, []string{"container", "command", "outcome"}),
	}
	m.registry.MustRegister(m.commands)

	return m
}

// observe counts a replayed command.
func (m *metrics) observe(container string, command *Command, err error) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}

	m.commands.WithLabelValues(container, command.Name, outcome).Inc()
}

// summary returns one line per counter, sorted by its labels.
func (m *metrics) summary() ([]string, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, errors.Wrap(err, "failed to gather metrics")
	}

	lines := make([]string, 0)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			lines = append(lines, family.GetName()+"{"+formatLabels(metric.GetLabel())+"} "+strconv.FormatFloat(metric.GetCounter().GetValue(), 'f', -1, 64))
		}
	}
	sort.Strings(lines)

	return lines, nil
}

func formatLabels(labels []*dto.LabelPair) string {
	pairs := make([]string, 0, len(labels))
	for _, label := range labels {
		pairs = append(pairs, label.GetName()+"="+strconv.Quote(label.GetValue()))
	}

	return strings.Join(pairs, ",")
}
