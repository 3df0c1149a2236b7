// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/firebase-auth-strategy/internal/logging"
)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	authOutcomes *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(m.withService(tags)).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(m.withService(tags)).Set(value)

	return nil
}

func (m *Monitor) IncrementAuthenticationOutcome(tags map[string]string) error {
	if m.authOutcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.authOutcomes.With(m.withService(tags)).Inc()

	return nil
}

func (m *Monitor) withService(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}

	return labels
}

func (m *Monitor) registerHistograms(r prometheus.Registerer) {
	m.responseTime = register(r, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	), m.logger)
}

func (m *Monitor) registerGauges(r prometheus.Registerer) {
	m.dependencies = register(r, prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	), m.logger)
}

func (m *Monitor) registerCounters(r prometheus.Registerer) {
	m.authOutcomes = register(r, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authentication_outcomes_total",
			Help: "authentication outcomes by strategy, outcome and error code",
		},
		[]string{"strategy", "outcome", "code", "service"},
	), m.logger)
}

// register reuses an already registered collector so the monitor can be created more than once per process
func register[C prometheus.Collector](r prometheus.Registerer, c C, logger logging.LoggerInterface) C {
	err := r.Register(c)
	if err == nil {
		return c
	}

	are := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing
		}
	}

	logger.Errorf("failed registering metric: %v", err)

	return c
}

// NewMonitor creates a monitor registered against the default prometheus registry
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	return NewMonitorWithRegisterer(service, prometheus.DefaultRegisterer, logger)
}

func NewMonitorWithRegisterer(service string, r prometheus.Registerer, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms(r)
	m.registerGauges(r)
	m.registerCounters(r)

	return m
}
