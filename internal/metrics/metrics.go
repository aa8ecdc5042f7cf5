// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package metrics counts hardware manager step, erase and port verification
// outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	ResultSkipped   = "skipped"
	ResultMismatch  = "mismatch"
	ResultMalformed = "malformed"
)

// Recorder holds the counters of one hardware manager run.
type Recorder struct {
	steps             *prometheus.CounterVec
	erases            *prometheus.CounterVec
	portVerifications *prometheus.CounterVec
}

// NewRecorder creates the counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metal_hardware_manager_step_total",
			Help: "Total count of decommission steps executed, by step and result",
		}, []string{"step", "result"}),
		erases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metal_hardware_manager_block_device_erase_total",
			Help: "Total count of block device erases, by eraser and result",
		}, []string{"eraser", "result"}),
		portVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "metal_hardware_manager_port_verification_total",
			Help: "Total count of switch port verifications, by result",
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{r.steps, r.erases, r.portVerifications} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) StepCompleted(step string, err error) {
	r.steps.WithLabelValues(step, resultOf(err)).Inc()
}

func (r *Recorder) BlockDeviceErased(eraser string, err error) {
	r.erases.WithLabelValues(eraser, resultOf(err)).Inc()
}

// PortsVerified counts a verification. result is one of ResultSuccess,
// ResultSkipped, ResultMismatch, ResultMalformed or ResultFailure.
func (r *Recorder) PortsVerified(result string) {
	r.portVerifications.WithLabelValues(result).Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}

// StepCounter returns the counter of step with result.
func (r *Recorder) StepCounter(step, result string) prometheus.Counter {
	return r.steps.WithLabelValues(step, result)
}

// BlockDeviceErasedCounter returns the counter of eraser with result.
func (r *Recorder) BlockDeviceErasedCounter(eraser, result string) prometheus.Counter {
	return r.erases.WithLabelValues(eraser, result)
}

// PortsVerifiedCounter returns the port verification counter of result.
func (r *Recorder) PortsVerifiedCounter(result string) prometheus.Counter {
	return r.portVerifications.WithLabelValues(result)
}
