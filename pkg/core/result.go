package core

import (
	"time"

	"github.com/mosip/injitest/pkg/locator"
)

// StepResult captures the outcome of a single scenario step
type StepResult struct {
	Index int    `json:"index"` // 0-based position in scenario
	Name  string `json:"name"`

	Status   StepStatus    `json:"status"`
	Category ErrorCategory `json:"errorCategory,omitempty"`

	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`

	Message string `json:"message,omitempty"` // Human-readable explanation
	Error   string `json:"error,omitempty"`   // Driver's error message, unmodified

	Attachments []Attachment `json:"attachments,omitempty"` // Captured on failure
}

// ScenarioResult captures the outcome of a scenario on one session
type ScenarioResult struct {
	Name     string           `json:"name"`
	Device   string           `json:"device,omitempty"`
	Platform locator.Platform `json:"platform"`

	Status    StepStatus    `json:"status"`
	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"`

	Steps []StepResult `json:"steps"`

	TotalSteps   int `json:"totalSteps"`
	PassedSteps  int `json:"passedSteps"`
	FailedSteps  int `json:"failedSteps"`
	SkippedSteps int `json:"skippedSteps"`

	Error string `json:"error,omitempty"`
}

// ComputeSummary calculates step counts from the Steps slice
func (r *ScenarioResult) ComputeSummary() {
	r.TotalSteps = len(r.Steps)
	r.PassedSteps = 0
	r.FailedSteps = 0
	r.SkippedSteps = 0

	for _, step := range r.Steps {
		switch step.Status {
		case StatusPassed:
			r.PassedSteps++
		case StatusFailed, StatusErrored:
			r.FailedSteps++
		case StatusSkipped:
			r.SkippedSteps++
		}
	}
}

// AggregateStatus determines the scenario status from step results.
// Any failed step fails the scenario; an errored step (and no failed one)
// marks it errored.
func (r *ScenarioResult) AggregateStatus() StepStatus {
	status := StatusPassed
	for _, step := range r.Steps {
		switch step.Status {
		case StatusFailed:
			return StatusFailed
		case StatusErrored:
			status = StatusErrored
		}
	}
	return status
}

// SuiteResult captures the outcome of a whole run
type SuiteResult struct {
	RunID string `json:"runId"`

	StartTime time.Time     `json:"startTime"`
	Duration  time.Duration `json:"duration"` // Wall clock

	Scenarios []ScenarioResult `json:"scenarios"`

	TotalScenarios  int `json:"totalScenarios"`
	PassedScenarios int `json:"passedScenarios"`
	FailedScenarios int `json:"failedScenarios"`
}

// ComputeSummary calculates scenario counts from the Scenarios slice
func (s *SuiteResult) ComputeSummary() {
	s.TotalScenarios = len(s.Scenarios)
	s.PassedScenarios = 0
	s.FailedScenarios = 0

	for _, sc := range s.Scenarios {
		if sc.Status.IsSuccess() {
			s.PassedScenarios++
		} else {
			s.FailedScenarios++
		}
	}
}

// Success returns true if all scenarios passed
func (s *SuiteResult) Success() bool {
	for _, sc := range s.Scenarios {
		if !sc.Status.IsSuccess() {
			return false
		}
	}
	return len(s.Scenarios) > 0
}
