// Package executor runs page-object scenarios against live sessions.
package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/locator"
	"github.com/mosip/injitest/pkg/logger"
	"github.com/mosip/injitest/pkg/page"
)

// RunnerConfig configures the scenario runner.
type RunnerConfig struct {
	FindTimeout time.Duration // Resolve timeout for page objects (0 = page.DefaultTimeout)
	StopOnFail  bool          // Skip remaining scenarios after the first failure

	// ArtifactsDir receives a screenshot and UI source for every failed or
	// errored step, under <ArtifactsDir>/<run ID>/. Empty disables capture.
	// Drivers that are not a core.ArtifactCollector are never captured.
	ArtifactsDir string

	// BeforeScenario brings the app to the scenario's start screen.
	// A returned error marks the scenario errored without running it.
	BeforeScenario func(driver core.Driver, sc Scenario) error

	// Live progress callbacks
	OnScenarioStart func(device string, idx, total int, sc Scenario)
	OnStepComplete  func(device string, step core.StepResult)
	OnScenarioEnd   func(device string, result core.ScenarioResult)
}

// Runner runs scenarios sequentially on one session.
type Runner struct {
	config RunnerConfig
	driver core.Driver
	device string
	runID  string
}

// New creates a new Runner. device labels results and log lines.
func New(driver core.Driver, device string, cfg RunnerConfig) *Runner {
	return &Runner{
		config: cfg,
		driver: driver,
		device: device,
	}
}

// Run executes scenarios in order and returns the suite result.
// A cancelled ctx skips whatever has not started.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*core.SuiteResult, error) {
	suite := &core.SuiteResult{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
	}
	r.runID = suite.RunID
	log := logger.WithField("run", suite.RunID)
	log.Infof("running %d scenario(s) on %s", len(scenarios), r.device)

	failed := false
	for i, sc := range scenarios {
		var result core.ScenarioResult
		if ctx.Err() != nil || (failed && r.config.StopOnFail) {
			result = skippedScenario(sc, r.device, r.driver.Platform())
		} else {
			result = r.runScenario(ctx, i, len(scenarios), sc)
		}
		if !result.Status.IsSuccess() {
			failed = true
		}
		suite.Scenarios = append(suite.Scenarios, result)
	}

	suite.Duration = time.Since(suite.StartTime)
	suite.ComputeSummary()
	log.Infof("passed %d/%d in %s", suite.PassedScenarios, suite.TotalScenarios, suite.Duration)
	return suite, ctx.Err()
}

func (r *Runner) newBase() *page.BasePage {
	var opts []page.Option
	if r.config.FindTimeout > 0 {
		opts = append(opts, page.WithTimeout(r.config.FindTimeout))
	}
	return page.NewBasePage(r.driver, opts...)
}

// runScenario executes one scenario. The first failing step fails the
// scenario and the remaining steps are skipped.
func (r *Runner) runScenario(ctx context.Context, idx, total int, sc Scenario) core.ScenarioResult {
	if r.config.OnScenarioStart != nil {
		r.config.OnScenarioStart(r.device, idx, total, sc)
	}

	result := core.ScenarioResult{
		Name:      sc.Name,
		Device:    r.device,
		Platform:  r.driver.Platform(),
		StartTime: time.Now(),
	}

	var prepErr error
	if r.config.BeforeScenario != nil {
		prepErr = r.config.BeforeScenario(r.driver, sc)
	}

	state := &State{Base: r.newBase()}
	stopped := prepErr != nil
	for i, step := range sc.Steps {
		sr := core.StepResult{Index: i, Name: step.Name, StartTime: time.Now()}

		switch {
		case stopped:
			sr.Status = core.StatusSkipped
		case ctx.Err() != nil:
			sr.Status = core.StatusSkipped
			stopped = true
		default:
			err := step.Run(state)
			sr.Duration = time.Since(sr.StartTime)
			sr.Category = core.CategoryOf(err)
			sr.Status = statusOf(err)
			if err != nil {
				sr.Error = err.Error()
				stopped = true
				logger.Warn("%s/%s on %s: %v", sc.Name, step.Name, r.device, err)
			}
			if core.ShouldCapture(sr.Status) {
				sr.Attachments = r.captureArtifacts(sc, i)
			}
		}

		result.Steps = append(result.Steps, sr)
		if r.config.OnStepComplete != nil && sr.Status != core.StatusSkipped {
			r.config.OnStepComplete(r.device, sr)
		}
	}

	result.Duration = time.Since(result.StartTime)
	result.ComputeSummary()
	switch {
	case prepErr != nil:
		result.Status = core.StatusErrored
		result.Error = prepErr.Error()
	case ctx.Err() != nil && result.SkippedSteps > 0:
		result.Status = core.StatusErrored
		result.Error = ctx.Err().Error()
	default:
		result.Status = result.AggregateStatus()
		for _, s := range result.Steps {
			if s.Error != "" {
				result.Error = s.Error
				break
			}
		}
	}

	if r.config.OnScenarioEnd != nil {
		r.config.OnScenarioEnd(r.device, result)
	}
	return result
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// captureArtifacts saves the screen state after a failed step. Capture
// failures are logged and never change the step result.
func (r *Runner) captureArtifacts(sc Scenario, stepIdx int) []core.Attachment {
	collector, ok := r.driver.(core.ArtifactCollector)
	if !ok || r.config.ArtifactsDir == "" {
		return nil
	}
	dir := filepath.Join(r.config.ArtifactsDir, r.runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("artifacts dir %s: %v", dir, err)
		return nil
	}
	prefix := unsafeFileChars.ReplaceAllString(strings.Join([]string{r.device, sc.Name, fmt.Sprint(stepIdx)}, "_"), "-")

	var attachments []core.Attachment
	save := func(name, ext, contentType string, data []byte) {
		path := filepath.Join(dir, prefix+"_"+name+ext)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			logger.Warn("save %s: %v", path, err)
			return
		}
		attachments = append(attachments, core.Attachment{Name: name, ContentType: contentType, Path: path})
	}

	if data, err := collector.Screenshot(); err != nil {
		logger.Warn("screenshot after %s step %d: %v", sc.Name, stepIdx, err)
	} else if len(data) > 0 {
		save(core.AttachmentScreenshot, ".png", core.ContentTypePNG, data)
	}
	if src, err := collector.Source(); err != nil {
		logger.Warn("source after %s step %d: %v", sc.Name, stepIdx, err)
	} else if src != "" {
		save(core.AttachmentSource, ".xml", core.ContentTypeXML, []byte(src))
	}
	return attachments
}

func skippedScenario(sc Scenario, device string, platform locator.Platform) core.ScenarioResult {
	result := core.ScenarioResult{
		Name:     sc.Name,
		Device:   device,
		Platform: platform,
		Status:   core.StatusSkipped,
	}
	for i, step := range sc.Steps {
		result.Steps = append(result.Steps, core.StepResult{Index: i, Name: step.Name, Status: core.StatusSkipped})
	}
	result.ComputeSummary()
	return result
}

// statusOf maps a step error to its status: assertion and interaction
// failures fail the step, anything else means the run itself broke.
func statusOf(err error) core.StepStatus {
	switch core.CategoryOf(err) {
	case core.ErrCategoryNone:
		return core.StatusPassed
	case core.ErrCategoryAssertion, core.ErrCategoryInteraction:
		return core.StatusFailed
	default:
		return core.StatusErrored
	}
}
