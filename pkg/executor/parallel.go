package executor

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mosip/injitest/pkg/core"
	"github.com/mosip/injitest/pkg/logger"
)

// DeviceWorker represents a single device worker that pulls from the queue.
// Each worker owns its session; page objects are never shared across workers.
type DeviceWorker struct {
	ID       int
	DeviceID string
	Driver   core.Driver
	Cleanup  func()
}

// workItem represents a scenario and its index in the original list.
type workItem struct {
	scenario Scenario
	index    int
}

// ParallelRunner coordinates scenario execution across multiple devices.
type ParallelRunner struct {
	workers []DeviceWorker
	config  RunnerConfig
}

// NewParallelRunner creates a parallel runner with multiple device workers.
func NewParallelRunner(workers []DeviceWorker, config RunnerConfig) *ParallelRunner {
	return &ParallelRunner{
		workers: workers,
		config:  config,
	}
}

// Run executes scenarios using a work queue shared by all workers.
// Results keep the order of scenarios regardless of which device ran them.
// With StopOnFail, items taken from the queue after any scenario fails are
// skipped; scenarios already running on other devices finish.
func (pr *ParallelRunner) Run(ctx context.Context, scenarios []Scenario) (*core.SuiteResult, error) {
	if len(pr.workers) == 0 {
		return nil, fmt.Errorf("no workers available")
	}

	suite := &core.SuiteResult{
		RunID:     uuid.New().String(),
		StartTime: time.Now(),
	}
	log := logger.WithField("run", suite.RunID)
	log.Infof("running %d scenario(s) on %d device(s)", len(scenarios), len(pr.workers))

	workQueue := make(chan workItem, len(scenarios))
	for i, sc := range scenarios {
		workQueue <- workItem{scenario: sc, index: i}
	}
	close(workQueue)

	// Each index is written by exactly one worker.
	results := make([]core.ScenarioResult, len(scenarios))
	done := make([]bool, len(scenarios))
	var failed atomic.Bool

	g, gctx := errgroup.WithContext(ctx)
	for i := range pr.workers {
		w := pr.workers[i]
		g.Go(func() error {
			if w.Cleanup != nil {
				defer w.Cleanup()
			}
			runner := New(w.Driver, w.DeviceID, pr.config)
			runner.runID = suite.RunID
			for item := range workQueue {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				if pr.config.StopOnFail && failed.Load() {
					results[item.index] = skippedScenario(item.scenario, w.DeviceID, w.Driver.Platform())
				} else {
					results[item.index] = runner.runScenario(gctx, item.index, len(scenarios), item.scenario)
					if !results[item.index].Status.IsSuccess() {
						failed.Store(true)
					}
				}
				done[item.index] = true
			}
			return nil
		})
	}
	err := g.Wait()

	for i, sc := range scenarios {
		if !done[i] {
			results[i] = skippedScenario(sc, "", pr.workers[0].Driver.Platform())
		}
	}

	suite.Scenarios = results
	suite.Duration = time.Since(suite.StartTime)
	suite.ComputeSummary()
	log.Infof("passed %d/%d in %s", suite.PassedScenarios, suite.TotalScenarios, suite.Duration)
	return suite, err
}
