package execution

import (
	"context"
	"sync"
	"time"

	"stp/internal/config"
	"stp/internal/domain"
	"stp/internal/parser"
	"stp/internal/ui"
)

// WorkerPool manages a pool of workers for parallel class execution
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  *ui.ProgressBar
	parser    *parser.GradleParser
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler, gradleParser *parser.GradleParser) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
		parser:    gradleParser,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute runs all classes in parallel (no fail-fast).
func (wp *WorkerPool) Execute(targets []Target) ([]domain.ClassRun, time.Duration, error) {
	return wp.ExecuteWithOptions(targets, false)
}

// ExecuteWithOptions executes classes with optional fail-fast (stop on
// first failing class).
func (wp *WorkerPool) ExecuteWithOptions(targets []Target, failFast bool) ([]domain.ClassRun, time.Duration, error) {
	if len(targets) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(targets)
	}
	return wp.executeFailFast(targets)
}

func (wp *WorkerPool) executeAll(targets []Target) ([]domain.ClassRun, time.Duration, error) {
	queue := make(chan Target, len(targets))
	results := make(chan domain.ClassRun, len(targets))
	for _, target := range targets {
		queue <- target
	}
	close(queue)

	var mu sync.Mutex
	var completed, passedTests, failedTests int
	startTime := time.Now()
	workerCount := wp.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for target := range queue {
				run := wp.runner.Run(target, workerID)
				results <- run
				mu.Lock()
				completed++
				wp.tally(run, &passedTests, &failedTests)
				if wp.progress != nil {
					wp.progress.Update(completed, passedTests, failedTests)
				}
				mu.Unlock()
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allRuns []domain.ClassRun
	for run := range results {
		allRuns = append(allRuns, run)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allRuns, time.Since(startTime), nil
}

func (wp *WorkerPool) executeFailFast(targets []Target) ([]domain.ClassRun, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan Target, 1)
	results := make(chan domain.ClassRun, len(targets))

	go func() {
		defer close(queue)
		for _, target := range targets {
			select {
			case <-ctx.Done():
				return
			case queue <- target:
			}
		}
	}()

	var mu sync.Mutex
	var completed, passedTests, failedTests int
	var seenFailure bool
	startTime := time.Now()
	workerCount := wp.workerCount()

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for target := range queue {
				run := wp.runner.Run(target, workerID)
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- run
				mu.Lock()
				completed++
				wp.tally(run, &passedTests, &failedTests)
				if wp.progress != nil {
					wp.progress.Update(completed, passedTests, failedTests)
				}
				if !run.Success && !seenFailure {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allRuns []domain.ClassRun
	for run := range results {
		allRuns = append(allRuns, run)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allRuns, time.Since(startTime), nil
}

func (wp *WorkerPool) workerCount() int {
	if wp.config.Processors <= 0 {
		return 1
	}
	return wp.config.Processors
}

// tally folds one run's test counts into the running totals. Must be called
// with the pool mutex held.
func (wp *WorkerPool) tally(run domain.ClassRun, passed, failed *int) {
	if wp.parser != nil {
		p, f := wp.parser.ParseTestCounts(run)
		*passed += p
		*failed += f
		return
	}
	if run.Success {
		*passed++
	} else {
		*failed++
	}
}
