package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

const channelBuffer = 50

// Stage defines the interface for a pipeline stage.
// Each stage processes input from an input channel and sends results to an output channel.
// The pipeline closes output once Execute returns.
type Stage interface {
	Execute(ctx context.Context, input <-chan any, output chan<- any, logger *zap.Logger) error
}

// Pipeline manages a sequence of stages that process data in a chain.
type Pipeline struct {
	stages []Stage
	sink   func(any)
	logger *zap.Logger
}

// New creates a new Pipeline instance with the given logger.
func New(logger *zap.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
	}
}

// AddStage adds a stage to the pipeline's sequence.
func (p *Pipeline) AddStage(stage Stage) {
	p.stages = append(p.stages, stage)
}

// OnOutput sets a function that receives everything the last stage emits.
// Without one the output is discarded.
func (p *Pipeline) OnOutput(fn func(any)) {
	p.sink = fn
}

// Run executes the pipeline with the given input channel.
//
// Each stage's output becomes the next stage's input. Run returns nil once
// every stage has finished, or ctx.Err() if ctx is cancelled first.
func (p *Pipeline) Run(ctx context.Context, input <-chan any) error {
	if len(p.stages) == 0 {
		p.logger.Warn("no stages in pipeline")
		return nil
	}

	channels := make([]chan any, len(p.stages))
	for i := range channels {
		channels[i] = make(chan any, channelBuffer)
	}

	var wg sync.WaitGroup
	wg.Add(len(p.stages) + 1)

	for i, stage := range p.stages {
		inChan := input
		if i > 0 {
			inChan = channels[i-1]
		}

		go func(stage Stage, in <-chan any, out chan<- any, idx int) {
			defer wg.Done()
			defer close(out)
			if err := stage.Execute(ctx, in, out, p.logger); err != nil {
				p.logger.Error("stage execution failed",
					zap.Int("stage", idx),
					zap.Error(err))
			}
			// keep upstream from blocking on a stage that stopped early
			for range in {
			}
		}(stage, inChan, channels[i], i)
	}

	go func() {
		defer wg.Done()
		for item := range channels[len(channels)-1] {
			if p.sink != nil {
				p.sink(item)
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.logger.Info("pipeline completed successfully")
		return nil
	case <-ctx.Done():
		p.logger.Info("pipeline canceled", zap.Error(ctx.Err()))
		return ctx.Err()
	}
}
