package pipeline

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

type mockStage struct {
	process func(ctx context.Context, input any) (any, error)
}

func (m *mockStage) Execute(ctx context.Context, input <-chan any, output chan<- any, logger *zap.Logger) error {
	for item := range input {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			result, err := m.process(ctx, item)
			if err != nil {
				logger.Warn("mock stage process failed", zap.Error(err))
				continue
			}
			output <- result
		}
	}
	return nil
}

type failingStage struct{}

func (failingStage) Execute(ctx context.Context, input <-chan any, output chan<- any, logger *zap.Logger) error {
	return errors.New("stage broke")
}

func TestPipeline_Run(t *testing.T) {
	logger := zaptest.NewLogger(t)
	p := New(logger)

	// Stage 1: Multiply by 2
	p.AddStage(&mockStage{
		process: func(ctx context.Context, input any) (any, error) {
			return input.(int) * 2, nil
		},
	})

	// Stage 2: Add 3
	p.AddStage(&mockStage{
		process: func(ctx context.Context, input any) (any, error) {
			return input.(int) + 3, nil
		},
	})

	var mu sync.Mutex
	var got []int
	p.OnOutput(func(item any) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, item.(int))
	})

	inputChan := make(chan any, 2)
	inputChan <- 5
	inputChan <- 10
	close(inputChan)

	if err := p.Run(context.Background(), inputChan); err != nil {
		t.Fatalf("pipeline execution failed: %v", err)
	}

	sort.Ints(got)
	if len(got) != 2 || got[0] != 13 || got[1] != 23 {
		t.Errorf("expected [13 23], got %v", got)
	}
}

func TestPipeline_ManyItemsWithoutSink(t *testing.T) {
	p := New(zaptest.NewLogger(t))
	p.AddStage(&mockStage{
		process: func(ctx context.Context, input any) (any, error) { return input, nil },
	})

	inputChan := make(chan any, 200)
	for i := 0; i < 200; i++ {
		inputChan <- i
	}
	close(inputChan)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.Run(ctx, inputChan); err != nil {
		t.Errorf("expected pipeline to drain output, got %v", err)
	}
}

func TestPipeline_StageError(t *testing.T) {
	p := New(zaptest.NewLogger(t))
	p.AddStage(failingStage{})
	p.AddStage(&mockStage{
		process: func(ctx context.Context, input any) (any, error) { return input, nil },
	})

	inputChan := make(chan any, 3)
	inputChan <- 1
	inputChan <- 2
	inputChan <- 3
	close(inputChan)

	if err := p.Run(context.Background(), inputChan); err != nil {
		t.Errorf("stage errors are logged, not returned: %v", err)
	}
}

func TestPipeline_NoStages(t *testing.T) {
	p := New(zaptest.NewLogger(t))
	if err := p.Run(context.Background(), nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestPipeline_Cancel(t *testing.T) {
	logger := zaptest.NewLogger(t)
	p := New(logger)

	p.AddStage(&mockStage{
		process: func(ctx context.Context, input any) (any, error) {
			time.Sleep(100 * time.Millisecond) // Simulate work
			return input, nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	inputChan := make(chan any, 1)
	inputChan <- 1

	go func() {
		time.Sleep(10 * time.Millisecond) // Let pipeline start
		cancel()
	}()

	err := p.Run(ctx, inputChan)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	close(inputChan)
}
