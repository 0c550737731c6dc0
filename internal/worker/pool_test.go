package worker_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/uvquiz/backend/internal/worker"
)

func TestPool_RunsJobs(t *testing.T) {
	p := worker.NewPool[int](3, 10)
	defer p.Close()

	ctx := context.Background()
	var chans []<-chan worker.Result[int]
	for i := 0; i < 20; i++ {
		n := i
		chans = append(chans, p.Submit(ctx, strconv.Itoa(n), func(context.Context) (int, error) {
			return n * n, nil
		}))
	}

	for i, ch := range chans {
		res := <-ch
		if res.Err != nil {
			t.Fatalf("job %d: %v", i, res.Err)
		}
		if res.Output != i*i || res.JobID != strconv.Itoa(i) {
			t.Errorf("job %d: got %+v", i, res)
		}
	}
}

func TestPool_PropagatesErrors(t *testing.T) {
	p := worker.NewPool[string](1, 1)
	defer p.Close()

	boom := errors.New("boom")
	res := <-p.Submit(context.Background(), "x", func(context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(res.Err, boom) {
		t.Errorf("expected boom, got %v", res.Err)
	}
}

func TestPool_CancelledContextSkipsJob(t *testing.T) {
	p := worker.NewPool[int](1, 1)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	res := <-p.Submit(ctx, "x", func(context.Context) (int, error) {
		ran.Store(true)
		return 1, nil
	})
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", res.Err)
	}
	if ran.Load() {
		t.Error("expected job not to run")
	}
}
