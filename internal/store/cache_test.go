package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestAcquireSingleFlight(t *testing.T) {
	var dials int32
	release := make(chan struct{})
	handle := &Handle{}
	cache := NewCache(func(ctx context.Context) (*Handle, error) {
		atomic.AddInt32(&dials, 1)
		<-release
		return handle, nil
	})

	const callers = 16
	got := make([]*Handle, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = cache.Acquire(context.Background())
		}(i)
	}
	// let all callers pile up on the single in-flight attempt
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&dials); n != 1 {
		t.Fatalf("expected exactly one dial, got %v", n)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %v failed: %v", i, errs[i])
		}
		if got[i] != handle {
			t.Fatalf("caller %v got a different handle", i)
		}
	}
}

func TestAcquireCachesHandle(t *testing.T) {
	var dials int32
	handle := &Handle{}
	cache := NewCache(func(ctx context.Context) (*Handle, error) {
		atomic.AddInt32(&dials, 1)
		return handle, nil
	})
	for i := 0; i < 5; i++ {
		h, err := cache.Acquire(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if h != handle {
			t.Fatal("expected the cached handle")
		}
	}
	if n := atomic.LoadInt32(&dials); n != 1 {
		t.Fatalf("expected one dial across repeated acquires, got %v", n)
	}
}

func TestFailedAttemptClearsStateAndPropagates(t *testing.T) {
	var dials int32
	boom := errors.New("connection refused")
	release := make(chan struct{})
	cache := NewCache(func(ctx context.Context) (*Handle, error) {
		n := atomic.AddInt32(&dials, 1)
		if n == 1 {
			<-release
			return nil, boom
		}
		return &Handle{}, nil
	})

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = cache.Acquire(context.Background())
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if !errors.Is(errs[i], boom) {
			t.Fatalf("caller %v should observe the shared failure, got %v", i, errs[i])
		}
	}
	// the failure must leave the cache empty so the next acquire retries
	if _, err := cache.Acquire(context.Background()); err != nil {
		t.Fatalf("retry after failure should succeed, got %v", err)
	}
	if n := atomic.LoadInt32(&dials); n != 2 {
		t.Fatalf("expected exactly two dials, got %v", n)
	}
}

func TestAcquireHonorsCallerContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	cache := NewCache(func(ctx context.Context) (*Handle, error) {
		<-release
		return &Handle{}, nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := cache.Acquire(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestResetForcesRedial(t *testing.T) {
	var dials int32
	cache := NewCache(func(ctx context.Context) (*Handle, error) {
		atomic.AddInt32(&dials, 1)
		return &Handle{}, nil
	})
	if _, err := cache.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	cache.Reset()
	if _, err := cache.Acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&dials); n != 2 {
		t.Fatalf("expected a redial after Reset, got %v dials", n)
	}
}

func TestMissingURIIsConfigError(t *testing.T) {
	cache := NewCache(DialMongo("", "vowvenues"))
	_, err := cache.Acquire(context.Background())
	var cfg ConfigError
	if !errors.As(err, &cfg) {
		t.Fatalf("expected a ConfigError, got %v", err)
	}
	if cfg.Name != "MONGODB_URI" {
		t.Fatalf("unexpected configuration name %q", cfg.Name)
	}
}
