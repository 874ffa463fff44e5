package infra

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestSlot_LoadFillsOnce(t *testing.T) {
	var slot Slot[string]
	calls := 0

	fill := func(ctx context.Context) (string, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := slot.Load(context.Background(), fill)
		if err != nil {
			t.Fatalf("Load %d failed: %v", i, err)
		}
		if got != "value" {
			t.Errorf("Load %d = %q, want %q", i, got, "value")
		}
	}

	if calls != 1 {
		t.Errorf("fill ran %d times, want 1", calls)
	}
}

func TestSlot_Peek(t *testing.T) {
	var slot Slot[int]

	if _, ok := slot.Peek(); ok {
		t.Error("Peek on empty slot reported filled")
	}

	_, err := slot.Load(context.Background(), func(ctx context.Context) (int, error) {
		return 7, nil
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, ok := slot.Peek()
	if !ok {
		t.Fatal("Peek after Load reported empty")
	}
	if got != 7 {
		t.Errorf("Peek = %d, want 7", got)
	}
}

func TestSlot_FailedFillNotCached(t *testing.T) {
	var slot Slot[string]
	attempts := 0
	fillErr := errors.New("fetch failed")

	fill := func(ctx context.Context) (string, error) {
		attempts++
		if attempts == 1 {
			return "", fillErr
		}
		return "second try", nil
	}

	if _, err := slot.Load(context.Background(), fill); !errors.Is(err, fillErr) {
		t.Fatalf("first Load error = %v, want %v", err, fillErr)
	}
	if _, ok := slot.Peek(); ok {
		t.Error("failed fill should leave the slot empty")
	}

	got, err := slot.Load(context.Background(), fill)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if got != "second try" {
		t.Errorf("second Load = %q", got)
	}
	if attempts != 2 {
		t.Errorf("fill ran %d times, want 2", attempts)
	}
}

func TestSlot_ConcurrentLoadsCoalesce(t *testing.T) {
	var slot Slot[string]
	var calls atomic.Int32
	filling := make(chan struct{})
	release := make(chan struct{})

	fill := func(ctx context.Context) (string, error) {
		calls.Add(1)
		close(filling)
		<-release
		return "shared", nil
	}

	const waiters = 8
	var wg sync.WaitGroup
	results := make([]string, waiters)
	errs := make([]error, waiters)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = slot.Load(context.Background(), fill)
	}()
	<-filling

	// Everyone arriving now must wait for the in-flight fill instead of
	// starting their own.
	for i := 1; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = slot.Load(context.Background(), func(ctx context.Context) (string, error) {
				t.Error("second fill function should never run")
				return "", nil
			})
		}(i)
	}

	close(release)
	wg.Wait()

	if calls.Load() != 1 {
		t.Errorf("fill ran %d times, want 1", calls.Load())
	}
	for i := 0; i < waiters; i++ {
		if errs[i] != nil {
			t.Errorf("Load %d failed: %v", i, errs[i])
		}
		if results[i] != "shared" {
			t.Errorf("Load %d = %q, want %q", i, results[i], "shared")
		}
	}
}

func TestSlot_WaiterHonorsContext(t *testing.T) {
	var slot Slot[string]
	filling := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = slot.Load(context.Background(), func(ctx context.Context) (string, error) {
			close(filling)
			<-release
			return "late", nil
		})
	}()
	<-filling

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := slot.Load(ctx, func(ctx context.Context) (string, error) {
		t.Error("waiter must not start its own fill")
		return "", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load error = %v, want context.Canceled", err)
	}

	close(release)
}
