package retry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"
)

type statusErr struct {
	code int
}

func (e statusErr) Error() string   { return fmt.Sprintf("status %d", e.code) }
func (e statusErr) Retriable() bool { return e.code == 503 || e.code == 502 }

var (
	errUnavailable = statusErr{code: 503}
	errNotFound    = statusErr{code: 404}
)

func TestWithBackoff_Success(t *testing.T) {
	result, err := WithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "ok" {
		t.Fatalf("expected 'ok', got %q", result)
	}
}

func TestWithBackoff_NonRetriableError(t *testing.T) {
	calls := 0
	_, err := WithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		calls++
		return "", errNotFound
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call for non-retriable error, got %d", calls)
	}
}

func TestWithBackoff_RetriableEventualSuccess(t *testing.T) {
	calls := 0
	result, err := WithBackoff(context.Background(), 5, 10*time.Millisecond, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errUnavailable
		}
		return "recovered", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "recovered" {
		t.Fatalf("expected 'recovered', got %q", result)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestWithBackoff_AllRetriesFail(t *testing.T) {
	calls := 0
	_, err := WithBackoff(context.Background(), 3, 10*time.Millisecond, func() (string, error) {
		calls++
		return "", errUnavailable
	})
	if err == nil {
		t.Fatal("expected error after all retries")
	}
	if !errors.Is(err, errUnavailable) {
		t.Fatalf("expected wrapped last error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestWithBackoff_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithBackoff(ctx, 5, 10*time.Millisecond, func() (string, error) {
		return "", errUnavailable
	})
	if err == nil {
		t.Fatal("expected context cancelled error")
	}
}

func TestWithBackoff_InvalidMaxRetries(t *testing.T) {
	_, err := WithBackoff(context.Background(), 0, time.Millisecond, func() (int, error) {
		return 1, nil
	})
	if err == nil {
		t.Fatal("expected error for zero retries")
	}
}

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Unavailable", errUnavailable, true},
		{"BadGateway", statusErr{code: 502}, true},
		{"NotFound", errNotFound, false},
		{"Wrapped", fmt.Errorf("get course: %w", errUnavailable), true},
		{"NetError", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"Canceled", context.Canceled, false},
		{"Deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), false},
		{"Plain", errors.New("boom"), false},
		{"Nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetriable(tt.err); got != tt.expected {
				t.Errorf("IsRetriable(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := NewCircuitBreaker(3, 1*time.Second)

	err := cb.Execute(func() error {
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected StateClosed, got %v", cb.State())
	}
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(3, 1*time.Second)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error {
			return errUnavailable
		})
	}

	if cb.State() != StateOpen {
		t.Fatalf("expected StateOpen after %d failures, got %v", 3, cb.State())
	}

	err := cb.Execute(func() error {
		return nil
	})
	if err != ErrCircuitOpen {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestCircuitBreaker_ResetsAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(2, 50*time.Millisecond)

	for i := 0; i < 2; i++ {
		_ = cb.Execute(func() error {
			return errUnavailable
		})
	}
	if cb.State() != StateOpen {
		t.Fatal("expected StateOpen")
	}

	time.Sleep(60 * time.Millisecond)

	err := cb.Execute(func() error {
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error after timeout, got %v", err)
	}
	if cb.State() != StateClosed {
		t.Fatalf("expected StateClosed after successful call, got %v", cb.State())
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(2, 20*time.Millisecond)

	for i := 0; i < 2; i++ {
		_ = cb.Execute(func() error { return errUnavailable })
	}
	time.Sleep(30 * time.Millisecond)

	_ = cb.Execute(func() error { return errUnavailable })
	if cb.State() != StateOpen {
		t.Fatalf("expected StateOpen after half-open failure, got %v", cb.State())
	}
}

func TestCircuitBreaker_NonRetriableErrorDoesNotCount(t *testing.T) {
	cb := NewCircuitBreaker(2, 1*time.Second)

	for i := 0; i < 5; i++ {
		_ = cb.Execute(func() error {
			return errNotFound
		})
	}

	if cb.State() != StateClosed {
		t.Fatalf("expected StateClosed for non-retriable errors, got %v", cb.State())
	}
}

func TestWithCircuitBreaker_Success(t *testing.T) {
	cb := NewCircuitBreaker(5, 1*time.Second)
	result, err := WithCircuitBreaker(context.Background(), cb, 3, 10*time.Millisecond, func() (string, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != "ok" {
		t.Fatalf("expected 'ok', got %q", result)
	}
}

func TestWithCircuitBreaker_StopsWhenOpen(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Second)
	calls := 0
	_, err := WithCircuitBreaker(context.Background(), cb, 5, time.Millisecond, func() (string, error) {
		calls++
		return "", errUnavailable
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected breaker to stop after 2 calls, got %d", calls)
	}
}
