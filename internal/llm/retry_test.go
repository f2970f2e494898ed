package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryPassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: drillJSON})
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != string(drillJSON) || mock.CallCount() != 1 {
		t.Errorf("content=%s calls=%d", resp.Content, mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: drillJSON},
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	mock := NewMockProvider(down, down, down)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryTruncationFailsImmediately(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("err = %T, want ErrMaxTokensExceeded", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1 (truncation is not transient)", mock.CallCount())
	}
}

func TestRetrySchemaMissGetsOneMoreTry(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("missing steps")}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: drillJSON})
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error after second schema miss")
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (one retry only)", mock.CallCount())
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	mock := NewMockProvider(down, down, MockResponse{Content: drillJSON})
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error with canceled context")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: drillJSON},
	)
	p := WithRetry(mock, fastRetry())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want delegated mock", p.ModelID())
	}
}
