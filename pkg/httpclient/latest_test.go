package httpclient

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLatestCancelsPreviousCall(t *testing.T) {
	var latest Latest
	started := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- latest.Do(context.Background(), func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	}()
	<-started

	if err := latest.Do(context.Background(), func(ctx context.Context) error { return nil }); err != nil {
		t.Fatalf("latest call should succeed, got %v", err)
	}

	select {
	case err := <-firstDone:
		if !errors.Is(err, ErrSuperseded) {
			t.Fatalf("expected superseded, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first call was not canceled")
	}
}

func TestLatestPassesThroughErrors(t *testing.T) {
	var latest Latest
	boom := errors.New("boom")
	if err := latest.Do(context.Background(), func(context.Context) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestLatestCancel(t *testing.T) {
	var latest Latest
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- latest.Do(context.Background(), func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	}()
	<-started
	latest.Cancel()

	select {
	case err := <-done:
		if !errors.Is(err, ErrSuperseded) {
			t.Fatalf("expected superseded after Cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Cancel did not abort the call")
	}
}
