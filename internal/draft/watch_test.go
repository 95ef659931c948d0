package draft

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestWatchValidatesOnWrite(t *testing.T) {
	s := tempStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	results := make(chan CheckResult, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Watch(ctx, s, logger, func(res CheckResult) { results <- res })
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher a moment to register the directory.
	time.Sleep(100 * time.Millisecond)

	d := New()
	d.Title = "Toast"
	_ = d.SetIngredientName(0, "bread")
	_ = d.SetStepText(0, "Toast it.")
	if err := s.Save("toast", d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	select {
	case res := <-results:
		if res.Name != "toast" {
			t.Errorf("name = %q, want toast", res.Name)
		}
		if res.Err != nil {
			t.Errorf("valid draft reported: %v", res.Err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no check result within 3s")
	}

	// An invalid rewrite must surface its validation error.
	d.Title = ""
	if err := s.Save("toast", d); err != nil {
		t.Fatalf("Save: %v", err)
	}
	select {
	case res := <-results:
		if res.Err == nil {
			t.Error("invalid draft passed")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no check result within 3s")
	}
}
