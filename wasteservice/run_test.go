package wasteservice

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecosort/ecosort/internal/config"
	"github.com/ecosort/ecosort/internal/store/sqlite"
)

type downPinger struct{}

func (downPinger) HealthPing(context.Context) error { return errors.New("vision API unreachable") }

// Boot must not depend on the classifier: with no AI credentials configured
// the vision endpoint rejects probes, yet item scanning still works with
// fallback classifications.
func TestStartupGateIgnoresClassifier(t *testing.T) {
	st, err := sqlite.New(filepath.Join(t.TempDir(), "ecosort.db"))
	if err != nil {
		t.Fatalf("sqlite.New: %v", err)
	}
	cfg := config.NewForTesting()
	cfg.HealthIntervalSeconds = 1
	cfg.HealthTimeoutSeconds = 1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svcHealth, gate := startHealthCheckers(ctx, cfg, zerolog.Nop(), st, downPinger{})
	if gate == nil {
		t.Fatal("expected a store-backed startup gate")
	}

	done := make(chan error, 1)
	go func() { done <- waitUntilHealthy(ctx, cfg, gate) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("waitUntilHealthy: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("startup blocked on an unhealthy classifier")
	}

	if svcHealth.IsHealthy() {
		t.Fatal("aggregate health must stay DOWN while the classifier is failing")
	}
}

func TestWaitUntilHealthyNilGate(t *testing.T) {
	if err := waitUntilHealthy(context.Background(), config.NewForTesting(), nil); err != nil {
		t.Fatalf("nil gate should not block startup: %v", err)
	}
}
