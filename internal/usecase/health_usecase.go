package usecase

import (
	"context"
	"time"

	"goals-project-backend/pkg/logger"
)

// Pinger is a dependency the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthUsecase interface {
	// Check probes every dependency; ok is false when any of them failed.
	Check(ctx context.Context) (status map[string]string, ok bool)
}

type healthUsecase struct {
	deps    map[string]Pinger
	timeout time.Duration
}

// NewHealthUsecase checks the named dependencies. Nil entries are reported as "disabled".
func NewHealthUsecase(deps map[string]Pinger) HealthUsecase {
	return &healthUsecase{deps: deps, timeout: 2 * time.Second}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{"status": "ok"}
	ok := true
	for name, dep := range u.deps {
		if dep == nil {
			status[name] = "disabled"
			continue
		}
		pingCtx, cancel := context.WithTimeout(ctx, u.timeout)
		err := dep.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Log.Warn("Health check failed", "dependency", name, "error", err)
			status[name] = "down"
			ok = false
			continue
		}
		status[name] = "up"
	}
	if !ok {
		status["status"] = "degraded"
	}
	return status, ok
}
