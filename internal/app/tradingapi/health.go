package tradingapi

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
)

// watchDatabase переключает статус health-сервиса по результату check,
// пока ctx не отменён. Первая проверка выполняется сразу.
func watchDatabase(ctx context.Context, check func(context.Context) error, hs *health.Server, interval time.Duration, log *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_UNKNOWN
	for {
		status := healthpb.HealthCheckResponse_SERVING
		checkCtx, cancel := context.WithTimeout(ctx, interval)
		if err := check(checkCtx); err != nil {
			status = healthpb.HealthCheckResponse_NOT_SERVING
			if last != status {
				log.Warn("database is not ready", sl.Err(err))
			}
		}
		cancel()
		if status != last {
			hs.SetServingStatus("", status)
			last = status
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
