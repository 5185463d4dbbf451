package infra

import (
	"context"
	"net/http"

	"github.com/s21platform/metrics-lib/pkg"

	"github.com/ownmsg/message-service/internal/config"
)

func MetricsHTTP(next http.Handler, metrics *pkg.Metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		metrics.Increment("rest.request")

		ctx := context.WithValue(r.Context(), config.KeyMetrics, metrics)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
