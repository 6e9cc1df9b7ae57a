package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// TagLinksTotal counts item-tag link and unlink operations by outcome.
	// "noop" means the idempotent path (already linked / not linked).
	TagLinksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_tag_links_total",
		Help: "Total item-tag link/unlink operations",
	}, []string{"operation", "outcome"})

	// ConstraintViolationsTotal counts rejected writes by entity.
	ConstraintViolationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockroom_constraint_violations_total",
		Help: "Total writes rejected by uniqueness or foreign-key constraints",
	}, []string{"entity"})
)

// InitMetrics creates the Prometheus HTTP metrics middleware for the service.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// MetricsMiddleware returns the Fiber handler recording per-route HTTP metrics.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
