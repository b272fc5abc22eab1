package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/simp-lee/warecat/internal/domain"
	"github.com/simp-lee/warecat/internal/pkg"
)

// healthTimeout bounds the database round trip of the liveness check so it
// stays responsive independently of normal repository traffic.
const healthTimeout = time.Second

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	DB      *gorm.DB
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	r.GET("/health", healthHandler(deps.DB))

	api := r.Group("/api/v1")
	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// serviceHealth reports one dependency's status and round-trip latency.
type serviceHealth struct {
	Status         string  `json:"status"`
	ResponseTimeMs int64   `json:"response_time_ms"`
	Error          *string `json:"error,omitempty"`
}

// healthReport is the liveness payload: overall status plus per-dependency
// detail.
type healthReport struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Services  map[string]serviceHealth `json:"services"`
}

// healthHandler pings the database with its own bounded time budget and
// reports healthy/unhealthy/error per dependency. The check itself never
// fails; a degraded dependency yields 503 with the detail in the body.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbHealth := checkDatabase(c.Request.Context(), db)

		status := "healthy"
		code := http.StatusOK
		if dbHealth.Status != "healthy" {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		now := time.Now().UTC()
		c.JSON(code, pkg.Response{
			Success: true,
			Data: healthReport{
				Status:    status,
				Timestamp: now,
				Services:  map[string]serviceHealth{"database": dbHealth},
			},
			Timestamp: now,
		})
	}
}

// checkDatabase performs the single trivial round trip of the liveness
// probe, acquiring its own pooled connection.
func checkDatabase(ctx context.Context, db *gorm.DB) serviceHealth {
	start := time.Now()

	fail := func(status, detail string) serviceHealth {
		return serviceHealth{
			Status:         status,
			ResponseTimeMs: time.Since(start).Milliseconds(),
			Error:          &detail,
		}
	}

	if db == nil {
		return fail("error", "database handle not configured")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fail("error", err.Error())
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fail("unhealthy", err.Error())
	}

	return serviceHealth{
		Status:         "healthy",
		ResponseTimeMs: time.Since(start).Milliseconds(),
	}
}

// noRouteHandler renders an envelope-shaped NOT_FOUND for unknown paths.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pkg.Error(c, domain.NotFound("route"))
	}
}
