// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package web assembles the HTTP surface: middleware chain, route groups
// and the guards between them.
package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/canonical/booking-service/internal/db"
	"github.com/canonical/booking-service/internal/logging"
	"github.com/canonical/booking-service/internal/monitoring"
	"github.com/canonical/booking-service/internal/storage"
	"github.com/canonical/booking-service/internal/tracing"
	"github.com/canonical/booking-service/pkg/allowlist"
	"github.com/canonical/booking-service/pkg/authentication"
	"github.com/canonical/booking-service/pkg/availability"
	"github.com/canonical/booking-service/pkg/booking"
	"github.com/canonical/booking-service/pkg/metrics"
	"github.com/canonical/booking-service/pkg/status"
)

const apiBasePath = "/api/v0"

// Login attempts allowed per client IP.
const (
	loginRatePerSecond = 1
	loginRateBurst     = 5
)

type Config struct {
	Sessions      authentication.TokenManagerInterface
	AdminVerify   authentication.TokenManagerInterface
	AdminPassword string
	SecureCookies bool
	CORSOrigins   []string
}

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSOrigins),
		db.TransactionMiddleware(dbClient, logger),
	)
	router.Use(middlewares...)

	allowlistService := allowlist.NewService(s, tracer, monitor, logger)
	authService := authentication.NewService(
		allowlistService,
		cfg.Sessions,
		cfg.AdminVerify,
		cfg.AdminPassword,
		tracer, monitor, logger,
	)
	availabilityService := availability.NewService(s, tracer, monitor, logger)
	bookingService := booking.NewService(s, tracer, monitor, logger)

	authAPI := authentication.NewAPI(
		authService,
		cfg.Sessions,
		cfg.AdminVerify,
		cfg.SecureCookies,
		tracer, monitor, logger,
	)
	guard := authentication.NewMiddleware(
		cfg.Sessions,
		cfg.AdminVerify,
		allowlistService,
		tracer, monitor, logger,
	)
	loginLimiter := authentication.NewIPRateLimiter(rate.Limit(loginRatePerSecond), loginRateBurst)

	router.Route(apiBasePath, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(tracer, monitor, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Limit)
			authAPI.RegisterPublicEndpoints(r)
		})

		// Everything below requires a session.
		r.Group(func(r chi.Router) {
			r.Use(guard.RequireSession())

			availability.NewAPI(availabilityService, tracer, monitor, logger).RegisterEndpoints(r)
			booking.NewAPI(bookingService, tracer, monitor, logger).RegisterEndpoints(r)
			authAPI.RegisterVerifyEndpoints(r)

			r.Group(func(r chi.Router) {
				r.Use(guard.RequireAdmin())
				allowlist.NewAPI(allowlistService, tracer, monitor, logger).RegisterEndpoints(r)
			})
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
