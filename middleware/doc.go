// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

WithRequestID reuses an incoming X-Request-ID or generates a UUID, stores
it in the request context and echoes it on the response:

	id := middleware.RequestID(r.Context())

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /stats", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms).

# Rate Limiting

	submit := middleware.WithRateLimit(ratelimit.New(cfg.SubmitRate), handler)

Requests over the rate block until the limiter admits them.

# Errors and Panics

ServerError logs a failure, reports it to Sentry and writes a 500.
Recover does the same for panics. Both are no-ops towards Sentry when
sentry.Init was called without a DSN.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type,
Authorization, X-Request-ID.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")

Error bodies are always {"error": "message"}.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP. Used in request logs.
*/
package middleware
