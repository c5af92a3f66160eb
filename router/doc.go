// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the menu feedback API.

# Route Registration

NewRouter returns the full handler chain:

	menu, _ := catalog.Load()
	handler := router.NewRouter(st, menu, cfg)

Every request passes through WithRequestID, Recover and CORS before
reaching the ServeMux.

# Endpoints

Health:

	GET /health
	GET /

Submissions (both paths are served for older frontends):

	POST /submit, /api/submit           - Store a submission (rate limited)
	GET  /submissions, /api/submissions - List, optional ?email=

Dashboard:

	GET /stats - Aggregated statistics, optional ?email=
	GET /menu  - Weekly menu catalog

# Rate Limiting

Both submit paths share one limiter admitting cfg.SubmitRate requests per
second. Excess requests wait rather than fail.
*/
package router
