// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the menu feedback API.

# Handler Types

Each handler is a struct with its dependencies:

  - SubmissionHandler: Create and list submissions
  - StatsHandler: Dashboard statistics over stored submissions
  - MenuHandler: The current weekly menu

Handlers are created via constructor functions:

	submissionHandler := handlers.NewSubmissionHandler(st, cfg)

# Submissions

	POST /submit, /api/submit           → Submit
	GET  /submissions, /api/submissions → ListSubmissions

Submit only checks that user and menuFeedback are present. Completeness
of the 28 day/meal entries is enforced by the form package before sending.
List results are newest first and accept an optional ?email= exact match.

# Statistics

	GET /stats → GetStats

Stats are never stored. Each request lists the matching submissions and
runs aggregate.Compute over them.

# Errors

Every failure is a JSON body {"error": "..."}. Storage failures are 500s
reported through middleware.ServerError.
*/
package handlers
