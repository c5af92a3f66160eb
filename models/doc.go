// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitRequest: user, menuFeedback
  - User: name, email, room

# Response Types

Types for JSON responses:

  - SubmitResponse: success, insertedId
  - Stats: totalSubmissions, mealSuggestions, opinionWords, mostActiveUser
  - ErrorResponse: error

# Domain Types

  - Submission: one stored feedback record
  - MenuFeedback: day -> meal -> FeedbackEntry
  - FeedbackEntry: suggestion and opinion for one meal

MenuFeedback implements driver.Valuer and sql.Scanner, so relational
stores persist it as JSON text without any per-backend handling:

	_, err := db.Exec(`INSERT INTO menu_submissions (menu_feedback) VALUES (?)`, feedback)

# Constants

Form field names:

	FieldName, FieldEmail, FieldRoom
	FieldSuggestion, FieldOpinion
*/
package models
