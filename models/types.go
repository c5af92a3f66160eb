// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Feedback entry field names
const (
	FieldSuggestion = "suggestion"
	FieldOpinion    = "opinion"
)

// User field names
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldRoom  = "room"
)

// Request types

type User struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Room  string `json:"room" bson:"room"`
}

type SubmitRequest struct {
	User         *User        `json:"user"`
	MenuFeedback MenuFeedback `json:"menuFeedback"`
}

// Response types

type SubmitResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

// Domain types

type FeedbackEntry struct {
	Suggestion string `json:"suggestion" bson:"suggestion"`
	Opinion    string `json:"opinion" bson:"opinion"`
}

// MenuFeedback maps day -> meal -> entry.
//
// Relational stores keep it as JSON text; Value and Scan are the only place
// that conversion happens.
type MenuFeedback map[string]map[string]FeedbackEntry

// Value implements driver.Valuer
func (m MenuFeedback) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode menu feedback: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (m *MenuFeedback) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported menu feedback column type %T", src)
	}

	var decoded MenuFeedback
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("failed to decode menu feedback: %w", err)
	}
	*m = decoded
	return nil
}

type Submission struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Room         string       `json:"room"`
	MenuFeedback MenuFeedback `json:"menu_feedback"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Aggregate types

type MealSuggestion struct {
	Suggestion string `json:"suggestion"`
	Count      int    `json:"count"`
}

// WordCount is one word cloud entry
type WordCount struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type ActiveUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalSubmissions int                         `json:"totalSubmissions"`
	MealSuggestions  map[string][]MealSuggestion `json:"mealSuggestions"`
	OpinionWords     []WordCount                 `json:"opinionWords"`
	MostActiveUser   *ActiveUser                 `json:"mostActiveUser"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
