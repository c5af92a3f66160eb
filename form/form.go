// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/makeurownmenu/catalog"
	"github.com/danielhkuo/makeurownmenu/client"
	"github.com/danielhkuo/makeurownmenu/models"
)

var ErrMissingUserDetails = errors.New("name, email and room are required")

// IncompleteMenuFeedbackError names the first day and meal still missing
// a suggestion or an opinion
type IncompleteMenuFeedbackError struct {
	Day  string
	Meal string
}

func (e *IncompleteMenuFeedbackError) Error() string {
	return fmt.Sprintf("pending items in %s (%s): fill both suggestion and opinion", e.Day, e.Meal)
}

// DefaultSubmitMessage is used when the server rejects a submission without saying why
const DefaultSubmitMessage = "Something went wrong"

// SubmitError is a submission rejected by the API
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	return e.Message
}

// Slot identifies one meal on one day
type Slot struct {
	Day  string
	Meal string
}

// Submitter sends a completed form to the submissions API
type Submitter interface {
	Submit(ctx context.Context, req models.SubmitRequest) (models.SubmitResponse, error)
}

// Form holds in-progress input for one menu submission
type Form struct {
	user     models.User
	feedback map[Slot]models.FeedbackEntry
}

func New() *Form {
	return &Form{feedback: make(map[Slot]models.FeedbackEntry)}
}

// SetUserField sets name, email or room. Unknown fields are ignored.
func (f *Form) SetUserField(field, value string) {
	switch field {
	case models.FieldName:
		f.user.Name = value
	case models.FieldEmail:
		f.user.Email = value
	case models.FieldRoom:
		f.user.Room = value
	}
}

// SetFeedback sets the suggestion or opinion for a day and meal
func (f *Form) SetFeedback(day, meal, field, value string) {
	slot := Slot{Day: day, Meal: meal}
	entry := f.feedback[slot]
	switch field {
	case models.FieldSuggestion:
		entry.Suggestion = value
	case models.FieldOpinion:
		entry.Opinion = value
	default:
		return
	}
	f.feedback[slot] = entry
}

func (f *Form) User() models.User {
	return f.user
}

// Entry returns the current feedback for a day and meal
func (f *Form) Entry(day, meal string) (models.FeedbackEntry, bool) {
	entry, ok := f.feedback[Slot{Day: day, Meal: meal}]
	return entry, ok
}

// Validate checks user details first, then every meal in form order
func (f *Form) Validate() error {
	if f.user.Name == "" || f.user.Email == "" || f.user.Room == "" {
		return ErrMissingUserDetails
	}

	for _, day := range catalog.Days {
		for _, meal := range catalog.Meals {
			entry := f.feedback[Slot{Day: day, Meal: meal}]
			if entry.Suggestion == "" || entry.Opinion == "" {
				return &IncompleteMenuFeedbackError{Day: day, Meal: meal}
			}
		}
	}

	return nil
}

// Progress reports how many of the day/meal entries are complete
func (f *Form) Progress() (filled, total int) {
	for _, day := range catalog.Days {
		for _, meal := range catalog.Meals {
			entry := f.feedback[Slot{Day: day, Meal: meal}]
			if entry.Suggestion != "" && entry.Opinion != "" {
				filled++
			}
		}
	}
	return filled, len(catalog.Days) * len(catalog.Meals)
}

// MenuFeedback builds the nested day -> meal mapping sent to the API
func (f *Form) MenuFeedback() models.MenuFeedback {
	out := make(models.MenuFeedback)
	for slot, entry := range f.feedback {
		meals, ok := out[slot.Day]
		if !ok {
			meals = make(map[string]models.FeedbackEntry)
			out[slot.Day] = meals
		}
		meals[slot.Meal] = entry
	}
	return out
}

// Submit validates the form and sends it, returning the new submission ID
func (f *Form) Submit(ctx context.Context, s Submitter) (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	user := f.User()
	resp, err := s.Submit(ctx, models.SubmitRequest{
		User:         &user,
		MenuFeedback: f.MenuFeedback(),
	})
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Message
			if msg == "" {
				msg = DefaultSubmitMessage
			}
			return "", &SubmitError{StatusCode: apiErr.StatusCode, Message: msg}
		}
		return "", fmt.Errorf("failed to submit menu feedback: %w", err)
	}

	return resp.InsertedID, nil
}
