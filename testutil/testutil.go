// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/makeurownmenu/catalog"
	"github.com/danielhkuo/makeurownmenu/cliparse"
	"github.com/danielhkuo/makeurownmenu/db"
	"github.com/danielhkuo/makeurownmenu/models"
	"github.com/danielhkuo/makeurownmenu/store"
)

// SetupTestStore opens a SQLite store on a fresh file in the test's temp dir
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "menu.db")
	st, err := store.OpenSQL(db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}

	t.Cleanup(func() {
		st.Close(context.Background())
	})

	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "menu.db",
		DatabaseType:  cliparse.DatabaseSQLite,
		MongoDatabase: "MakeUrOwnMenu",
		SubmitRate:    1000,
		AppEnv:        "test",
		StoreTimeout:  5 * time.Second,
	}
}

// TestUser returns a user with every field set
func TestUser(name string) models.User {
	return models.User{
		Name:  name,
		Email: fmt.Sprintf("%s@hostel.test", name),
		Room:  "A-101",
	}
}

// FullMenuFeedback fills every day and meal with the same suggestion and opinion
func FullMenuFeedback(suggestion, opinion string) models.MenuFeedback {
	mf := make(models.MenuFeedback, len(catalog.Days))
	for _, day := range catalog.Days {
		meals := make(map[string]models.FeedbackEntry, len(catalog.Meals))
		for _, meal := range catalog.Meals {
			meals[meal] = models.FeedbackEntry{Suggestion: suggestion, Opinion: opinion}
		}
		mf[day] = meals
	}
	return mf
}

// CreateTestSubmission stores a fully populated submission and returns its ID
func CreateTestSubmission(t *testing.T, st store.Store, user models.User, suggestion, opinion string) string {
	t.Helper()

	id, err := st.Create(context.Background(), user, FullMenuFeedback(suggestion, opinion))
	if err != nil {
		t.Fatalf("Failed to create test submission: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
