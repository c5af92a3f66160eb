// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package client is an HTTP client for the menu submissions API.
// Non-2xx responses are returned as *APIError.
package client
