// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog holds the weekly hostel menu and the canonical day and
// meal ordering used across the module.
package catalog
