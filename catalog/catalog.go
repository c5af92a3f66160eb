// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuYAML []byte

// Days in form order
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Meals in form order
var Meals = []string{"Breakfast", "Lunch", "Snacks", "Dinner"}

// Catalog is the current hostel menu: day -> meal -> dish description
type Catalog struct {
	Menu map[string]map[string]string `yaml:"menu" json:"menu"`
}

// Load parses the embedded weekly menu
func Load() (*Catalog, error) {
	return Parse(menuYAML)
}

// Parse decodes a YAML menu and checks that every day and meal has a dish
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	for _, day := range Days {
		meals, ok := c.Menu[day]
		if !ok {
			return nil, fmt.Errorf("menu is missing %s", day)
		}
		for _, meal := range Meals {
			if meals[meal] == "" {
				return nil, fmt.Errorf("menu is missing %s %s", day, meal)
			}
		}
	}

	return &c, nil
}

// Dish returns the dish description for a day and meal
func (c *Catalog) Dish(day, meal string) (string, bool) {
	dish, ok := c.Menu[day][meal]
	return dish, ok
}

// IsDay reports whether day is one of the seven menu days
func IsDay(day string) bool {
	return slices.Contains(Days, day)
}

// IsMeal reports whether meal is one of the four menu meals
func IsMeal(meal string) bool {
	return slices.Contains(Meals, meal)
}
