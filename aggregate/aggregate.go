// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/danielhkuo/makeurownmenu/catalog"
	"github.com/danielhkuo/makeurownmenu/models"
)

// MaxOpinionWords caps the word cloud
const MaxOpinionWords = 50

// minWordLen is the shortest opinion word that counts
const minWordLen = 4

// counter tallies keys while remembering first-seen order
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns keys by descending count, ties in first-seen order
func (c *counter) ranked() []string {
	keys := slices.Clone(c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

// Compute derives dashboard statistics from a list of submissions.
// It performs no I/O; identical input yields identical output.
func Compute(submissions []models.Submission) models.Stats {
	lower := cases.Lower(language.Und)

	suggestions := make(map[string]*counter, len(catalog.Meals))
	for _, meal := range catalog.Meals {
		suggestions[meal] = newCounter()
	}
	words := newCounter()
	emails := newCounter()
	names := make(map[string]string)

	for _, sub := range submissions {
		if sub.Email != "" {
			if _, ok := names[sub.Email]; !ok {
				names[sub.Email] = sub.Name
			}
			emails.add(sub.Email)
		}

		for _, day := range orderedKeys(sub.MenuFeedback, catalog.Days, catalog.IsDay) {
			meals := sub.MenuFeedback[day]
			for _, meal := range orderedKeys(meals, catalog.Meals, catalog.IsMeal) {
				entry := meals[meal]

				if entry.Suggestion != "" && catalog.IsMeal(meal) {
					suggestions[meal].add(entry.Suggestion)
				}

				if entry.Opinion != "" {
					for _, token := range strings.Fields(entry.Opinion) {
						// Counted in runes, so "😀😀" is two characters, not four
						if utf8.RuneCountInString(token) < minWordLen {
							continue
						}
						words.add(lower.String(token))
					}
				}
			}
		}
	}

	stats := models.Stats{
		TotalSubmissions: len(submissions),
		MealSuggestions:  make(map[string][]models.MealSuggestion, len(catalog.Meals)),
		OpinionWords:     []models.WordCount{},
	}

	for _, meal := range catalog.Meals {
		c := suggestions[meal]
		ranked := make([]models.MealSuggestion, 0, len(c.order))
		for _, s := range c.ranked() {
			ranked = append(ranked, models.MealSuggestion{Suggestion: s, Count: c.counts[s]})
		}
		stats.MealSuggestions[meal] = ranked
	}

	for i, w := range words.ranked() {
		if i == MaxOpinionWords {
			break
		}
		stats.OpinionWords = append(stats.OpinionWords, models.WordCount{Text: w, Value: words.counts[w]})
	}

	stats.MostActiveUser = mostActive(emails, names)

	return stats
}

// mostActive picks the highest count; an equal later count never replaces
// the current leader
func mostActive(emails *counter, names map[string]string) *models.ActiveUser {
	var best *models.ActiveUser
	for _, email := range emails.order {
		n := emails.counts[email]
		if best == nil || n > best.Count {
			best = &models.ActiveUser{Email: email, Name: names[email], Count: n}
		}
	}
	return best
}

// orderedKeys lists the keys of m with known keys first in canonical order,
// then any unknown keys sorted
func orderedKeys[V any](m map[string]V, known []string, isKnown func(string) bool) []string {
	keys := make([]string, 0, len(m))
	for _, k := range known {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}

	var extra []string
	for k := range m {
		if !isKnown(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)

	return append(keys, extra...)
}
