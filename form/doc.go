// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form models the multi-step menu feedback form.

A Form collects user details and a suggestion plus opinion for each of
the 28 day/meal slots. Validate reports the first problem:

	f := form.New()
	f.SetUserField("name", "Asha")
	f.SetFeedback("Monday", "Lunch", "suggestion", "Rajma")

	var pending *form.IncompleteMenuFeedbackError
	if errors.As(f.Validate(), &pending) {
		// jump to pending.Day
	}

Submit validates and sends through a Submitter, normally *client.Client.
Rejections from the API come back as *SubmitError.
*/
package form
