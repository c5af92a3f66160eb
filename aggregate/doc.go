// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate computes dashboard statistics from stored submissions.

Compute is pure: no I/O and identical input gives identical output.

  - Meal suggestions: counted per meal over the four known meals, ranked
    by count, ties in first-seen order
  - Opinion words: whitespace tokens of at least four runes, lowercased,
    top MaxOpinionWords by count
  - Most active user: the email with the most submissions; on a tie the
    email seen first wins

Submissions are visited in the order given (newest first from the store).
Within a submission, known days and meals are visited in menu order and
unknown keys after them in sorted order.
*/
package aggregate
