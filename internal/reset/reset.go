// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 destinykit contributors

// Package reset computes game reset boundaries. Daily reset happens every
// day at 17:00 UTC; weekly reset happens Tuesdays at 17:00 UTC. New manifest
// versions are typically published around the weekly reset, which makes
// these boundaries a natural schedule for sync checks.
package reset

import "time"

// Hour is the UTC hour at which both the daily and weekly reset occur.
const Hour = 17

// WeeklyDay is the weekday of the weekly reset.
const WeeklyDay = time.Tuesday

// NextDaily returns the first daily reset strictly after t.
func NextDaily(t time.Time) time.Time {
	t = t.UTC()
	next := time.Date(t.Year(), t.Month(), t.Day(), Hour, 0, 0, 0, time.UTC)
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// NextWeekly returns the first weekly reset strictly after t.
func NextWeekly(t time.Time) time.Time {
	next := NextDaily(t)
	for next.Weekday() != WeeklyDay {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// LastWeekly returns the most recent weekly reset at or before t.
func LastWeekly(t time.Time) time.Time {
	return NextWeekly(t.UTC()).AddDate(0, 0, -7)
}

// IsSameWeeklyPeriod reports whether a and b fall between the same pair of
// weekly resets. A cached manifest version checked within the same period as
// its import rarely needs re-fetching.
func IsSameWeeklyPeriod(a, b time.Time) bool {
	return LastWeekly(a).Equal(LastWeekly(b))
}
