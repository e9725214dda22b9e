package entity

import "time"

// WeekOf returns the Monday on or before d. Sundays belong to the week that
// started six days earlier.
func WeekOf(d Date) Date {
	weekday := int(d.Weekday()) // Sunday = 0
	if weekday == 0 {
		return d.AddDays(-6)
	}
	return d.AddDays(-(weekday - 1))
}

// WeeksWindow enumerates n Mondays starting with the week containing today.
func WeeksWindow(today Date, n int) []Date {
	if n <= 0 {
		return nil
	}
	weeks := make([]Date, 0, n)
	monday := WeekOf(today)
	for i := 0; i < n; i++ {
		weeks = append(weeks, monday.AddWeeks(i))
	}
	return weeks
}

// IsWednesday reports whether d falls on the blog publishing day.
func IsWednesday(d Date) bool {
	return d.Weekday() == time.Wednesday
}
