package entities

import (
	"sort"
	"time"
)

// MonthlyIncome is the income total of one calendar month
type MonthlyIncome struct {
	Month  string  `json:"month"` // YYYY-MM
	Label  string  `json:"label"` // e.g. "Jan 24"
	Income float64 `json:"income"`
}

// IncomeSummary aggregates the income collection for the chart widget
type IncomeSummary struct {
	Total  float64         `json:"total"`
	Months []MonthlyIncome `json:"months"`
}

// ParseDate parses an income date. Full RFC 3339 timestamps are accepted
// for entries written by older clients.
func ParseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// incomeAfter reports whether a sorts before b in date-descending order
func incomeAfter(a, b IncomeEntry) bool {
	ta, okA := ParseDate(a.Date)
	tb, okB := ParseDate(b.Date)
	if okA && okB {
		return ta.After(tb)
	}
	return a.Date > b.Date
}

// SortIncomes orders entries by date descending. Entries sharing a date keep
// their relative order.
func SortIncomes(entries []IncomeEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return incomeAfter(entries[i], entries[j])
	})
}

// InsertIncome appends entry and re-establishes the date-descending order
func InsertIncome(entries []IncomeEntry, entry IncomeEntry) []IncomeEntry {
	entries = append(entries, entry)
	SortIncomes(entries)
	return entries
}

// SummarizeIncomes totals all entries and groups them by month in
// chronological order. Entries with an unreadable date count toward the
// total only.
func SummarizeIncomes(entries []IncomeEntry) IncomeSummary {
	summary := IncomeSummary{Months: []MonthlyIncome{}}
	byMonth := make(map[time.Time]float64)

	for _, entry := range entries {
		summary.Total += entry.Amount

		date, ok := ParseDate(entry.Date)
		if !ok {
			continue
		}
		month := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[month] += entry.Amount
	}

	months := make([]time.Time, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	for _, month := range months {
		summary.Months = append(summary.Months, MonthlyIncome{
			Month:  month.Format("2006-01"),
			Label:  month.Format("Jan 06"),
			Income: byMonth[month],
		})
	}

	return summary
}
