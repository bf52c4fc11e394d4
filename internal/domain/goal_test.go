package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGoalProgress(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	goal := Goal{TargetAmount: "500", CreatedAt: created}

	entry := func(amount string, kind EntryKind, at time.Time) Entry {
		return Entry{Amount: amount, Kind: kind, CreatedAt: at}
	}

	testCases := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{
			name: "IncomeAddsExpenseSubtracts",
			entries: []Entry{
				entry("300", KindIncome, created.Add(time.Hour)),
				entry("100", KindExpense, created.Add(2*time.Hour)),
			},
			want: "200",
		},
		{
			name: "TransfersIgnored",
			entries: []Entry{
				entry("300", KindIncome, created.Add(time.Hour)),
				entry("250", KindTransferOut, created.Add(2*time.Hour)),
				entry("250", KindTransferIn, created.Add(3*time.Hour)),
			},
			want: "300",
		},
		{
			name: "EntriesBeforeGoalIgnored",
			entries: []Entry{
				entry("1000", KindIncome, created.Add(-time.Hour)),
				entry("50", KindIncome, created.Add(time.Hour)),
			},
			want: "50",
		},
		{
			name: "NetCanGoNegative",
			entries: []Entry{
				entry("100", KindIncome, created.Add(time.Hour)),
				entry("250", KindExpense, created.Add(2*time.Hour)),
			},
			want: "-150",
		},
		{
			name:    "NoEntries",
			entries: nil,
			want:    "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := GoalProgress(goal, tc.entries)
			if got.String() != tc.want {
				t.Errorf("GoalProgress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGoalReached(t *testing.T) {
	goal := Goal{TargetAmount: "500"}

	testCases := []struct {
		name     string
		progress string
		want     bool
	}{
		{name: "ExactTarget", progress: "500", want: true},
		{name: "AboveTarget", progress: "500.01", want: true},
		{name: "WithinEpsilon", progress: "499.99", want: true},
		{name: "JustBelowEpsilon", progress: "499.98", want: false},
		{name: "FarBelow", progress: "100", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			progress := decimal.RequireFromString(tc.progress)
			if got := GoalReached(goal, progress); got != tc.want {
				t.Errorf("GoalReached(%v, %v) = %v, want %v", goal.TargetAmount, tc.progress, got, tc.want)
			}
		})
	}
}

func TestGoalReachedMalformedTarget(t *testing.T) {
	goal := Goal{TargetAmount: "not-a-number"}

	if GoalReached(goal, decimal.NewFromInt(1000)) {
		t.Error("GoalReached() = true for malformed target, want false")
	}
}
