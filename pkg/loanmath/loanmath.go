// Package loanmath computes loan repayment schedules.
//
// All functions are pure so the preview shown before a loan is created and
// the figures derived for a persisted loan can never diverge.
package loanmath

import (
	"math"
	"time"
)

// Interest models.
const (
	ModelSimple   = "simple"
	ModelCompound = "compound"
	ModelEMI      = "emi"
)

// Payment frequencies.
const (
	FreqMonthly    = "monthly"
	FreqQuarterly  = "quarterly"
	FreqHalfYearly = "half-yearly"
	FreqYearly     = "yearly"
)

// Result holds the derived repayment figures for a loan.
type Result struct {
	TotalRepayment          float64
	InterestAmount          float64
	NextInstallmentInterest float64
}

// FrequencyDivisor returns the number of payments per year for the given
// frequency. Unknown frequencies fall back to monthly.
func FrequencyDivisor(frequency string) float64 {
	switch frequency {
	case FreqQuarterly:
		return 4
	case FreqHalfYearly:
		return 2
	case FreqYearly:
		return 1
	default:
		return 12
	}
}

// Term returns the loan term in years: calendar days between start and due
// divided by 365, reduced by the grace period and floored at zero.
func Term(start, due time.Time, graceMonths int) float64 {
	if start.IsZero() || due.IsZero() {
		return 0
	}

	days := math.Ceil(math.Abs(due.Sub(start).Hours()) / 24)
	years := days / 365

	if graceMonths > 0 {
		years = math.Max(0, years-float64(graceMonths)/12)
	}

	return years
}

// Amortize computes total repayment, the interest component, and the
// interest share of the next installment for the given loan terms.
//
// Degenerate inputs (zero rate, zero term) repay exactly the principal, and
// any non-finite intermediate result is reported as 0 rather than
// propagated.
func Amortize(principal, annualRatePct float64, model string, start, due time.Time, graceMonths int, frequency string) Result {
	tYears := Term(start, due, graceMonths)

	var total, interest float64

	switch model {
	case ModelSimple:
		interest = principal * (annualRatePct / 100) * tYears
		total = principal + interest
	case ModelCompound:
		n := FrequencyDivisor(frequency)
		total = principal * math.Pow(1+(annualRatePct/100)/n, n*tYears)
		interest = total - principal
	case ModelEMI:
		monthlyRate := (annualRatePct / 100) / 12
		months := tYears * 12

		if months > 0 && monthlyRate > 0 {
			installment := (principal * monthlyRate * math.Pow(1+monthlyRate, months)) /
				(math.Pow(1+monthlyRate, months) - 1)
			total = installment * months
			interest = total - principal
		} else {
			total = principal
		}
	}

	divisor := FrequencyDivisor(frequency)

	next := (total - principal) / nonZero(tYears*divisor)
	if model == ModelSimple {
		next = (principal * (annualRatePct / 100)) / divisor
	}

	return Result{
		TotalRepayment:          finite(total),
		InterestAmount:          finite(interest),
		NextInstallmentInterest: finite(next),
	}
}

func nonZero(x float64) float64 {
	if x == 0 {
		return 1
	}

	return x
}

func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return x
}
