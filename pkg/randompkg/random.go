// Package randompkg provides functionality for generating random application fixtures.
package randompkg

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer between min and max.
func IntBetween(min, max int) int32 {
	return int32(min) + int32(Intn(max-min))
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// Owner generates a random owner name.
func Owner() string {
	return String(6)
}

// MoneyAmountBetween generates a random amount of money between min and max.
func MoneyAmountBetween(min, max float64) string {
	return decimal.NewFromFloat(FloatBetween(min, max)).Round(2).String()
}

// Email generates a random email.
func Email() string {
	return fmt.Sprintf("%s@email.com", String(10))
}

// AccountType generates a random account type.
func AccountType() string {
	types := []string{"checking", "savings", "cash"}
	return types[Intn(len(types))]
}

// InterestModel generates a random loan interest model.
func InterestModel() string {
	models := []string{"simple", "compound", "emi"}
	return models[Intn(len(models))]
}

// PaymentFrequency generates a random loan payment frequency.
func PaymentFrequency() string {
	frequencies := []string{"monthly", "quarterly", "half-yearly", "yearly"}
	return frequencies[Intn(len(frequencies))]
}

// DateBetween generates a random date between min and max days from now,
// truncated to midnight UTC.
func DateBetween(minDays, maxDays int) time.Time {
	days := int(IntBetween(minDays, maxDays))
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, days)
}
