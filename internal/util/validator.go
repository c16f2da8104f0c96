package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var amountCeiling = decimal.NewFromInt(10_000_000)

// ValidateAmount verifies a currency amount is positive and below the ceiling.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(amountCeiling) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateDate verifies a date string is exactly YYYY-MM-DD.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	// time.Parse accepts some non-canonical spellings; round-trip to be strict
	if t.Format("2006-01-02") != dateStr {
		return fmt.Errorf("invalid date format: %s", dateStr)
	}
	return nil
}

// ValidateClock verifies a time string is 24-hour HH:MM.
func ValidateClock(timeStr string) error {
	if timeStr == "" {
		return fmt.Errorf("time is empty")
	}
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}
	if t.Format("15:04") != timeStr {
		return fmt.Errorf("invalid time format: %s", timeStr)
	}
	return nil
}
