package utils

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var balancePrinter = message.NewPrinter(language.English)

// FormatBalance renders a point balance with thousands separators and no decimals
func FormatBalance(v float64) string {
	return balancePrinter.Sprintf("%.0f", v)
}

// ParseAmount parses a decimal amount reported as a string. Empty or invalid input is zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatHoursMinutes splits a duration into whole hours and remaining minutes
func FormatHoursMinutes(d time.Duration) (hours, minutes int) {
	total := int(d / time.Minute)
	return total / 60, total % 60
}
