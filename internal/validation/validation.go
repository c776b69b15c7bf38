// Package validation provides the shape checks applied to API inputs.
// Every function is pure and reports validity as a bool.
package validation

import (
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/flight-search/ryanair-api/internal/infrastructure/timeutil"
)

// SupportedCurrencies lists the currency codes accepted by the fare endpoints.
var SupportedCurrencies = []string{"EUR", "USD", "GBP", "PLN", "CZK", "HUF", "SEK", "NOK", "DKK"}

// Validation tags evaluated by the shared validator.
const (
	iataTag = "required,len=3,alpha,uppercase"
	dateTag = "required,datetime=" + timeutil.DateLayout
)

var (
	validate    = validator.New(validator.WithRequiredStructEnabled())
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyTag = "required,oneof=" + strings.Join(SupportedCurrencies, " ")
)

// ValidateIATACode reports whether code is exactly three uppercase letters.
// Callers uppercase user input before checking.
func ValidateIATACode(code string) bool {
	return validate.Var(code, iataTag) == nil
}

// ValidateDate reports whether s is a YYYY-MM-DD string naming a real calendar day.
func ValidateDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	return validate.Var(s, dateTag) == nil
}

// ValidatePassengerCount reports whether count is a number within [minCount, maxCount].
// NaN, used for unparseable input, is always rejected.
func ValidatePassengerCount(count float64, minCount, maxCount int) bool {
	if math.IsNaN(count) {
		return false
	}
	return count >= float64(minCount) && count <= float64(maxCount)
}

// ValidateCurrency reports whether currency is a supported code, ignoring case.
func ValidateCurrency(currency string) bool {
	return validate.Var(strings.ToUpper(currency), currencyTag) == nil
}

// ValidateDateRange reports whether start and end are valid dates with start on or before end.
func ValidateDateRange(start, end string) bool {
	if !ValidateDate(start) || !ValidateDate(end) {
		return false
	}

	startDate, err := timeutil.ParseDate(start)
	if err != nil {
		return false
	}
	endDate, err := timeutil.ParseDate(end)
	if err != nil {
		return false
	}
	return !startDate.After(endDate)
}
