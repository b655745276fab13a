package csvtable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDecimal is returned for values that do not follow the
// decimal separator rule of ParseDecimal.
var ErrMalformedDecimal = errors.New("malformed decimal")

// ParseDecimal parses a number written with either ',' or '.' as the
// decimal separator. At most one separator may appear; thousands grouping
// is not supported. Surrounding whitespace is ignored and an exponent is
// allowed ("2,5e-3").
func ParseDecimal(value string) (float64, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrMalformedDecimal)
	}

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")
	if commas+dots > 1 {
		return 0, fmt.Errorf("%w: %q has more than one decimal separator", ErrMalformedDecimal, value)
	}
	if commas == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrMalformedDecimal, value, err)
	}
	return f, nil
}
