package quiz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"quiz-data-generator/internal/common"
	"quiz-data-generator/internal/record"
)

// Coercion errors. They are wrapped with the offending value.
var (
	ErrEmpty       = errors.New("value is empty")
	ErrNotInteger  = errors.New("value is not an integer")
	ErrUnsupported = errors.New("unsupported value kind")
)

// ToInt coerces a cell value to an integer. Numbers and numeric text are
// accepted when integral, so 1, 1.0 and "1.0" all yield 1.
func ToInt(v record.Value) (int, error) {
	var s string

	switch v.Kind {
	case record.KindNull:
		return 0, ErrEmpty
	case record.KindNumber:
		s = v.Num.String()
	case record.KindText:
		s = strings.TrimSpace(v.Text)
		if s == "" {
			return 0, ErrEmpty
		}
	default:
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, v.Kind)
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}

	if f != math.Trunc(f) || !common.InRange(math.MinInt32, f, math.MaxInt32) {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}

	return int(f), nil
}

// ToText coerces a cell value to text. Numbers are printed in plain decimal
// form without a trailing ".0"; bools print as true/false.
func ToText(v record.Value) (string, error) {
	switch v.Kind {
	case record.KindNull:
		return "", ErrEmpty
	case record.KindText:
		return v.Text, nil
	case record.KindNumber:
		f, err := v.Num.Float64()
		if err != nil {
			return v.Num.String(), nil
		}

		return record.FormatNumber(f), nil
	case record.KindBool:
		return strconv.FormatBool(v.Bool), nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupported, v.Kind)
	}
}
