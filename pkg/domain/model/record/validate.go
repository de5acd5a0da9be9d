package record

import (
	"errors"
	"strconv"
	"strings"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrEmptyInput  = errors.New("input is empty")
	ErrNonPositive = errors.New("quantity must be a positive number")
)

// ValidateField normalizes raw input for field. Whitespace around the input is
// dropped. Quantity accepts a positive integer, rejects zero and negatives, and
// keeps any non-integer text as is.
func ValidateField(field Field, raw string) (Value, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{}, goerr.Wrap(ErrEmptyInput, "validation failed",
			goerr.T(errs.TagValidation),
			goerr.TV(errutil.FieldKey, field.String()),
		)
	}

	if !field.IsQuantity() {
		return TextValue(s), nil
	}

	n, err := strconv.Atoi(s)
	switch {
	case err == nil && n <= 0:
		return Value{}, nonPositive(field, s)
	case err == nil:
		return IntValue(n), nil
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(s, "-"):
		return Value{}, nonPositive(field, s)
	default:
		return TextValue(s), nil
	}
}

func nonPositive(field Field, s string) error {
	return goerr.Wrap(ErrNonPositive, "validation failed",
		goerr.T(errs.TagValidation),
		goerr.TV(errutil.FieldKey, field.String()),
		goerr.V("input", s),
	)
}
