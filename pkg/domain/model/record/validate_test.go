package record_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"pgregory.net/rapid"
)

func TestValidateField(t *testing.T) {
	type testCase struct {
		field  record.Field
		input  string
		want   record.Value
		expErr error
	}

	runTest := func(tc testCase) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := record.ValidateField(tc.field, tc.input)
			if tc.expErr != nil {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, tc.expErr))
				gt.True(t, goerr.HasTag(err, errs.TagValidation))
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, got, tc.want)
		}
	}

	t.Run("text is trimmed", runTest(testCase{
		field: record.FieldProduct,
		input: "  Gear housing \n",
		want:  record.TextValue("Gear housing"),
	}))

	t.Run("empty text", runTest(testCase{
		field:  record.FieldTimeSpan,
		input:  "",
		expErr: record.ErrEmptyInput,
	}))

	t.Run("whitespace only", runTest(testCase{
		field:  record.FieldDetails,
		input:  " \t ",
		expErr: record.ErrEmptyInput,
	}))

	t.Run("positive quantity", runTest(testCase{
		field: record.FieldQuantity,
		input: " 12 ",
		want:  record.IntValue(12),
	}))

	t.Run("explicit plus sign", runTest(testCase{
		field: record.FieldQuantity,
		input: "+7",
		want:  record.IntValue(7),
	}))

	t.Run("zero quantity", runTest(testCase{
		field:  record.FieldQuantity,
		input:  "0",
		expErr: record.ErrNonPositive,
	}))

	t.Run("negative quantity", runTest(testCase{
		field:  record.FieldQuantity,
		input:  "-3",
		expErr: record.ErrNonPositive,
	}))

	t.Run("empty quantity", runTest(testCase{
		field:  record.FieldQuantity,
		input:  "   ",
		expErr: record.ErrEmptyInput,
	}))

	t.Run("non-numeric quantity is kept as text", runTest(testCase{
		field: record.FieldQuantity,
		input: "about 40",
		want:  record.TextValue("about 40"),
	}))

	t.Run("decimal quantity is kept as text", runTest(testCase{
		field: record.FieldQuantity,
		input: "2.5",
		want:  record.TextValue("2.5"),
	}))

	t.Run("huge positive literal is kept as text", runTest(testCase{
		field: record.FieldQuantity,
		input: "99999999999999999999999",
		want:  record.TextValue("99999999999999999999999"),
	}))

	t.Run("huge negative literal is rejected", runTest(testCase{
		field:  record.FieldQuantity,
		input:  "-99999999999999999999999",
		expErr: record.ErrNonPositive,
	}))

	t.Run("digits in non-quantity field stay text", runTest(testCase{
		field: record.FieldBlankType,
		input: "42",
		want:  record.TextValue("42"),
	}))
}

func TestValidateFieldProperties(t *testing.T) {
	t.Run("positive integers round trip", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			n := rapid.IntRange(1, 1<<40).Draw(rt, "n")
			pad := rapid.StringMatching(`[ \t]{0,3}`).Draw(rt, "pad")

			v, err := record.ValidateField(record.FieldQuantity, pad+strconv.Itoa(n)+pad)
			if err != nil {
				rt.Fatalf("unexpected error: %v", err)
			}
			got, ok := v.Int()
			if !ok || got != n {
				rt.Fatalf("want %d, got %v", n, v)
			}
		})
	})

	t.Run("non-positive integers are rejected", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			n := rapid.IntRange(-1<<40, 0).Draw(rt, "n")

			_, err := record.ValidateField(record.FieldQuantity, strconv.Itoa(n))
			if !errors.Is(err, record.ErrNonPositive) {
				rt.Fatalf("want ErrNonPositive for %d, got %v", n, err)
			}
		})
	})

	t.Run("text fields keep trimmed input", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			s := rapid.StringN(1, 40, -1).Draw(rt, "s")
			field := rapid.SampledFrom([]record.Field{
				record.FieldTimeSpan,
				record.FieldProduct,
				record.FieldBlankType,
				record.FieldOperation,
				record.FieldDetails,
			}).Draw(rt, "field")

			v, err := record.ValidateField(field, s)
			trimmed := strings.TrimSpace(s)
			if trimmed == "" {
				if !errors.Is(err, record.ErrEmptyInput) {
					rt.Fatalf("want ErrEmptyInput for %q, got %v", s, err)
				}
				return
			}
			if err != nil {
				rt.Fatalf("unexpected error: %v", err)
			}
			if v.String() != trimmed || v.IsNumber() {
				rt.Fatalf("want text %q, got %v", trimmed, v)
			}
		})
	})
}
