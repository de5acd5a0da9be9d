package record

import "strconv"

// Value is one validated input. Quantity inputs are either a positive integer or
// the trimmed text the worker typed; every other field is text.
type Value struct {
	text  string
	num   int
	isNum bool
}

func IntValue(n int) Value {
	return Value{num: n, isNum: true}
}

func TextValue(s string) Value {
	return Value{text: s}
}

// Int returns the integer and true when the value was parsed as a number.
func (x Value) Int() (int, bool) {
	return x.num, x.isNum
}

func (x Value) IsNumber() bool {
	return x.isNum
}

func (x Value) String() string {
	if x.isNum {
		return strconv.Itoa(x.num)
	}
	return x.text
}

// Cell returns the value as stored in a table cell: int for numbers, string otherwise.
func (x Value) Cell() any {
	if x.isNum {
		return x.num
	}
	return x.text
}

func (x Value) IsZero() bool {
	return !x.isNum && x.text == ""
}
