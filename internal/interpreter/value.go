package interpreter

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	INT ValueKind = iota
	FLOAT
)

// Value is a runtime number. Integers stay exact under '+', '-' and '*';
// division always produces a float, matching true division.
type Value struct {
	Kind ValueKind

	intValue   int64
	floatValue float64
}

func IntValue(value int64) Value {
	return Value{
		Kind:     INT,
		intValue: value,
	}
}

func FloatValue(value float64) Value {
	return Value{
		Kind:       FLOAT,
		floatValue: value,
	}
}

func (v Value) Int() int64 {
	if v.Kind != INT {
		panic(fmt.Sprintf("Value.Int(): called on a %d value", v.Kind))
	}

	return v.intValue
}

func (v Value) Float() float64 {
	if v.Kind == INT {
		return float64(v.intValue)
	}

	return v.floatValue
}

func (v Value) IsZero() bool {
	if v.Kind == INT {
		return v.intValue == 0
	}

	return v.floatValue == 0
}

func (v Value) Add(other Value) Value {
	if v.Kind == INT && other.Kind == INT {
		return IntValue(v.intValue + other.intValue)
	}

	return FloatValue(v.Float() + other.Float())
}

func (v Value) Sub(other Value) Value {
	if v.Kind == INT && other.Kind == INT {
		return IntValue(v.intValue - other.intValue)
	}

	return FloatValue(v.Float() - other.Float())
}

func (v Value) Mul(other Value) Value {
	if v.Kind == INT && other.Kind == INT {
		return IntValue(v.intValue * other.intValue)
	}

	return FloatValue(v.Float() * other.Float())
}

// Div is true division: the result is a float even for evenly dividing
// integers. Callers check the divisor for zero first.
func (v Value) Div(other Value) Value {
	return FloatValue(v.Float() / other.Float())
}

func (v Value) String() string {
	if v.Kind == INT {
		return strconv.FormatInt(v.intValue, 10)
	}

	return strconv.FormatFloat(v.floatValue, 'g', -1, 64)
}
