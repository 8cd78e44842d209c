package frame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// FieldCount is the number of values in a well-formed line.
const FieldCount = 11

var fieldNames = [FieldCount]string{"nx", "ny", "nz", "b", "px", "py", "pz", "qx", "qy", "qz", "phi"}

// FieldName returns the conventional name of the i-th field, or "extra"
// for indices past the last field.
func FieldName(i int) string {
	if i >= 0 && i < FieldCount {
		return fieldNames[i]
	}
	return "extra"
}

// Frame is one parsed record: a plane and two points.
type Frame struct {
	Normal r3.Vec
	Offset float64
	P, Q   r3.Vec
	Phi    float64
}

// Parse decodes one feed line. Every token is converted before the count is
// checked, so a non-numeric token is reported even on a short line.
func Parse(line string) (Frame, error) {
	tokens := strings.Split(strings.TrimSpace(line), ",")
	vals := make([]float64, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		v, err := parseNumber(tok)
		if err != nil {
			return Frame{}, &NumberError{Index: i, Token: tok, Wrapped: err}
		}
		vals[i] = v
	}
	if len(vals) != FieldCount {
		return Frame{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(vals), FieldCount)
	}
	return FromValues(vals), nil
}

// parseNumber accepts decimal reals only. Magnitudes outside the float64
// range saturate to ±Inf or zero instead of failing.
func parseNumber(tok string) (float64, error) {
	digits := strings.TrimLeft(tok, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, &strconv.NumError{Func: "ParseFloat", Num: tok, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// FromValues builds a Frame from exactly FieldCount values in feed order.
// It panics if vals is shorter than FieldCount.
func FromValues(vals []float64) Frame {
	_ = vals[FieldCount-1]
	return Frame{
		Normal: r3.Vec{X: vals[0], Y: vals[1], Z: vals[2]},
		Offset: vals[3],
		P:      r3.Vec{X: vals[4], Y: vals[5], Z: vals[6]},
		Q:      r3.Vec{X: vals[7], Y: vals[8], Z: vals[9]},
		Phi:    vals[10],
	}
}

// Values returns the frame's fields in feed order.
func (f Frame) Values() []float64 {
	return []float64{
		f.Normal.X, f.Normal.Y, f.Normal.Z,
		f.Offset,
		f.P.X, f.P.Y, f.P.Z,
		f.Q.X, f.Q.Y, f.Q.Z,
		f.Phi,
	}
}

// Format renders the frame as a feed line without the trailing newline.
func (f Frame) Format() string {
	vals := f.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
