package scoreboardv1

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// FieldError reports a Struct field that does not hold the expected kind.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

func stringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok || isNull(v) {
		return "", nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", &FieldError{Field: name, Reason: "must be a string"}
	}
	return sv.StringValue, nil
}

func int32Field(s *structpb.Struct, name string) (int32, error) {
	n, err := numberField(s, name, math.MinInt32, math.MaxInt32)
	return int32(n), err
}

func int64Field(s *structpb.Struct, name string) (int64, error) {
	// Struct numbers are doubles, so only the exactly representable range is
	// accepted.
	const limit = 1 << 53
	return numberField(s, name, -limit, limit)
}

func numberField(s *structpb.Struct, name string, lo, hi float64) (int64, error) {
	v, ok := s.GetFields()[name]
	if !ok || isNull(v) {
		return 0, nil
	}
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, &FieldError{Field: name, Reason: "must be a number"}
	}
	n := nv.NumberValue
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, &FieldError{Field: name, Reason: "must be an integer"}
	}
	if n < lo || n > hi {
		return 0, &FieldError{Field: name, Reason: "out of range"}
	}
	return int64(n), nil
}

func listField(s *structpb.Struct, name string) ([]*structpb.Value, error) {
	v, ok := s.GetFields()[name]
	if !ok || isNull(v) {
		return nil, nil
	}
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, &FieldError{Field: name, Reason: "must be a list"}
	}
	return lv.ListValue.GetValues(), nil
}

func isNull(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_NullValue)
	return ok || v.GetKind() == nil
}

func stringValue(s string) *structpb.Value { return structpb.NewStringValue(s) }

func numberValue[T int32 | int64](n T) *structpb.Value { return structpb.NewNumberValue(float64(n)) }
