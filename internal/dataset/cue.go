package dataset

import (
	"fmt"

	"cuelang.org/go/cue"

	"github.com/jeepies/leagues/internal/ir"
)

// FromCUE converts a concrete CUE value into a record value.
// Struct fields keep declaration order; definitions and hidden fields are
// skipped.
func FromCUE(v cue.Value) (ir.Value, error) {
	if err := v.Err(); err != nil {
		return nil, err
	}

	switch v.Kind() {
	case cue.NullKind:
		return ir.Null{}, nil

	case cue.BoolKind:
		b, err := v.Bool()
		if err != nil {
			return nil, err
		}
		return ir.Bool(b), nil

	case cue.IntKind, cue.FloatKind, cue.NumberKind:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", v.Path(), err)
		}
		return ir.Number(f), nil

	case cue.StringKind:
		s, err := v.String()
		if err != nil {
			return nil, err
		}
		return ir.String(s), nil

	case cue.BytesKind:
		b, err := v.Bytes()
		if err != nil {
			return nil, err
		}
		return ir.String(b), nil

	case cue.StructKind:
		iter, err := v.Fields()
		if err != nil {
			return nil, err
		}
		obj := ir.NewObject()
		for iter.Next() {
			val, err := FromCUE(iter.Value())
			if err != nil {
				return nil, err
			}
			obj.Set(iter.Label(), val)
		}
		return obj, nil

	case cue.ListKind:
		list, err := v.List()
		if err != nil {
			return nil, err
		}
		arr := ir.Array{}
		for list.Next() {
			val, err := FromCUE(list.Value())
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil

	default:
		return nil, fmt.Errorf("%s: value is not concrete (kind %s)", v.Path(), v.IncompleteKind())
	}
}
