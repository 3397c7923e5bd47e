// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nbt

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Marshaler is implemented by types that encode themselves to an NBT
// value
type Marshaler interface {
	MarshalNBT() (Value, error)
}

// Marshal encodes src as a complete NBT document with the given root name
func Marshal(name string, src any, opts ...EncoderOptionFunc) ([]byte, error) {
	v, err := MarshalValue(src)
	if err != nil {
		return nil, err
	}
	return Encode(name, v, opts...)
}

// MarshalValue converts a Go value into an NBT value tree. Struct fields
// map to compound entries by field name, or by an `nbt:"name"` struct tag
// when present
func MarshalValue(src any) (Value, error) {
	return marshalReflect(reflect.ValueOf(src))
}

func marshalReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return nil, errors.New("cannot marshal invalid value")
	}
	if rv.CanInterface() {
		if m, ok := rv.Interface().(Marshaler); ok {
			return m.MarshalNBT()
		}
		if v, ok := rv.Interface().(Value); ok {
			return v, nil
		}
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, errors.New("cannot marshal nil value")
		}
		return marshalReflect(rv.Elem())
	case reflect.Bool:
		if rv.Bool() {
			return Byte(1), nil
		}
		return Byte(0), nil
	case reflect.Int8:
		return Byte(rv.Int()), nil
	case reflect.Int16:
		return Short(rv.Int()), nil
	case reflect.Int32:
		return Int(rv.Int()), nil
	case reflect.Int, reflect.Int64:
		return Long(rv.Int()), nil
	case reflect.Uint8:
		return Byte(int8(rv.Uint())), nil
	case reflect.Uint16:
		return Short(int16(rv.Uint())), nil
	case reflect.Uint32:
		return Int(int32(rv.Uint())), nil
	case reflect.Uint, reflect.Uint64:
		if rv.Uint() > math.MaxInt64 {
			return nil, fmt.Errorf(
				"unsigned value %d overflows %s",
				rv.Uint(),
				TagLong,
			)
		}
		return Long(rv.Uint()), nil
	case reflect.Float32:
		return Float(rv.Float()), nil
	case reflect.Float64:
		return Double(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		return marshalSequence(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf(
				"cannot marshal map with %s keys",
				rv.Type().Key(),
			)
		}
		ret := make(Compound, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			child, err := marshalReflect(iter.Value())
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w", iter.Key().String(), err)
			}
			ret[iter.Key().String()] = child
		}
		return ret, nil
	case reflect.Struct:
		fields := structFields(rv.Type())
		ret := make(Compound, len(fields))
		for name, idx := range fields {
			child, err := marshalReflect(rv.Field(idx))
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
			ret[name] = child
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("cannot marshal value of type %s", rv.Type())
	}
}

// marshalSequence maps Go sequences onto the wire's array types where the
// element width matches, and onto List otherwise
func marshalSequence(rv reflect.Value) (Value, error) {
	switch rv.Type().Elem().Kind() {
	case reflect.Int8:
		ret := make(ByteArray, rv.Len())
		for i := range ret {
			ret[i] = int8(rv.Index(i).Int())
		}
		return ret, nil
	case reflect.Uint8:
		ret := make(ByteArray, rv.Len())
		for i := range ret {
			ret[i] = int8(rv.Index(i).Uint())
		}
		return ret, nil
	case reflect.Int32:
		ret := make(IntArray, rv.Len())
		for i := range ret {
			ret[i] = int32(rv.Index(i).Int())
		}
		return ret, nil
	case reflect.Int64:
		ret := make(LongArray, rv.Len())
		for i := range ret {
			ret[i] = rv.Index(i).Int()
		}
		return ret, nil
	default:
		ret := List{
			ElementType: TagEnd,
			Items:       make([]Value, 0, rv.Len()),
		}
		for i := 0; i < rv.Len(); i++ {
			item, err := marshalReflect(rv.Index(i))
			if err != nil {
				return nil, fmt.Errorf("list item %d: %w", i, err)
			}
			if i == 0 {
				ret.ElementType = item.Type()
			} else if item.Type() != ret.ElementType {
				return nil, fmt.Errorf(
					"list item %d has type %s, expected %s",
					i,
					item.Type(),
					ret.ElementType,
				)
			}
			ret.Items = append(ret.Items, item)
		}
		return ret, nil
	}
}
