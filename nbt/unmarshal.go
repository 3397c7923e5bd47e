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
	"reflect"
	"sync"
)

// Unmarshaler is implemented by types that decode themselves from an NBT
// value
type Unmarshaler interface {
	UnmarshalNBT(v Value) error
}

// Unmarshal decodes a complete NBT document and stores the root payload
// into dest. Struct fields map to compound entries by field name, or by
// an `nbt:"name"` struct tag when present
func Unmarshal(data []byte, dest any, opts ...DecoderOptionFunc) error {
	v, err := Decode(data, opts...)
	if err != nil {
		return err
	}
	return UnmarshalValue(v, dest)
}

// UnmarshalValue stores an already-decoded value into dest
func UnmarshalValue(v Value, dest any) error {
	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("destination must be a non-nil pointer")
	}
	return unmarshalReflect(v, rv.Elem())
}

func unmarshalReflect(v Value, rv reflect.Value) error {
	if v == nil {
		return errors.New("cannot unmarshal nil value")
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalReflect(v, rv.Elem())
	}
	if rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalNBT(v)
		}
	}
	// Allow storing the Value itself when the destination asks for one
	if rv.Kind() == reflect.Interface &&
		rv.Type() == reflect.TypeOf((*Value)(nil)).Elem() {
		rv.Set(reflect.ValueOf(v))
		return nil
	}
	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		rv.Set(reflect.ValueOf(ToGo(v)))
		return nil
	}
	switch v := v.(type) {
	case Byte:
		// Byte doubles as the format's boolean
		if rv.Kind() == reflect.Bool {
			rv.SetBool(v != 0)
			return nil
		}
		return setInt(rv, int64(v), v.Type())
	case Short:
		return setInt(rv, int64(v), v.Type())
	case Int:
		return setInt(rv, int64(v), v.Type())
	case Long:
		return setInt(rv, int64(v), v.Type())
	case Float:
		return setFloat(rv, float64(v), v.Type())
	case Double:
		return setFloat(rv, float64(v), v.Type())
	case String:
		if rv.Kind() != reflect.String {
			return typeMismatch(v.Type(), rv.Type())
		}
		rv.SetString(string(v))
		return nil
	case ByteArray:
		if rv.Type() == reflect.TypeOf([]byte(nil)) {
			tmp := make([]byte, len(v))
			for i, b := range v {
				tmp[i] = byte(b)
			}
			rv.SetBytes(tmp)
			return nil
		}
		return unmarshalIntSlice(
			rv,
			len(v),
			func(i int) int64 { return int64(v[i]) },
			v.Type(),
		)
	case IntArray:
		return unmarshalIntSlice(
			rv,
			len(v),
			func(i int) int64 { return int64(v[i]) },
			v.Type(),
		)
	case LongArray:
		return unmarshalIntSlice(
			rv,
			len(v),
			func(i int) int64 { return v[i] },
			v.Type(),
		)
	case List:
		if rv.Kind() != reflect.Slice {
			return typeMismatch(v.Type(), rv.Type())
		}
		tmp := reflect.MakeSlice(rv.Type(), len(v.Items), len(v.Items))
		for i, item := range v.Items {
			if err := unmarshalReflect(item, tmp.Index(i)); err != nil {
				return fmt.Errorf("list item %d: %w", i, err)
			}
		}
		rv.Set(tmp)
		return nil
	case Compound:
		switch rv.Kind() {
		case reflect.Struct:
			fields := structFields(rv.Type())
			for name, child := range v {
				idx, ok := fields[name]
				if !ok {
					// Unknown names are ignored
					continue
				}
				if err := unmarshalReflect(child, rv.Field(idx)); err != nil {
					return fmt.Errorf("field %q: %w", name, err)
				}
			}
			return nil
		case reflect.Map:
			if rv.Type().Key().Kind() != reflect.String {
				return typeMismatch(v.Type(), rv.Type())
			}
			tmp := reflect.MakeMapWithSize(rv.Type(), len(v))
			for name, child := range v {
				elem := reflect.New(rv.Type().Elem()).Elem()
				if err := unmarshalReflect(child, elem); err != nil {
					return fmt.Errorf("entry %q: %w", name, err)
				}
				tmp.SetMapIndex(
					reflect.ValueOf(name).Convert(rv.Type().Key()),
					elem,
				)
			}
			rv.Set(tmp)
			return nil
		default:
			return typeMismatch(v.Type(), rv.Type())
		}
	default:
		return fmt.Errorf("cannot unmarshal value of type %T", v)
	}
}

func setInt(rv reflect.Value, v int64, tag TagType) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		if rv.OverflowInt(v) {
			return fmt.Errorf("%s value %d overflows %s", tag, v, rv.Type())
		}
		rv.SetInt(v)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64:
		if v < 0 || rv.OverflowUint(uint64(v)) {
			return fmt.Errorf("%s value %d overflows %s", tag, v, rv.Type())
		}
		rv.SetUint(uint64(v))
		return nil
	default:
		return typeMismatch(tag, rv.Type())
	}
}

func setFloat(rv reflect.Value, v float64, tag TagType) error {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(v)
		return nil
	default:
		return typeMismatch(tag, rv.Type())
	}
}

func unmarshalIntSlice(
	rv reflect.Value,
	length int,
	get func(int) int64,
	tag TagType,
) error {
	if rv.Kind() != reflect.Slice {
		return typeMismatch(tag, rv.Type())
	}
	tmp := reflect.MakeSlice(rv.Type(), length, length)
	for i := 0; i < length; i++ {
		if err := setInt(tmp.Index(i), get(i), tag); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	rv.Set(tmp)
	return nil
}

func typeMismatch(tag TagType, destType reflect.Type) error {
	return fmt.Errorf("cannot unmarshal %s into %s", tag, destType)
}

var (
	structFieldCache      = map[reflect.Type]map[string]int{}
	structFieldCacheMutex sync.RWMutex
)

// structFields maps compound entry names to struct field indexes,
// honoring `nbt` struct tags. The result is cached per type
func structFields(t reflect.Type) map[string]int {
	structFieldCacheMutex.RLock()
	fields, ok := structFieldCache[t]
	structFieldCacheMutex.RUnlock()
	if ok {
		return fields
	}
	fields = map[string]int{}
	for i := 0; i < t.NumField(); i++ {
		tmpField := t.Field(i)
		if !tmpField.IsExported() {
			continue
		}
		name := tmpField.Name
		if tag, ok := tmpField.Tag.Lookup("nbt"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		fields[name] = i
	}
	structFieldCacheMutex.Lock()
	structFieldCache[t] = fields
	structFieldCacheMutex.Unlock()
	return fields
}
