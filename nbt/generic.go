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
	"reflect"
	"sync"

	"github.com/jinzhu/copier"
)

// DecodeStoreNbtInterface is implemented by types that preserve their
// original wire bytes
type DecodeStoreNbtInterface interface {
	Nbt() []byte
}

// DecodeStoreNbt can be embedded in a struct to preserve the original
// wire bytes across a decode, which is useful when the bytes are needed
// later for hashing or re-emission
type DecodeStoreNbt struct {
	nbtData []byte
}

// Nbt returns the original wire bytes for the object
func (d *DecodeStoreNbt) Nbt() []byte {
	return d.nbtData
}

// SetNbt stores a copy of the original wire bytes
func (d *DecodeStoreNbt) SetNbt(data []byte) {
	d.nbtData = make([]byte, len(data))
	copy(d.nbtData, data)
}

var (
	decodeGenericTypeCache      = map[reflect.Type]reflect.Type{}
	decodeGenericTypeCacheMutex sync.RWMutex
)

// DecodeGeneric decodes the specified document into the destination
// object without using the destination object's UnmarshalNBT() function
func DecodeGeneric(data []byte, dest any, opts ...DecoderOptionFunc) error {
	tmpDest, err := genericShadow(dest)
	if err != nil {
		return err
	}
	if err := Unmarshal(data, tmpDest.Interface(), opts...); err != nil {
		return err
	}
	// Copy values from temporary object into destination object
	if err := copier.Copy(dest, tmpDest.Interface()); err != nil {
		return err
	}
	if setter, ok := dest.(interface{ SetNbt([]byte) }); ok {
		// Store a copy of the original wire bytes. This must be done after
		// the copy above, or it gets wiped out when the DecodeStoreNbt
		// struct is embedded at a deeper level
		setter.SetNbt(data)
	}
	return nil
}

// EncodeGeneric encodes the specified object without using the source
// object's MarshalNBT() function
func EncodeGeneric(
	name string,
	src any,
	opts ...EncoderOptionFunc,
) ([]byte, error) {
	tmpSrc, err := genericShadow(src)
	if err != nil {
		return nil, err
	}
	// Copy values from source object into temporary object
	if err := copier.Copy(tmpSrc.Interface(), src); err != nil {
		return nil, err
	}
	return Marshal(name, tmpSrc.Interface(), opts...)
}

// genericShadow builds a duplicate(-ish) struct type from obj so that any
// custom UnmarshalNBT()/MarshalNBT() function on obj is bypassed. The
// synthetic type is cached per source type
func genericShadow(obj any) (reflect.Value, error) {
	valueObj := reflect.ValueOf(obj)
	if valueObj.Kind() != reflect.Pointer ||
		valueObj.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, errors.New(
			"object must be a pointer to a struct",
		)
	}
	typeObj := valueObj.Elem().Type()
	// Check type cache
	decodeGenericTypeCacheMutex.RLock()
	tmpTypeObj, ok := decodeGenericTypeCache[typeObj]
	decodeGenericTypeCacheMutex.RUnlock()
	if !ok {
		objTypeFields := []reflect.StructField{}
		for i := 0; i < typeObj.NumField(); i++ {
			tmpField := typeObj.Field(i)
			if tmpField.IsExported() && tmpField.Name != "DecodeStoreNbt" {
				objTypeFields = append(objTypeFields, tmpField)
			}
		}
		tmpTypeObj = reflect.StructOf(objTypeFields)
		// Populate cache
		decodeGenericTypeCacheMutex.Lock()
		decodeGenericTypeCache[typeObj] = tmpTypeObj
		decodeGenericTypeCacheMutex.Unlock()
	}
	return reflect.New(tmpTypeObj), nil
}
