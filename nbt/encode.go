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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
)

// Encoder writes NBT values in the wire format. It exists primarily so
// that decoded trees can be round-tripped; the decoder is the core of
// this package
type Encoder struct {
	buf       bytes.Buffer
	byteOrder binary.ByteOrder
}

// Encode serializes the named root value into a complete NBT document
func Encode(name string, v Value, opts ...EncoderOptionFunc) ([]byte, error) {
	if v == nil {
		return nil, errors.New("cannot encode nil value")
	}
	e := &Encoder{
		byteOrder: binary.BigEndian,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.writeTag(v.Type())
	if err := e.writeString(name); err != nil {
		return nil, err
	}
	if err := e.writePayload(v); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

func (e *Encoder) writeTag(t TagType) {
	e.buf.WriteByte(byte(t))
}

func (e *Encoder) writeUint16(v uint16) {
	var tmp [2]byte
	e.byteOrder.PutUint16(tmp[:], v)
	e.buf.Write(tmp[:])
}

func (e *Encoder) writeUint32(v uint32) {
	var tmp [4]byte
	e.byteOrder.PutUint32(tmp[:], v)
	e.buf.Write(tmp[:])
}

func (e *Encoder) writeUint64(v uint64) {
	var tmp [8]byte
	e.byteOrder.PutUint64(tmp[:], v)
	e.buf.Write(tmp[:])
}

func (e *Encoder) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("string too long for wire format: %d bytes", len(s))
	}
	e.writeUint16(uint16(len(s)))
	e.buf.WriteString(s)
	return nil
}

func (e *Encoder) writeCount(tag TagType, count int) error {
	if count > math.MaxInt32 {
		return fmt.Errorf("%s too long for wire format: %d elements", tag, count)
	}
	e.writeUint32(uint32(int32(count)))
	return nil
}

func (e *Encoder) writePayload(v Value) error {
	switch v := v.(type) {
	case Byte:
		e.buf.WriteByte(byte(v))
	case Short:
		e.writeUint16(uint16(v))
	case Int:
		e.writeUint32(uint32(v))
	case Long:
		e.writeUint64(uint64(v))
	case Float:
		e.writeUint32(math.Float32bits(float32(v)))
	case Double:
		e.writeUint64(math.Float64bits(float64(v)))
	case String:
		return e.writeString(string(v))
	case ByteArray:
		if err := e.writeCount(TagByteArray, len(v)); err != nil {
			return err
		}
		for _, b := range v {
			e.buf.WriteByte(byte(b))
		}
	case IntArray:
		if err := e.writeCount(TagIntArray, len(v)); err != nil {
			return err
		}
		for _, item := range v {
			e.writeUint32(uint32(item))
		}
	case LongArray:
		if err := e.writeCount(TagLongArray, len(v)); err != nil {
			return err
		}
		for _, item := range v {
			e.writeUint64(uint64(item))
		}
	case List:
		if v.ElementType == TagEnd && len(v.Items) > 0 {
			return MalformedListError{Length: int32(len(v.Items))}
		}
		e.writeTag(v.ElementType)
		if err := e.writeCount(TagList, len(v.Items)); err != nil {
			return err
		}
		for i, item := range v.Items {
			if item == nil || item.Type() != v.ElementType {
				return fmt.Errorf(
					"list item %d does not match element type %s",
					i,
					v.ElementType,
				)
			}
			if err := e.writePayload(item); err != nil {
				return err
			}
		}
	case Compound:
		// Sort child names so that encoding is deterministic
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			child := v[name]
			if child == nil {
				return fmt.Errorf("compound entry %q has nil value", name)
			}
			e.writeTag(child.Type())
			if err := e.writeString(name); err != nil {
				return err
			}
			if err := e.writePayload(child); err != nil {
				return err
			}
		}
		e.writeTag(TagEnd)
	default:
		return fmt.Errorf("cannot encode value of type %T", v)
	}
	return nil
}
