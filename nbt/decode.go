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
	"encoding/binary"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"
)

// DefaultMaxDepth bounds container nesting so that malicious input cannot
// overflow the call stack. Real-world documents rarely nest more than a
// few dozen levels deep
const DefaultMaxDepth = 512

// Decoder reads NBT values from an in-memory buffer. The buffer is
// borrowed for the duration of the decode and must not be modified while
// a decode is in progress. A Decoder is not safe for concurrent use, but
// independent Decoders on independent buffers share no state
type Decoder struct {
	data      []byte
	pos       int
	byteOrder binary.ByteOrder
	maxDepth  int
	logger    *slog.Logger
}

// NewDecoder returns a Decoder over the given buffer
func NewDecoder(data []byte, opts ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		data:      data,
		byteOrder: binary.BigEndian,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode parses a complete NBT document and returns the root payload.
// The root name is consumed as part of the wire framing and discarded.
// Any failure aborts the whole decode; no partial tree is returned
func Decode(data []byte, opts ...DecoderOptionFunc) (Value, error) {
	_, ret, err := DecodeNamed(data, opts...)
	return ret, err
}

// DecodeNamed parses a complete NBT document and returns both the root
// name and the root payload
func DecodeNamed(
	data []byte,
	opts ...DecoderOptionFunc,
) (string, Value, error) {
	d := NewDecoder(data, opts...)
	rootTag, err := d.readTag()
	if err != nil {
		return "", nil, err
	}
	if !rootTag.Valid() {
		return "", nil, UnknownTagError{Tag: uint8(rootTag)}
	}
	name, err := d.readString()
	if err != nil {
		return "", nil, err
	}
	ret, err := d.decodePayload(rootTag, 0)
	if err != nil {
		return "", nil, err
	}
	return name, ret, nil
}

// Position returns the current byte position in the buffer
func (d *Decoder) Position() int {
	return d.pos
}

func (d *Decoder) remaining() int {
	return len(d.data) - d.pos
}

// readFixed returns the next n bytes in wire order. It fails before
// advancing the position when fewer than n bytes remain
func (d *Decoder) readFixed(n int) ([]byte, error) {
	if n > d.remaining() {
		return nil, TruncatedInputError{Needed: n, Remaining: d.remaining()}
	}
	ret := d.data[d.pos : d.pos+n]
	d.pos += n
	return ret, nil
}

func (d *Decoder) readTag() (TagType, error) {
	buf, err := d.readFixed(1)
	if err != nil {
		return TagEnd, err
	}
	return TagType(buf[0]), nil
}

func (d *Decoder) readInt8() (int8, error) {
	buf, err := d.readFixed(1)
	if err != nil {
		return 0, err
	}
	return int8(buf[0]), nil
}

func (d *Decoder) readUint16() (uint16, error) {
	buf, err := d.readFixed(2)
	if err != nil {
		return 0, err
	}
	return d.byteOrder.Uint16(buf), nil
}

func (d *Decoder) readInt16() (int16, error) {
	ret, err := d.readUint16()
	return int16(ret), err
}

func (d *Decoder) readInt32() (int32, error) {
	buf, err := d.readFixed(4)
	if err != nil {
		return 0, err
	}
	return int32(d.byteOrder.Uint32(buf)), nil
}

func (d *Decoder) readInt64() (int64, error) {
	buf, err := d.readFixed(8)
	if err != nil {
		return 0, err
	}
	return int64(d.byteOrder.Uint64(buf)), nil
}

func (d *Decoder) readFloat32() (float32, error) {
	buf, err := d.readFixed(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(d.byteOrder.Uint32(buf)), nil
}

func (d *Decoder) readFloat64() (float64, error) {
	buf, err := d.readFixed(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(d.byteOrder.Uint64(buf)), nil
}

// readString reads a U16 byte length followed by that many UTF-8 bytes.
// Invalid UTF-8 is repaired with the replacement rune rather than failing
// the parse. This leniency is deliberate: it favors successful decoding
// of slightly malformed legacy data over strict correctness
func (d *Decoder) readString() (string, error) {
	length, err := d.readUint16()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	buf, err := d.readFixed(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return strings.ToValidUTF8(string(buf), string(utf8.RuneError)), nil
	}
	return string(buf), nil
}

// decodePayload reads the payload for an already-consumed tag byte,
// recursing into List and Compound containers
func (d *Decoder) decodePayload(tag TagType, depth int) (Value, error) {
	if depth > d.maxDepth {
		return nil, MaxDepthExceededError{MaxDepth: d.maxDepth}
	}
	if d.logger != nil {
		d.logger.Debug(
			"decoding payload",
			"tag", tag.String(),
			"position", d.pos,
			"depth", depth,
		)
	}
	switch tag {
	case TagEnd:
		// No payload. Only reachable via the empty-list sentinel; compound
		// termination is handled before recursing
		return nil, nil
	case TagByte:
		v, err := d.readInt8()
		if err != nil {
			return nil, err
		}
		return Byte(v), nil
	case TagShort:
		v, err := d.readInt16()
		if err != nil {
			return nil, err
		}
		return Short(v), nil
	case TagInt:
		v, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		return Int(v), nil
	case TagLong:
		v, err := d.readInt64()
		if err != nil {
			return nil, err
		}
		return Long(v), nil
	case TagFloat:
		v, err := d.readFloat32()
		if err != nil {
			return nil, err
		}
		return Float(v), nil
	case TagDouble:
		v, err := d.readFloat64()
		if err != nil {
			return nil, err
		}
		return Double(v), nil
	case TagString:
		v, err := d.readString()
		if err != nil {
			return nil, err
		}
		return String(v), nil
	case TagByteArray:
		length, err := d.readArrayLength(tag, 1)
		if err != nil {
			return nil, err
		}
		buf, err := d.readFixed(int(length))
		if err != nil {
			return nil, err
		}
		ret := make(ByteArray, length)
		for i, b := range buf {
			ret[i] = int8(b)
		}
		return ret, nil
	case TagIntArray:
		length, err := d.readArrayLength(tag, 4)
		if err != nil {
			return nil, err
		}
		ret := make(IntArray, length)
		for i := range ret {
			v, err := d.readInt32()
			if err != nil {
				return nil, err
			}
			ret[i] = v
		}
		return ret, nil
	case TagLongArray:
		length, err := d.readArrayLength(tag, 8)
		if err != nil {
			return nil, err
		}
		ret := make(LongArray, length)
		for i := range ret {
			v, err := d.readInt64()
			if err != nil {
				return nil, err
			}
			ret[i] = v
		}
		return ret, nil
	case TagList:
		elemTag, err := d.readTag()
		if err != nil {
			return nil, err
		}
		length, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		if length < 0 {
			return nil, InvalidLengthError{Tag: tag, Length: length}
		}
		if elemTag == TagEnd && length > 0 {
			return nil, MalformedListError{Length: length}
		}
		// Each element occupies at least one byte, which bounds the
		// preallocation against absurd declared counts
		ret := List{
			ElementType: elemTag,
			Items:       make([]Value, 0, min(int(length), d.remaining())),
		}
		for i := int32(0); i < length; i++ {
			item, err := d.decodePayload(elemTag, depth+1)
			if err != nil {
				return nil, err
			}
			ret.Items = append(ret.Items, item)
		}
		return ret, nil
	case TagCompound:
		ret := Compound{}
		for {
			childTag, err := d.readTag()
			if err != nil {
				return nil, err
			}
			if childTag == TagEnd {
				return ret, nil
			}
			name, err := d.readString()
			if err != nil {
				return nil, err
			}
			child, err := d.decodePayload(childTag, depth+1)
			if err != nil {
				return nil, err
			}
			// The wire format places no uniqueness guarantee on sibling
			// names; a later duplicate silently overwrites an earlier one
			ret[name] = child
		}
	default:
		return nil, UnknownTagError{Tag: uint8(tag)}
	}
}

// readArrayLength reads and validates an I32 element count for the
// fixed-width array tags, checking the total byte requirement up front so
// a huge declared count fails before any allocation
func (d *Decoder) readArrayLength(
	tag TagType,
	elemWidth int,
) (int32, error) {
	length, err := d.readInt32()
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, InvalidLengthError{Tag: tag, Length: length}
	}
	if needed := int64(length) * int64(elemWidth); needed > int64(d.remaining()) {
		return 0, TruncatedInputError{
			Needed:    int(needed),
			Remaining: d.remaining(),
		}
	}
	return length, nil
}
