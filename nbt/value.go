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

// Value is implemented by every decoded NBT value. There is one concrete
// type per wire tag, which lets consumers switch exhaustively on the
// decoded tree. TAG_End never appears as a user-visible value; it only
// terminates compounds and marks empty lists on the wire
type Value interface {
	Type() TagType
}

type Byte int8

func (Byte) Type() TagType { return TagByte }

type Short int16

func (Short) Type() TagType { return TagShort }

type Int int32

func (Int) Type() TagType { return TagInt }

type Long int64

func (Long) Type() TagType { return TagLong }

type Float float32

func (Float) Type() TagType { return TagFloat }

type Double float64

func (Double) Type() TagType { return TagDouble }

type String string

func (String) Type() TagType { return TagString }

type ByteArray []int8

func (ByteArray) Type() TagType { return TagByteArray }

type IntArray []int32

func (IntArray) Type() TagType { return TagIntArray }

type LongArray []int64

func (LongArray) Type() TagType { return TagLongArray }

// List is an ordered collection of unnamed payloads sharing a single
// declared element tag
type List struct {
	ElementType TagType
	Items       []Value
}

func (List) Type() TagType { return TagList }

// Compound is a collection of named, heterogeneously-typed child entries
type Compound map[string]Value

func (Compound) Type() TagType { return TagCompound }

// Get returns the child value for the given name, or nil when absent
func (c Compound) Get(name string) Value {
	return c[name]
}
