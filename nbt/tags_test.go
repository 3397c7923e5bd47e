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

package nbt_test

import (
	"testing"

	"github.com/blinklabs-io/gonbt/nbt"
)

func TestTagTypeValid(t *testing.T) {
	for tag := nbt.TagEnd; tag <= nbt.TagLongArray; tag++ {
		if !tag.Valid() {
			t.Fatalf("expected tag %d to be valid", tag)
		}
	}
	if nbt.TagType(13).Valid() {
		t.Fatalf("expected tag 13 to be invalid")
	}
	if nbt.TagType(0xff).Valid() {
		t.Fatalf("expected tag 0xff to be invalid")
	}
}

func TestTagTypeString(t *testing.T) {
	testDefs := map[nbt.TagType]string{
		nbt.TagEnd:       "TAG_End",
		nbt.TagByte:      "TAG_Byte",
		nbt.TagCompound:  "TAG_Compound",
		nbt.TagLongArray: "TAG_Long_Array",
		nbt.TagType(255): "TAG_Unknown(0xff)",
	}
	for tag, expected := range testDefs {
		if tag.String() != expected {
			t.Fatalf(
				"did not get expected name, got: %s, wanted: %s",
				tag.String(),
				expected,
			)
		}
	}
}

func TestValueTypes(t *testing.T) {
	testDefs := map[nbt.TagType]nbt.Value{
		nbt.TagByte:      nbt.Byte(0),
		nbt.TagShort:     nbt.Short(0),
		nbt.TagInt:       nbt.Int(0),
		nbt.TagLong:      nbt.Long(0),
		nbt.TagFloat:     nbt.Float(0),
		nbt.TagDouble:    nbt.Double(0),
		nbt.TagString:    nbt.String(""),
		nbt.TagByteArray: nbt.ByteArray{},
		nbt.TagIntArray:  nbt.IntArray{},
		nbt.TagLongArray: nbt.LongArray{},
		nbt.TagList:      nbt.List{},
		nbt.TagCompound:  nbt.Compound{},
	}
	for expected, value := range testDefs {
		if value.Type() != expected {
			t.Fatalf(
				"did not get expected tag type, got: %s, wanted: %s",
				value.Type(),
				expected,
			)
		}
	}
}
