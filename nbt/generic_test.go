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
	"errors"
	"testing"

	"github.com/blinklabs-io/gonbt/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genericObject struct {
	nbt.DecodeStoreNbt
	Level int32
	Label string
}

func (g *genericObject) UnmarshalNBT(v nbt.Value) error {
	// A custom unmarshaler that DecodeGeneric must bypass
	return errors.New("custom unmarshaler should not be called")
}

func (g *genericObject) MarshalNBT() (nbt.Value, error) {
	return nil, errors.New("custom marshaler should not be called")
}

// TestDecodeGeneric tests that DecodeGeneric bypasses UnmarshalNBT and
// preserves the original wire bytes
func TestDecodeGeneric(t *testing.T) {
	data, err := nbt.Encode("", nbt.Compound{
		"Level": nbt.Int(42),
		"Label": nbt.String("spawn"),
	})
	require.NoError(t, err)
	var obj genericObject
	// The custom unmarshaler errors, so a plain Unmarshal must fail
	assert.Error(t, nbt.Unmarshal(data, &obj))
	// The generic path bypasses it
	require.NoError(t, nbt.DecodeGeneric(data, &obj))
	assert.Equal(t, int32(42), obj.Level)
	assert.Equal(t, "spawn", obj.Label)
	assert.Equal(t, data, obj.Nbt())
}

// TestEncodeGeneric tests that EncodeGeneric bypasses MarshalNBT
func TestEncodeGeneric(t *testing.T) {
	obj := genericObject{
		Level: 7,
		Label: "nether",
	}
	// The custom marshaler errors, so a plain Marshal must fail
	_, err := nbt.Marshal("", &obj)
	assert.Error(t, err)
	// The generic path bypasses it
	data, err := nbt.EncodeGeneric("", &obj)
	require.NoError(t, err)
	value, err := nbt.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, nbt.Compound{
		"Level": nbt.Int(7),
		"Label": nbt.String("nether"),
	}, value)
}

// TestDecodeGenericNonStruct tests input validation
func TestDecodeGenericNonStruct(t *testing.T) {
	var dest int
	assert.Error(t, nbt.DecodeGeneric([]byte{0x0a, 0x00, 0x00, 0x00}, &dest))
}
