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

	"github.com/blinklabs-io/gonbt/internal/test"
	"github.com/blinklabs-io/gonbt/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectCompression tests framing detection from magic bytes
func TestDetectCompression(t *testing.T) {
	assert.Equal(
		t,
		nbt.CompressionGzip,
		nbt.DetectCompression([]byte{0x1f, 0x8b, 0x08}),
	)
	assert.Equal(
		t,
		nbt.CompressionZlib,
		nbt.DetectCompression([]byte{0x78, 0x9c, 0x00}),
	)
	assert.Equal(
		t,
		nbt.CompressionZlib,
		nbt.DetectCompression([]byte{0x78, 0x01}),
	)
	// Raw NBT starts with a tag byte, which matches neither framing
	assert.Equal(
		t,
		nbt.CompressionNone,
		nbt.DetectCompression([]byte{0x0a, 0x00, 0x00}),
	)
	assert.Equal(t, nbt.CompressionNone, nbt.DetectCompression(nil))
}

// TestCompressRoundTrip tests that each framing round-trips a document
func TestCompressRoundTrip(t *testing.T) {
	raw := test.DecodeHexString("0a0000010001780500")
	for _, compression := range []nbt.Compression{
		nbt.CompressionNone,
		nbt.CompressionGzip,
		nbt.CompressionZlib,
	} {
		wrapped, err := nbt.Compress(raw, compression)
		require.NoError(t, err)
		assert.Equal(t, compression, nbt.DetectCompression(wrapped))
		unwrapped, err := nbt.Decompress(wrapped)
		require.NoError(t, err)
		assert.Equal(t, raw, unwrapped)
	}
}

// TestDecodeCompressed tests the decode entry point over framed data
func TestDecodeCompressed(t *testing.T) {
	expected := nbt.Compound{"x": nbt.Byte(5)}
	for _, compression := range []nbt.Compression{
		nbt.CompressionNone,
		nbt.CompressionGzip,
		nbt.CompressionZlib,
	} {
		data, err := nbt.EncodeCompressed("", expected, compression)
		require.NoError(t, err)
		value, err := nbt.DecodeCompressed(data)
		require.NoError(t, err)
		assert.Equal(t, expected, value)
	}
}

// TestDecompressCorrupt tests that corrupt framing surfaces an error
func TestDecompressCorrupt(t *testing.T) {
	// Valid gzip magic followed by garbage
	_, err := nbt.Decompress(
		[]byte{0x1f, 0x8b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	)
	assert.Error(t, err)
}

// TestCompressionString tests framing names
func TestCompressionString(t *testing.T) {
	assert.Equal(t, "none", nbt.CompressionNone.String())
	assert.Equal(t, "gzip", nbt.CompressionGzip.String())
	assert.Equal(t, "zlib", nbt.CompressionZlib.String())
	assert.Equal(t, "unknown(9)", nbt.Compression(9).String())
}
