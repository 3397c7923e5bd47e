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
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Compression identifies the outer framing around an encoded document.
// Documents in the wild are usually gzip-wrapped (region files use zlib)
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionGzip Compression = 1
	CompressionZlib Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZlib:
		return "zlib"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// DetectCompression sniffs the compression framing from the leading magic
// bytes. Data that matches neither framing is assumed to be raw NBT
func DetectCompression(data []byte) Compression {
	if len(data) >= 2 {
		if data[0] == 0x1f && data[1] == 0x8b {
			return CompressionGzip
		}
		// zlib CMF byte for deflate with a 32K window, followed by one of
		// the defined FLG check values
		if data[0] == 0x78 {
			switch data[1] {
			case 0x01, 0x5e, 0x9c, 0xda:
				return CompressionZlib
			}
		}
	}
	return CompressionNone
}

// Decompress unwraps any gzip or zlib framing. Unframed data is returned
// unchanged without a copy
func Decompress(data []byte) ([]byte, error) {
	switch DetectCompression(data) {
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		ret, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return ret, nil
	case CompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		defer r.Close()
		ret, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		return ret, nil
	default:
		return data, nil
	}
}

// Compress wraps an encoded document in the given framing
func Compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return buf.Bytes(), nil
	case CompressionZlib:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %d", compression)
	}
}

// DecodeCompressed unwraps any compression framing and decodes the
// resulting document, discarding the root name
func DecodeCompressed(data []byte, opts ...DecoderOptionFunc) (Value, error) {
	raw, err := Decompress(data)
	if err != nil {
		return nil, err
	}
	return Decode(raw, opts...)
}

// EncodeCompressed encodes the named root value and wraps it in the given
// compression framing
func EncodeCompressed(
	name string,
	v Value,
	compression Compression,
	opts ...EncoderOptionFunc,
) ([]byte, error) {
	raw, err := Encode(name, v, opts...)
	if err != nil {
		return nil, err
	}
	return Compress(raw, compression)
}
