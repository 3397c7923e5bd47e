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
)

// DecoderOptionFunc is a type that represents functions that modify the
// Decoder config
type DecoderOptionFunc func(*Decoder)

// WithByteOrder specifies the byte order used for all multi-byte scalar
// reads. The default is big-endian, the format's canonical wire order.
// Little-endian data exists in the wild (Bedrock-edition worlds)
func WithByteOrder(byteOrder binary.ByteOrder) DecoderOptionFunc {
	return func(d *Decoder) {
		d.byteOrder = byteOrder
	}
}

// WithMaxDepth specifies the maximum container nesting depth before the
// decode fails with MaxDepthExceededError
func WithMaxDepth(maxDepth int) DecoderOptionFunc {
	return func(d *Decoder) {
		d.maxDepth = maxDepth
	}
}

// WithLogger specifies an optional logger for tag dispatch tracing at
// debug level. The decoder is silent when no logger is provided
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// EncoderOptionFunc is a type that represents functions that modify the
// Encoder config
type EncoderOptionFunc func(*Encoder)

// WithEncodeByteOrder specifies the byte order used for all multi-byte
// scalar writes. The default is big-endian
func WithEncodeByteOrder(byteOrder binary.ByteOrder) EncoderOptionFunc {
	return func(e *Encoder) {
		e.byteOrder = byteOrder
	}
}
