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

// Package nbt decodes and encodes the NBT (named binary tag) wire format.
//
// # Key Types
//
// Decoded trees are represented as a tagged union: one concrete type per
// wire tag, all implementing the Value interface:
//   - Byte, Short, Int, Long, Float, Double, String: scalar leaves
//   - ByteArray, IntArray, LongArray: fixed-width packed arrays
//   - List: ordered, homogeneously-typed sequence
//   - Compound: named, heterogeneously-typed mapping
//
// # Entry Points
//
// Decode parses an in-memory document and returns the root payload;
// DecodeNamed also returns the root name. DecodeCompressed handles the
// common gzip/zlib framing. Unmarshal maps documents onto Go structs via
// `nbt` struct tags, and Encode/Marshal provide the inverse direction.
//
// # Error Behavior
//
// Every decode is all-or-nothing: the first structural error (truncated
// input, negative count, malformed list, unknown tag, excessive nesting)
// aborts the call with a typed error and no partial tree. The single
// documented leniency is string payloads: invalid UTF-8 is repaired with
// the replacement rune instead of failing the parse.
package nbt
