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

import "testing"

func FuzzDecode(f *testing.F) {
	// Seed corpus with valid NBT samples
	f.Add([]byte{0x0a, 0x00, 0x00, 0x00})             // empty compound
	f.Add([]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}) // empty list
	f.Add([]byte{0x01, 0x00, 0x00, 0x05})             // byte 5
	f.Add([]byte{0x02, 0x00, 0x00, 0x01, 0x02})       // short 258
	f.Add([]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07}) // int 7
	f.Add([]byte{0x08, 0x00, 0x00, 0x00, 0x02, 0x68, 0x69}) // "hi"
	f.Add(
		[]byte{0x0a, 0x00, 0x00, 0x01, 0x00, 0x01, 0x78, 0x05, 0x00},
	) // {"x": 5}
	f.Add(
		[]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x01, 0xff},
	) // byte array

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = Decode(data)
		// Should not panic - that's the test
	})
}

func FuzzUnmarshal(f *testing.F) {
	f.Fuzz(func(t *testing.T, data []byte) {
		type testStruct struct {
			Field1 int32
			Field2 []byte
			Field3 string
		}
		var result testStruct
		_ = Unmarshal(data, &result)
	})
}
