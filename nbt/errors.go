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
	"fmt"
)

// TruncatedInputError is returned when a read would consume bytes past the
// end of the input buffer
type TruncatedInputError struct {
	Needed    int
	Remaining int
}

func (e TruncatedInputError) Error() string {
	return fmt.Sprintf(
		"truncated input: need %d byte(s), %d remaining",
		e.Needed,
		e.Remaining,
	)
}

// InvalidLengthError is returned when a declared array or list count is
// negative
type InvalidLengthError struct {
	Tag    TagType
	Length int32
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid %s length: %d", e.Tag, e.Length)
}

// MalformedListError is returned when a list declares the End element tag
// together with a non-zero count. A zero-length list may legitimately use
// the End element tag as an empty-list sentinel
type MalformedListError struct {
	Length int32
}

func (e MalformedListError) Error() string {
	return fmt.Sprintf(
		"malformed list: element tag %s with count %d",
		TagEnd,
		e.Length,
	)
}

// UnknownTagError is returned when a tag byte does not correspond to any
// defined tag type. It carries the offending byte value
type UnknownTagError struct {
	Tag uint8
}

func (e UnknownTagError) Error() string {
	return fmt.Sprintf("unknown tag: 0x%02x (%d)", e.Tag, e.Tag)
}

// MaxDepthExceededError is returned when the nesting depth of the input
// exceeds the decoder's configured maximum
type MaxDepthExceededError struct {
	MaxDepth int
}

func (e MaxDepthExceededError) Error() string {
	return fmt.Sprintf("maximum nesting depth exceeded: %d", e.MaxDepth)
}
