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
	"slices"
)

// DumpValueStructure generates an indented string representing a decoded
// value tree for debugging purposes
func DumpValueStructure(v Value, prefix string) string {
	var ret bytes.Buffer
	switch v := v.(type) {
	case Byte, Short, Int, Long:
		return fmt.Sprintf("%s%s: %d,\n", prefix, v.Type(), v)
	case Float, Double:
		return fmt.Sprintf("%s%s: %v,\n", prefix, v.Type(), v)
	case String:
		return fmt.Sprintf("%s%s: %q,\n", prefix, v.Type(), string(v))
	case ByteArray:
		return fmt.Sprintf("%s%s (length %d),\n", prefix, v.Type(), len(v))
	case IntArray:
		return fmt.Sprintf("%s%s (length %d),\n", prefix, v.Type(), len(v))
	case LongArray:
		return fmt.Sprintf("%s%s (length %d),\n", prefix, v.Type(), len(v))
	case List:
		ret.WriteString(
			fmt.Sprintf("%s%s of %s [\n", prefix, v.Type(), v.ElementType),
		)
		for _, item := range v.Items {
			ret.WriteString(DumpValueStructure(item, prefix+"  "))
		}
		ret.WriteString(prefix + "],\n")
	case Compound:
		ret.WriteString(fmt.Sprintf("%s%s {\n", prefix, v.Type()))
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			ret.WriteString(fmt.Sprintf("%s  %q:\n", prefix, name))
			ret.WriteString(DumpValueStructure(v[name], prefix+"    "))
		}
		ret.WriteString(prefix + "},\n")
	default:
		return fmt.Sprintf("%s<unknown> (%T),\n", prefix, v)
	}
	return ret.String()
}
