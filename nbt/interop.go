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
	_cbor "github.com/fxamacker/cbor/v2"
)

// ToGo unwraps a decoded value tree into plain Go containers (maps,
// slices, scalars) for consumers that don't want to switch on the Value
// types
func ToGo(v Value) any {
	switch v := v.(type) {
	case Byte:
		return int8(v)
	case Short:
		return int16(v)
	case Int:
		return int32(v)
	case Long:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	case String:
		return string(v)
	case ByteArray:
		return []int8(v)
	case IntArray:
		return []int32(v)
	case LongArray:
		return []int64(v)
	case List:
		ret := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			ret = append(ret, ToGo(item))
		}
		return ret
	case Compound:
		ret := make(map[string]any, len(v))
		for name, child := range v {
			ret[name] = ToGo(child)
		}
		return ret
	default:
		return nil
	}
}

// EncodeCbor converts a decoded value tree to CBOR for interchange with
// CBOR-speaking consumers
func EncodeCbor(v Value) ([]byte, error) {
	opts := _cbor.EncOptions{
		// Make sure that maps have ordered keys
		Sort: _cbor.SortCoreDeterministic,
	}
	em, err := opts.EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(ToGo(v))
}
