// Copyright 2025 go-fastfloat Authors
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

package fast

import (
	"encoding/json"
	"fmt"
)

var (
	_ fmt.Stringer     = F64{}
	_ fmt.GoStringer   = F64{}
	_ fmt.Formatter    = F64{}
	_ json.Marshaler   = F64{}
	_ json.Unmarshaler = &F64{}
)

// String returns the text fmt.Sprint produces for the raw value. For plain
// floats that is the shortest 'g' form that round-trips at F's width; a
// named F with its own String method keeps it.
func (x Fast[F]) String() string {
	return fmt.Sprint(x.v)
}

// GoString returns the text %#v produces for the raw value.
func (x Fast[F]) GoString() string {
	return fmt.Sprintf("%#v", x.v)
}

// Format implements fmt.Formatter. Every verb, flag, width and precision
// renders exactly as it would for the raw value.
func (x Fast[F]) Format(s fmt.State, verb rune) {
	_, _ = fmt.Fprintf(s, fmt.FormatString(s, verb), x.v)
}

// MarshalJSON encodes x as a JSON number. NaN and infinities cannot be
// encoded and return an error, as they do for raw floats.
func (x Fast[F]) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.v)
}

// UnmarshalJSON decodes a JSON number into x. A JSON null leaves x
// unchanged, as it does for a raw float.
func (x *Fast[F]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &x.v)
}
