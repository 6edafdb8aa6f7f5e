package reader

import (
	"bytes"
	"cmp"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/parquet-go/parquet-go/deprecated"
	"github.com/parquet-go/parquet-go/format"
)

// ErrNotUTF8 is returned by DecodeText for byte strings that are not valid
// UTF-8.
var ErrNotUTF8 = errors.New("not valid UTF-8")

// binaryPrefix marks values that could not be decoded as text and were
// base64 encoded instead.
const binaryPrefix = "base64:"

// DecodeText decodes raw metadata bytes as UTF-8 text.
func DecodeText(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %d bytes", ErrNotUTF8, len(b))
	}
	return string(b), nil
}

// textOrBinary decodes b as text, falling back to a prefixed base64 form.
func textOrBinary(b []byte) string {
	s, err := DecodeText(b)
	if err != nil {
		return binaryPrefix + base64.StdEncoding.EncodeToString(b)
	}
	return s
}

// columnType is what value decoding needs to know about a leaf column.
type columnType struct {
	physical format.Type
	// unsigned integer annotation on INT32/INT64.
	unsigned bool
	// byte array without a text annotation.
	binary bool
}

func columnTypeOf(el *format.SchemaElement) columnType {
	ct := columnType{}
	if el.Type != nil {
		ct.physical = *el.Type
	}

	lt := el.LogicalType
	var conv deprecated.ConvertedType = -1
	if el.ConvertedType != nil {
		conv = *el.ConvertedType
	}

	switch ct.physical {
	case format.Int32, format.Int64:
		if lt != nil && lt.Integer != nil {
			ct.unsigned = !lt.Integer.IsSigned
		} else {
			switch conv {
			case deprecated.Uint8, deprecated.Uint16, deprecated.Uint32, deprecated.Uint64:
				ct.unsigned = true
			}
		}
	case format.ByteArray, format.FixedLenByteArray:
		text := lt != nil && (lt.UTF8 != nil || lt.Enum != nil || lt.Json != nil)
		switch conv {
		case deprecated.UTF8, deprecated.Enum, deprecated.Json:
			text = true
		}
		ct.binary = !text
	}
	return ct
}

// convertValue maps a value read by parquet-go to the type its column
// declares: unsigned integers become uint32/uint64 and binary values go
// through DecodeText with a base64 fallback.
func (ct columnType) convertValue(v any) any {
	switch x := v.(type) {
	case int32:
		if ct.unsigned {
			return uint32(x)
		}
	case int64:
		if ct.unsigned {
			return uint64(x)
		}
	case string:
		if ct.binary {
			return textOrBinary([]byte(x))
		}
	case []byte:
		if ct.binary {
			return textOrBinary(x)
		}
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ct.convertValue(e)
		}
		return out
	}
	return v
}

// decodeStatValue decodes a plain-encoded statistics value of the given
// column. Values with an unexpected width are returned hex encoded.
func decodeStatValue(ct columnType, b []byte) any {
	switch ct.physical {
	case format.Boolean:
		if len(b) == 1 {
			return b[0] != 0
		}
	case format.Int32:
		if len(b) == 4 {
			if ct.unsigned {
				return binary.LittleEndian.Uint32(b)
			}
			return int32(binary.LittleEndian.Uint32(b))
		}
	case format.Int64:
		if len(b) == 8 {
			if ct.unsigned {
				return binary.LittleEndian.Uint64(b)
			}
			return int64(binary.LittleEndian.Uint64(b))
		}
	case format.Float:
		if len(b) == 4 {
			return math.Float32frombits(binary.LittleEndian.Uint32(b))
		}
	case format.Double:
		if len(b) == 8 {
			return math.Float64frombits(binary.LittleEndian.Uint64(b))
		}
	case format.ByteArray, format.FixedLenByteArray:
		return textOrBinary(b)
	}
	return hex.EncodeToString(b)
}

// compareStatBounds orders two raw statistics values of the same column.
// Byte arrays compare as unsigned bytes, everything else by decoded value.
func compareStatBounds(ct columnType, a, b []byte) int {
	switch ct.physical {
	case format.ByteArray, format.FixedLenByteArray:
		return bytes.Compare(a, b)
	}
	return compareStatValues(decodeStatValue(ct, a), decodeStatValue(ct, b))
}

// compareStatValues orders two numeric or boolean values produced by
// decodeStatValue for the same column. Values of different kinds compare
// equal.
func compareStatValues(a, b any) int {
	switch x := a.(type) {
	case bool:
		if y, ok := b.(bool); ok && x != y {
			if !x {
				return -1
			}
			return 1
		}
	case int32:
		if y, ok := b.(int32); ok {
			return cmp.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmp.Compare(x, y)
		}
	case uint32:
		if y, ok := b.(uint32); ok {
			return cmp.Compare(x, y)
		}
	case uint64:
		if y, ok := b.(uint64); ok {
			return cmp.Compare(x, y)
		}
	case float32:
		if y, ok := b.(float32); ok {
			return cmp.Compare(x, y)
		}
	case float64:
		if y, ok := b.(float64); ok {
			return cmp.Compare(x, y)
		}
	}
	return 0
}
