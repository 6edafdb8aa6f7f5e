package reader

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go/deprecated"
	"github.com/parquet-go/parquet-go/format"
)

// ColumnInfo describes one leaf column of a parquet schema.
type ColumnInfo struct {
	Name               string
	Path               string
	PhysicalType       string
	LogicalType        string
	ConvertedType      string
	Length             *int32
	Precision          *int32
	Scale              *int32
	MaxDefinitionLevel int
	MaxRepetitionLevel int

	typ columnType
}

// SchemaColumns is the column order of ColumnInfo.Row.
var SchemaColumns = []string{
	"name",
	"path",
	"physical_type",
	"logical_type",
	"converted_type",
	"length",
	"precision",
	"scale",
	"max_definition_level",
	"max_repetition_level",
}

// Row returns the column as a record keyed by SchemaColumns. Unset
// attributes are nil.
func (c ColumnInfo) Row() map[string]any {
	return map[string]any{
		"name":                 c.Name,
		"path":                 c.Path,
		"physical_type":        c.PhysicalType,
		"logical_type":         optionalString(c.LogicalType),
		"converted_type":       optionalString(c.ConvertedType),
		"length":               optionalInt(c.Length),
		"precision":            optionalInt(c.Precision),
		"scale":                optionalInt(c.Scale),
		"max_definition_level": c.MaxDefinitionLevel,
		"max_repetition_level": c.MaxRepetitionLevel,
	}
}

func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalInt(p *int32) any {
	if p == nil {
		return nil
	}
	return *p
}

// KeyValue is one entry of the footer's key/value metadata.
type KeyValue struct {
	Key   string
	Value string
}

// Schema returns the leaf columns of the file in column order.
//
// Nested groups are flattened: leaf paths use dot notation (e.g.
// "address.street") and the definition and repetition levels account for
// every optional or repeated ancestor.
func (r *Reader) Schema() []ColumnInfo {
	elements := r.pqFile.Metadata().Schema
	if len(elements) == 0 {
		return nil
	}

	// elements[0] is the root message.
	var infos []ColumnInfo
	walkSchema(elements, 1, int(elements[0].NumChildren), nil, 0, 0, &infos)
	return infos
}

// walkSchema consumes the subtrees of n consecutive siblings starting at
// elements[i] and returns the index following the last of them.
func walkSchema(elements []format.SchemaElement, i, n int, path []string, def, rep int, infos *[]ColumnInfo) int {
	for ; n > 0 && i < len(elements); n-- {
		el := elements[i]
		i++

		fieldPath := append(path[:len(path):len(path)], el.Name)
		fieldDef, fieldRep := def, rep
		if el.RepetitionType != nil {
			switch *el.RepetitionType {
			case format.Optional:
				fieldDef++
			case format.Repeated:
				fieldDef++
				fieldRep++
			}
		}

		if el.NumChildren > 0 {
			i = walkSchema(elements, i, int(el.NumChildren), fieldPath, fieldDef, fieldRep, infos)
			continue
		}

		*infos = append(*infos, ColumnInfo{
			Name:               el.Name,
			Path:               strings.Join(fieldPath, "."),
			PhysicalType:       physicalTypeName(el.Type),
			LogicalType:        logicalTypeName(el.LogicalType),
			ConvertedType:      convertedTypeName(el),
			Length:             el.TypeLength,
			Precision:          el.Precision,
			Scale:              el.Scale,
			MaxDefinitionLevel: fieldDef,
			MaxRepetitionLevel: fieldRep,
			typ:                columnTypeOf(&el),
		})
	}
	return i
}

// columnTypes returns the type of every leaf column keyed by its dotted
// path.
func (r *Reader) columnTypes() map[string]columnType {
	columns := r.Schema()
	types := make(map[string]columnType, len(columns))
	for _, c := range columns {
		types[c.Path] = c.typ
	}
	return types
}

// SchemaMetadata returns the footer key/value metadata in file order.
func (r *Reader) SchemaMetadata() []KeyValue {
	kvs := r.pqFile.Metadata().KeyValueMetadata
	out := make([]KeyValue, len(kvs))
	for i, kv := range kvs {
		out[i] = KeyValue{Key: kv.Key, Value: kv.Value}
	}
	return out
}

// physicalTypeName returns the physical type name of a schema element.
func physicalTypeName(t *format.Type) string {
	if t == nil {
		return "GROUP"
	}
	return physicalKindName(*t)
}

func physicalKindName(t format.Type) string {
	switch t {
	case format.Boolean:
		return "BOOLEAN"
	case format.Int32:
		return "INT32"
	case format.Int64:
		return "INT64"
	case format.Int96:
		return "INT96"
	case format.Float:
		return "FLOAT"
	case format.Double:
		return "DOUBLE"
	case format.ByteArray:
		return "BYTE_ARRAY"
	case format.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// logicalTypeName returns the logical type name, or "" when unset.
func logicalTypeName(lt *format.LogicalType) string {
	if lt == nil {
		return ""
	}
	return lt.String()
}

// convertedTypeName returns the legacy converted type name, or "" when
// unset.
func convertedTypeName(el format.SchemaElement) string {
	if el.ConvertedType == nil {
		return ""
	}
	switch ct := *el.ConvertedType; ct {
	case deprecated.UTF8:
		return "UTF8"
	case deprecated.Map:
		return "MAP"
	case deprecated.MapKeyValue:
		return "MAP_KEY_VALUE"
	case deprecated.List:
		return "LIST"
	case deprecated.Enum:
		return "ENUM"
	case deprecated.Decimal:
		return "DECIMAL"
	case deprecated.Date:
		return "DATE"
	case deprecated.TimeMillis:
		return "TIME_MILLIS"
	case deprecated.TimeMicros:
		return "TIME_MICROS"
	case deprecated.TimestampMillis:
		return "TIMESTAMP_MILLIS"
	case deprecated.TimestampMicros:
		return "TIMESTAMP_MICROS"
	case deprecated.Uint8:
		return "UINT_8"
	case deprecated.Uint16:
		return "UINT_16"
	case deprecated.Uint32:
		return "UINT_32"
	case deprecated.Uint64:
		return "UINT_64"
	case deprecated.Int8:
		return "INT_8"
	case deprecated.Int16:
		return "INT_16"
	case deprecated.Int32:
		return "INT_32"
	case deprecated.Int64:
		return "INT_64"
	case deprecated.Json:
		return "JSON"
	case deprecated.Bson:
		return "BSON"
	case deprecated.Interval:
		return "INTERVAL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", ct)
	}
}
