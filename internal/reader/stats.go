package reader

import (
	"fmt"
	"strings"
)

// ColumnStats aggregates the column chunk statistics of one leaf column
// over every row group.
type ColumnStats struct {
	Path              string
	PhysicalType      string
	NumValues         int64
	NullCount         int64
	Min               any
	Max               any
	CompressedSize    int64
	UncompressedSize  int64
	HasMinMax         bool
	CompressionCodecs []string
}

// Stats returns the statistics of every leaf column, in column order.
// Min and Max are nil when no row group recorded bounds.
func (r *Reader) Stats() []ColumnStats {
	md := r.pqFile.Metadata()
	types := r.columnTypes()

	var stats []ColumnStats
	var bounds []statBoundsPair
	index := make(map[string]int)

	for _, rg := range md.RowGroups {
		for i := range rg.Columns {
			cmd := &rg.Columns[i].MetaData
			path := strings.Join(cmd.PathInSchema, ".")

			at, ok := index[path]
			if !ok {
				at = len(stats)
				index[path] = at
				stats = append(stats, ColumnStats{
					Path:         path,
					PhysicalType: physicalKindName(cmd.Type),
				})
				ct, ok := types[path]
				if !ok {
					ct = columnType{physical: cmd.Type}
				}
				bounds = append(bounds, statBoundsPair{typ: ct})
			}
			cs := &stats[at]
			b := &bounds[at]

			cs.NumValues += cmd.NumValues
			cs.NullCount += cmd.Statistics.NullCount
			cs.CompressedSize += cmd.TotalCompressedSize
			cs.UncompressedSize += cmd.TotalUncompressedSize
			cs.addCodec(strings.ToUpper(fmt.Sprint(cmd.Codec)))

			minRaw, maxRaw := statBounds(&cmd.Statistics)
			if minRaw != nil && (b.min == nil || compareStatBounds(b.typ, minRaw, b.min) < 0) {
				b.min = minRaw
			}
			if maxRaw != nil && (b.max == nil || compareStatBounds(b.typ, maxRaw, b.max) > 0) {
				b.max = maxRaw
			}
		}
	}

	for i := range stats {
		b := &bounds[i]
		if b.min != nil {
			stats[i].Min = decodeStatValue(b.typ, b.min)
		}
		if b.max != nil {
			stats[i].Max = decodeStatValue(b.typ, b.max)
		}
		stats[i].HasMinMax = b.min != nil || b.max != nil
	}

	return stats
}

// statBoundsPair holds the running raw bounds of one column.
type statBoundsPair struct {
	typ      columnType
	min, max []byte
}

func (cs *ColumnStats) addCodec(codec string) {
	for _, c := range cs.CompressionCodecs {
		if c == codec {
			return
		}
	}
	cs.CompressionCodecs = append(cs.CompressionCodecs, codec)
}
