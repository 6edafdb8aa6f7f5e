package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go/format"
)

// Metadata returns the file metadata as a nested mapping. Row group and
// column chunk details are only included when includeRowGroups is set.
//
// Absent attributes are nil and empty strings are kept as-is; the mapping
// mirrors the footer rather than a display form.
func (r *Reader) Metadata(includeRowGroups bool) map[string]any {
	md := r.pqFile.Metadata()

	m := map[string]any{
		"created_by":      md.CreatedBy,
		"num_columns":     len(r.Schema()),
		"num_rows":        md.NumRows,
		"num_row_groups":  len(md.RowGroups),
		"format_version":  formatVersion(md.Version),
		"serialized_size": r.footerSize,
	}

	if includeRowGroups {
		types := r.columnTypes()
		rowGroups := make([]any, len(md.RowGroups))
		for i := range md.RowGroups {
			rowGroups[i] = rowGroupMeta(&md.RowGroups[i], types)
		}
		m["row_groups"] = rowGroups
	}

	return m
}

// formatVersion reports the footer's version field. It only tells format
// version 1 from 2.
func formatVersion(v int32) string {
	return strconv.Itoa(int(v))
}

func rowGroupMeta(rg *format.RowGroup, types map[string]columnType) map[string]any {
	columns := make([]any, len(rg.Columns))
	for i := range rg.Columns {
		columns[i] = columnChunkMeta(&rg.Columns[i], types)
	}

	sorting := make([]any, len(rg.SortingColumns))
	for i, sc := range rg.SortingColumns {
		sorting[i] = map[string]any{
			"column_index": sc.ColumnIdx,
			"descending":   sc.Descending,
			"nulls_first":  sc.NullsFirst,
		}
	}

	return map[string]any{
		"num_columns":     len(rg.Columns),
		"num_rows":        rg.NumRows,
		"total_byte_size": rg.TotalByteSize,
		"columns":         columns,
		"sorting_columns": sorting,
	}
}

func columnChunkMeta(cc *format.ColumnChunk, types map[string]columnType) map[string]any {
	md := &cc.MetaData
	path := strings.Join(md.PathInSchema, ".")
	ct, ok := types[path]
	if !ok {
		ct = columnType{physical: md.Type}
	}

	encodings := make([]any, len(md.Encoding))
	for i, e := range md.Encoding {
		encodings[i] = strings.ToUpper(fmt.Sprint(e))
	}

	var dictionaryOffset any
	if md.DictionaryPageOffset != 0 {
		dictionaryOffset = md.DictionaryPageOffset
	}

	var statistics any
	statsSet := hasStatistics(&md.Statistics)
	if statsSet {
		statistics = statisticsMeta(md, ct)
	}

	return map[string]any{
		"file_offset":             cc.FileOffset,
		"file_path":               cc.FilePath,
		"physical_type":           physicalKindName(md.Type),
		"num_values":              md.NumValues,
		"path_in_schema":          path,
		"is_stats_set":            statsSet,
		"statistics":              statistics,
		"compression":             strings.ToUpper(fmt.Sprint(md.Codec)),
		"encodings":               encodings,
		"has_dictionary_page":     dictionaryOffset != nil,
		"dictionary_page_offset":  dictionaryOffset,
		"data_page_offset":        md.DataPageOffset,
		"total_compressed_size":   md.TotalCompressedSize,
		"total_uncompressed_size": md.TotalUncompressedSize,
	}
}

func statisticsMeta(md *format.ColumnMetaData, ct columnType) map[string]any {
	st := &md.Statistics
	minRaw, maxRaw := statBounds(st)
	hasMinMax := minRaw != nil || maxRaw != nil

	var minValue, maxValue, distinct any
	if hasMinMax {
		minValue = decodeStatValue(ct, minRaw)
		maxValue = decodeStatValue(ct, maxRaw)
	}
	if st.DistinctCount > 0 {
		distinct = st.DistinctCount
	}

	return map[string]any{
		"has_min_max":    hasMinMax,
		"min":            minValue,
		"max":            maxValue,
		"null_count":     st.NullCount,
		"distinct_count": distinct,
		"num_values":     md.NumValues - st.NullCount,
		"physical_type":  physicalKindName(md.Type),
	}
}

// statBounds prefers the min_value/max_value fields over the deprecated
// min/max pair.
func statBounds(st *format.Statistics) (minRaw, maxRaw []byte) {
	if st.MinValue != nil || st.MaxValue != nil {
		return st.MinValue, st.MaxValue
	}
	return st.Min, st.Max
}

func hasStatistics(st *format.Statistics) bool {
	return st.MinValue != nil || st.MaxValue != nil ||
		st.Min != nil || st.Max != nil ||
		st.NullCount != 0 || st.DistinctCount != 0
}
