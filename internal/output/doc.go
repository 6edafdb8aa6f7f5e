// Package output converts tabular results and metadata mappings into text.
//
// # Tabular Output
//
// Render takes any Relation and a Format and returns the encoded text:
//
//   - pretty: the relation's own table rendering
//   - csv: header row plus one line per record
//   - json: a single array of objects
//   - jsonl: one object per line
//
// Object keys and CSV columns follow Relation.Columns. Scalar types are
// kept as the relation produced them, so integers stay integers in JSON.
//
//	text, err := output.Render(rel, output.FormatJSONL)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(text)
//
// The CSV and JSON formatters can also be used directly against an
// io.Writer through the Formatter interface.
//
// # Metadata Output
//
// EncodeMeta writes a map[string]any as indented JSON, TOML or YAML.
// TOML has no null, so mappings with missing values go through Sanitize
// first, which replaces "", nil and empty maps with the string "NONE":
//
//	text, err := output.EncodeMeta(output.Sanitize(meta), output.FormatTOML)
package output
