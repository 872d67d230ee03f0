package recordquery

import (
	"strings"
	"time"
	"unicode"
)

const (
	// Placeholder is written for missing values in exports.
	Placeholder    = "N/A"
	ContentTypeCSV = "text/csv"
)

// Column is one exported field and its header label.
type Column struct {
	Field string `json:"field" yaml:"field"`
	Label string `json:"label" yaml:"label"`
}

// ExportDelimited renders a header row plus one row per record, in input
// order. Every cell is double-quoted. Line breaks inside values (\n, \r and
// \r\n) are replaced with a single space each, so the output always has
// len(records)+1 lines; values containing line breaks therefore do not
// survive a round trip unchanged.
func ExportDelimited(records []Record, columns []Column) string {
	var b strings.Builder

	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		label := col.Label
		if label == "" {
			label = col.Field
		}
		writeQuoted(&b, label)
	}

	for _, r := range records {
		b.WriteByte('\n')
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			value, ok := ToText(r[col.Field])
			if !ok {
				value = Placeholder
			}
			writeQuoted(&b, value)
		}
	}
	return b.String()
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func writeQuoted(b *strings.Builder, value string) {
	value = lineBreaks.Replace(value)
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(value, `"`, `""`))
	b.WriteByte('"')
}

// ExportFilename follows the <entity>_export_<YYYY-MM-DD>.<ext> convention.
func ExportFilename(entity string, at time.Time, ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext == "" {
		ext = "csv"
	}

	var name strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(entity)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-':
			name.WriteRune(r)
		case unicode.IsSpace(r):
			name.WriteByte('_')
		}
	}
	if name.Len() == 0 {
		name.WriteString("records")
	}

	return name.String() + "_export_" + at.Format("2006-01-02") + "." + ext
}
