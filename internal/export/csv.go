package export

import (
	"bytes"
	"strings"

	"github.com/angelmondragon/packfinderz-admin/internal/format"
)

// CSV renders a header row plus one row per record. Every field is quoted and
// embedded quotes are doubled; rows end with "\n".
func CSV[T any](records []T, columns []Column[T], f format.Formatter) []byte {
	var buf bytes.Buffer
	writeCSVRow(&buf, Headers(columns))
	for _, row := range Rows(records, columns, f) {
		writeCSVRow(&buf, row)
	}
	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(field, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}
