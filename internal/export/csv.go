package export

import (
	"strings"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
)

// EncodeCSV serializes a record set as comma-separated text: one header row
// of the ten field names, then one row per record. Every data cell is
// double-quoted with internal quotes doubled, so any standard CSV parser
// recovers the original values.
func EncodeCSV(set domain.RecordSet) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(domain.FieldNames, ","))
	b.WriteByte('\n')

	for _, rec := range set {
		for i, v := range rec.Values() {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(v, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
