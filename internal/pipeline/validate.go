package pipeline

import (
	"encoding/json"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
)

// Validate parses the engine's raw payload into a RecordSet. An unparseable
// payload or an empty array yields the single all-sentinel record, so a
// completed lookup never produces an empty set. Phone and email formats are
// accepted as returned; their shape is the engine's side of the request
// contract.
func Validate(raw []byte) domain.RecordSet {
	var rows []map[string]string
	if err := json.Unmarshal(raw, &rows); err != nil || len(rows) == 0 {
		return domain.FallbackRecordSet()
	}

	set := make(domain.RecordSet, 0, len(rows))
	for _, row := range rows {
		set = append(set, domain.RecordFromMap(row))
	}
	return set
}
