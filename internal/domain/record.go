package domain

import "strings"

// NotAvailable is the sentinel for a field the retrieval engine could not
// verify. Missing data is always this string, never "" or an omitted key.
const NotAvailable = "Not Available"

// FieldNames lists the ten record fields in canonical schema order. The
// retrieval request schema, the validator fallback, and both exporters all
// derive their field order from this slice.
var FieldNames = []string{
	"Intern Name",
	"Community College Name",
	"Community Name",
	"Leader Name",
	"Leader Phone",
	"Leader Email",
	"Member Name",
	"Member Phone",
	"Member Email",
	"Hackathon Name",
}

// Record is one hackathon program entry returned for a region.
type Record struct {
	InternName           string `json:"Intern Name"`
	CommunityCollegeName string `json:"Community College Name"`
	CommunityName        string `json:"Community Name"`
	LeaderName           string `json:"Leader Name"`
	LeaderPhone          string `json:"Leader Phone"`
	LeaderEmail          string `json:"Leader Email"`
	MemberName           string `json:"Member Name"`
	MemberPhone          string `json:"Member Phone"`
	MemberEmail          string `json:"Member Email"`
	HackathonName        string `json:"Hackathon Name"`
}

// fields returns pointers to the field values in FieldNames order.
func (r *Record) fields() []*string {
	return []*string{
		&r.InternName,
		&r.CommunityCollegeName,
		&r.CommunityName,
		&r.LeaderName,
		&r.LeaderPhone,
		&r.LeaderEmail,
		&r.MemberName,
		&r.MemberPhone,
		&r.MemberEmail,
		&r.HackathonName,
	}
}

// Values returns the field values in FieldNames order.
func (r Record) Values() []string {
	ptrs := r.fields()
	values := make([]string, len(ptrs))
	for i, p := range ptrs {
		values[i] = *p
	}
	return values
}

// RecordFromMap builds a Record from a decoded JSON object, substituting the
// sentinel for absent or blank fields.
func RecordFromMap(m map[string]string) Record {
	var r Record
	for i, p := range r.fields() {
		v := strings.TrimSpace(m[FieldNames[i]])
		if v == "" {
			v = NotAvailable
		}
		*p = v
	}
	return r
}

// FallbackRecord is the all-sentinel record that stands in for a lookup
// completing without usable results.
func FallbackRecord() Record {
	return RecordFromMap(nil)
}

// RecordSet is the ordered collection of records for one region. A set
// produced by a completed lookup is never empty.
type RecordSet []Record

// FallbackRecordSet returns the single-record set substituted for an empty
// or unparseable retrieval result.
func FallbackRecordSet() RecordSet {
	return RecordSet{FallbackRecord()}
}

// IsFallback reports whether the set is exactly the sentinel-only fallback.
func (s RecordSet) IsFallback() bool {
	return len(s) == 1 && s[0] == FallbackRecord()
}
