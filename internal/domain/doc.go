// Package domain models community hackathon lookup results.
//
// # Record Schema
//
// Every hackathon entry carries the same ten string fields, always in the
// same order: intern, community college, and community names; leader and
// member contact triples (name, phone, email); and the hackathon name. The
// order is defined once in [FieldNames] and reused by the retrieval request
// schema, the validation fallback, and both export encodings, so the three
// can never disagree about column order.
//
// # Missing Data
//
// A field the retrieval engine cannot verify from an authoritative source is
// set to the [NotAvailable] sentinel. A validated record never contains an
// empty field and never omits one; absence is always the sentinel string.
// Phone fields hold digits only and email fields contain "@" when the value
// is known. Both constraints are part of the request contract with the
// engine and are accepted as returned rather than re-checked here.
//
// # Region Identity
//
// User-entered regions have two forms: the display form (input with
// surrounding whitespace trimmed, casing preserved) used for history and
// export file names, and the canonical form from [NormalizeRegion]
// (trimmed and lowercased) used only as the result cache key. "Bangalore"
// and " bangalore " therefore share one cached result but keep their own
// display spellings.
package domain
