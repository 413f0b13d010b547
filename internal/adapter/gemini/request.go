package gemini

import (
	"fmt"
	"strings"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
)

// GenerateContentRequest is the engine's generateContent request body.
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Content is one conversation turn in the request.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a single text fragment of a turn.
type Part struct {
	Text string `json:"text"`
}

// GenerationConfig asks the engine for schema-enforced JSON instead of free
// text, which keeps consumer-side validation thin.
type GenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// Schema is the subset of the engine's response-schema language this client
// needs: string-typed fields in arrays of objects.
type Schema struct {
	Type             string             `json:"type"`
	Items            *Schema            `json:"items,omitempty"`
	Properties       map[string]*Schema `json:"properties,omitempty"`
	Required         []string           `json:"required,omitempty"`
	PropertyOrdering []string           `json:"propertyOrdering,omitempty"`
}

// BuildRequest constructs the schema-constrained retrieval request for a
// region. Pure: the same region always yields the same request.
func BuildRequest(region string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []Content{{Parts: []Part{{Text: promptFor(region)}}}},
		GenerationConfig: GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   recordArraySchema(),
		},
	}
}

func promptFor(region string) string {
	return fmt.Sprintf(`List community hackathon programs held in or around %q.

Rules:
- Only include hackathons dated 2024 or 2025. Exclude every earlier year.
- Look up live, authoritative sources (official sites, event listings) rather than answering from memory.
- Respond with a JSON array of objects. Each object must contain exactly these fields, in this order: %s.
- Phone number fields must contain digits only.
- Email fields must contain "@".
- Set any field you cannot verify from an authoritative source to %q. Do not guess.`,
		region, strings.Join(domain.FieldNames, ", "), domain.NotAvailable)
}

// recordArraySchema mirrors domain.FieldNames so the order the engine is held
// to matches the order the exporters emit.
func recordArraySchema() *Schema {
	props := make(map[string]*Schema, len(domain.FieldNames))
	for _, name := range domain.FieldNames {
		props[name] = &Schema{Type: "STRING"}
	}
	return &Schema{
		Type: "ARRAY",
		Items: &Schema{
			Type:             "OBJECT",
			Properties:       props,
			Required:         append([]string(nil), domain.FieldNames...),
			PropertyOrdering: append([]string(nil), domain.FieldNames...),
		},
	}
}
