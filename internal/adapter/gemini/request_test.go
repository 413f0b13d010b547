package gemini

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
)

func TestBuildRequest_Deterministic(t *testing.T) {
	a := BuildRequest("Bangalore")
	b := BuildRequest("Bangalore")
	assert.Empty(t, cmp.Diff(a, b))
}

func TestBuildRequest_SchemaMatchesFieldOrder(t *testing.T) {
	req := BuildRequest("Pune")

	schema := req.GenerationConfig.ResponseSchema
	require.NotNil(t, schema)
	assert.Equal(t, "ARRAY", schema.Type)

	items := schema.Items
	require.NotNil(t, items)
	assert.Equal(t, "OBJECT", items.Type)
	assert.Equal(t, domain.FieldNames, items.Required)
	assert.Equal(t, domain.FieldNames, items.PropertyOrdering)

	require.Len(t, items.Properties, len(domain.FieldNames))
	for _, name := range domain.FieldNames {
		prop, ok := items.Properties[name]
		require.True(t, ok, "missing property %q", name)
		assert.Equal(t, "STRING", prop.Type)
	}
}

func TestBuildRequest_RequestsStructuredJSON(t *testing.T) {
	req := BuildRequest("Pune")
	assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)
}

func TestBuildRequest_PromptRules(t *testing.T) {
	req := BuildRequest("Kochi")
	require.Len(t, req.Contents, 1)
	require.Len(t, req.Contents[0].Parts, 1)

	prompt := req.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, `"Kochi"`)
	assert.Contains(t, prompt, "2024 or 2025")
	assert.Contains(t, prompt, "digits only")
	assert.Contains(t, prompt, `"@"`)
	assert.Contains(t, prompt, domain.NotAvailable)
	assert.Contains(t, prompt, "Do not guess")
}
