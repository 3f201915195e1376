package intake_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	intake "github.com/StanfordCorporation/intake-engine"
)

const propertySchemaJSON = `{
  "title": "Property intake",
  "sections": [
    {
      "number": 1,
      "title": "Property",
      "questions": [
        {"fieldName": "has_pool", "label": "Does the property have a pool?", "type": "radio",
         "options": [{"value": "yes", "label": "Yes"}, {"value": "no", "label": "No"}],
         "externalProperty": "property_has_pool", "required": true},
        {"fieldName": "pool_depth", "label": "Pool depth (m)", "type": "number",
         "dependsOn": {"parentField": "has_pool", "requiredValue": "yes"}, "required": true}
      ]
    },
    {
      "number": 2,
      "title": "Documents",
      "questions": [
        {"fieldName": "title_deed", "label": "Title deed", "type": "file", "maxFiles": 2, "maxFileSizeBytes": 1024}
      ]
    }
  ]
}`

func TestBuildIndex_Lookups(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(propertySchemaJSON))
	require.NoError(t, err)
	idx, err := intake.BuildIndex(sch)
	require.NoError(t, err)

	require.Equal(t, 3, idx.Len())
	require.Equal(t, []string{"has_pool", "pool_depth", "title_deed"}, idx.Fields())
	require.Equal(t, []int{1, 2}, idx.Sections())
	require.Equal(t, []string{"has_pool", "pool_depth"}, idx.SectionFields(1))
	require.Equal(t, 2, idx.SectionOf("title_deed"))
	require.Equal(t, "Pool depth (m)", idx.Label("pool_depth"))

	q, ok := idx.Question("has_pool")
	require.True(t, ok)
	require.Equal(t, intake.FieldRadio, q.Type)
	require.Equal(t, "property_has_pool", q.ExternalProperty)

	_, ok = idx.Question("missing")
	require.False(t, ok)
}

func TestBuildIndex_CachedByIdentity(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(propertySchemaJSON))
	require.NoError(t, err)

	first, err := intake.BuildIndex(sch)
	require.NoError(t, err)
	second, err := intake.BuildIndex(sch)
	require.NoError(t, err)
	require.Same(t, first, second)

	other, err := intake.LoadJSON([]byte(propertySchemaJSON))
	require.NoError(t, err)
	third, err := intake.BuildIndex(other)
	require.NoError(t, err)
	require.NotSame(t, first, third)
}

func TestBuildIndex_DuplicateField(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(`{
	  "sections": [{"number": 1, "title": "S", "questions": [
	    {"fieldName": "twice", "label": "A", "type": "text"},
	    {"fieldName": "twice", "label": "B", "type": "text"}
	  ]}]
	}`))
	require.NoError(t, err)

	_, err = intake.BuildIndex(sch)
	se, ok := intake.AsSchemaError(err)
	require.True(t, ok)
	require.Equal(t, intake.CodeDuplicateField, se.Issues[0].Code)
	require.Equal(t, "twice", se.Issues[0].Field)
}

func TestBuildIndex_UnknownParent(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(`{
	  "sections": [{"number": 1, "title": "S", "questions": [
	    {"fieldName": "child", "label": "C", "type": "text",
	     "dependsOn": {"parentField": "ghost", "requiredValue": "yes"}}
	  ]}]
	}`))
	require.NoError(t, err)

	_, err = intake.BuildIndex(sch)
	se, ok := intake.AsSchemaError(err)
	require.True(t, ok, "default policy must reject a dangling parent reference")
	require.Equal(t, intake.CodeUnknownParent, se.Issues[0].Code)

	// The legacy fallback keeps the field, always visible.
	idx, err := intake.BuildIndex(sch, intake.WithMissingParentPolicy(intake.MissingParentVisible))
	require.NoError(t, err)
	vis := intake.Visible(idx, map[string]string{})
	require.Contains(t, vis, "child")
}
