package intake_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	intake "github.com/StanfordCorporation/intake-engine"
)

func TestDependencyGraph_CycleFailsAtBuild(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(`{
	  "sections": [{"number": 1, "title": "S", "questions": [
	    {"fieldName": "x", "label": "X", "type": "text",
	     "dependsOn": {"parentField": "y", "requiredValue": "a"}},
	    {"fieldName": "y", "label": "Y", "type": "text",
	     "dependsOn": {"parentField": "x", "requiredValue": "b"}}
	  ]}]
	}`))
	require.NoError(t, err)

	_, err = intake.BuildIndex(sch)
	se, ok := intake.AsSchemaError(err)
	require.True(t, ok, "cycle must surface at build time, not at resolve time")
	require.Equal(t, intake.CodeCycle, se.Issues[0].Code)
}

func TestDependencyGraph_SelfDependency(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(`{
	  "sections": [{"number": 1, "title": "S", "questions": [
	    {"fieldName": "loop", "label": "L", "type": "text",
	     "dependsOn": {"parentField": "loop", "requiredValue": "x"}}
	  ]}]
	}`))
	require.NoError(t, err)

	_, err = intake.BuildIndex(sch)
	se, ok := intake.AsSchemaError(err)
	require.True(t, ok)
	require.Equal(t, intake.CodeSelfDependency, se.Issues[0].Code)
}

func TestDependencyGraph_EdgesAndChildren(t *testing.T) {
	idx := chainIndex(t)
	g := idx.Graph()

	e, ok := g.Edge("flood_claims")
	require.True(t, ok)
	require.Equal(t, intake.Edge{Child: "flood_claims", Parent: "flood_zone", RequiredValue: "yes"}, e)

	_, ok = g.Edge("flood_zone")
	require.False(t, ok, "non-conditional fields carry no edge")

	require.Equal(t, []string{"flood_claims"}, g.ChildrenOf("flood_zone"))
	require.Equal(t, []string{"flood_payout"}, g.ChildrenOf("flood_claims"))
	require.Empty(t, g.ChildrenOf("flood_payout"))
	require.Len(t, g.Edges(), 2)
}
