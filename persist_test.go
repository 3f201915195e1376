package intake_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	intake "github.com/StanfordCorporation/intake-engine"
)

type recordingSink struct {
	saved     map[string]string
	submitted map[string]string
	err       error
}

func (s *recordingSink) Save(_ context.Context, snap map[string]string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = snap
	return nil
}

func (s *recordingSink) Submit(_ context.Context, snap map[string]string) error {
	if s.err != nil {
		return s.err
	}
	s.submitted = snap
	return nil
}

func TestSaveAndSubmit(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(propertySchemaJSON))
	require.NoError(t, err)
	idx, err := intake.BuildIndex(sch)
	require.NoError(t, err)

	form := intake.NewForm(idx)
	require.NoError(t, form.SetField("has_pool", "yes"))
	require.NoError(t, form.SetField("pool_depth", "2"))

	sink := &recordingSink{}
	require.NoError(t, intake.Save(context.Background(), sink, form))
	require.Equal(t, map[string]string{
		"property_has_pool": "yes",
		"pool_depth":        "2",
	}, sink.saved, "snapshot uses external property names where declared")

	require.NoError(t, intake.Submit(context.Background(), sink, form))
	require.Equal(t, sink.saved, sink.submitted)
}

func TestSave_FailureRetainsState(t *testing.T) {
	sch, err := intake.LoadJSON([]byte(propertySchemaJSON))
	require.NoError(t, err)
	idx, err := intake.BuildIndex(sch)
	require.NoError(t, err)

	form := intake.NewForm(idx)
	require.NoError(t, form.SetField("has_pool", "yes"))

	cause := errors.New("crm unavailable")
	sink := &recordingSink{err: cause}

	err = intake.Save(context.Background(), sink, form)
	var pe *intake.PersistenceError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "save", pe.Op)
	require.ErrorIs(t, err, cause)

	// No user data lost: the answers are still there for a retry.
	require.Equal(t, map[string]string{"has_pool": "yes"}, form.Values())
}
