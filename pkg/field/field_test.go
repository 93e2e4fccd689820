// Copyright (c) 2026 LUME Studio. All rights reserved.
// Author: contact@lume.studio

package field_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumestudio/lume-api/pkg/field"
)

type patch struct {
	Name  field.Field[string] `json:"name,omitzero"`
	Email field.Field[string] `json:"email,omitzero"`
}

/*
TestField_UnmarshalDistinguishesNullFromAbsent verifies the core overlay
invariant: a key carrying null and a missing key decode to different states.
*/
func TestField_UnmarshalDistinguishesNullFromAbsent(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &p))

	assert.True(t, p.Name.IsClear())
	assert.False(t, p.Name.IsSet())
	assert.True(t, p.Email.IsZero())
}

func TestField_UnmarshalValue(t *testing.T) {
	var p patch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane"}`), &p))

	v, ok := p.Name.Get()
	assert.True(t, ok)
	assert.Equal(t, "Jane", v)
}

/*
TestField_MarshalRoundTrip verifies that all three states survive a
write/read cycle: set serializes the value, cleared serializes null, and
unset drops the key entirely.
*/
func TestField_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(patch{
		Name: field.Clear[string](),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null}`, string(out))

	out, err = json.Marshal(patch{
		Name: field.Set("Jane"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane"}`, string(out))

	var back patch
	require.NoError(t, json.Unmarshal(out, &back))
	assert.True(t, back.Name.IsSet())
	assert.True(t, back.Email.IsZero())
}

func TestField_Or(t *testing.T) {
	// Unset falls through to the base value.
	assert.Equal(t, "base", field.Field[string]{}.Or("base"))

	// Cleared drops the base value, never falls through.
	assert.Equal(t, "", field.Clear[string]().Or("base"))

	// Set replaces the base value.
	assert.Equal(t, "new", field.Set("new").Or("base"))
}

func TestField_Ptr(t *testing.T) {
	base := "base"

	assert.Equal(t, &base, field.Field[string]{}.Ptr(&base))
	assert.Nil(t, field.Clear[string]().Ptr(&base))

	got := field.Set("new").Ptr(&base)
	require.NotNil(t, got)
	assert.Equal(t, "new", *got)
}
