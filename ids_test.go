package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	dashed := "67ace61a-7fd2-4ab7-8e89-2b1dc9b252e4"
	plain := "67ace61a7fd24ab78e892b1dc9b252e4"

	a, err := ParseBlockID(dashed)
	require.NoError(t, err)
	b, err := ParseBlockID(plain)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, dashed, a.String())

	again, err := ParseBlockID(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, again)

	p, err := ParsePageID(plain)
	require.NoError(t, err)
	assert.Equal(t, BlockID(p), a)
	assert.Equal(t, a, p.BlockID())
}

func TestParseIDInvalid(t *testing.T) {
	invalid := []string{
		"",
		"not-an-id",
		"67ace61a7fd24ab78e892b1dc9b252e",
		"67ace61a7fd24ab78e892b1dc9b252e4x",
	}
	for _, s := range invalid {
		_, err := ParseBlockID(s)
		assert.Error(t, err, s)
		_, err = ParseDatabaseID(s)
		assert.Error(t, err, s)
		_, err = ParseUserID(s)
		assert.Error(t, err, s)
	}

	_, err := ParseWorkspaceID("")
	assert.Error(t, err)
	_, err = ParsePropertyID("")
	assert.Error(t, err)
	_, err = ParseOptionID("")
	assert.Error(t, err)

	ws, err := ParseWorkspaceID("erics118")
	assert.NoError(t, err)
	assert.Equal(t, "erics118", ws.String())
}

func TestIDComparable(t *testing.T) {
	a := MustParseUserID("ee5f0f84-409a-440f-983a-a5315961c6e4")
	b := MustParseUserID("0c3e9826-b8f7-4f73-927d-2caaf86f1103")

	seen := map[UserID]int{a: 1, b: 2}
	assert.Equal(t, 1, seen[MustParseUserID("ee5f0f84409a440f983aa5315961c6e4")])

	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, UserID{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestIDJSON(t *testing.T) {
	id := MustParseDatabaseID("d9824bdc84454327be8b5b47500af6ce")
	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"d9824bdc-8445-4327-be8b-5b47500af6ce"`, string(data))

	var back DatabaseID
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, id, back)

	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`""`), &back))
}
