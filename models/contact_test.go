package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactPatch_Apply_OnlyNonNilFields(t *testing.T) {
	original := Contact{
		ID:          "c-1",
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@x.io",
		LastContact: "2024-01-01",
		Company:     "Acme",
	}
	email := "jane@acme.io"
	company := ""

	got := ContactPatch{Email: &email, Company: &company}.Apply(original)

	assert.Equal(t, "c-1", got.ID)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "jane@acme.io", got.Email)
	assert.Equal(t, "", got.Company)
	assert.Equal(t, "2024-01-01", got.LastContact)
}

func TestContactPatch_IsEmpty(t *testing.T) {
	assert.True(t, ContactPatch{}.IsEmpty())

	name := "x"
	assert.False(t, ContactPatch{Notes: &name}.IsEmpty())
}

func TestContactFields_Patch_CoversEveryField(t *testing.T) {
	fields := ContactFields{
		FirstName: "a", LastName: "b", Email: "c@d.e", LastContact: "2024-02-02",
		Phone: "1", Company: "2", Occupation: "3", Birthday: "1990-01-01", Notes: "4",
	}

	got := fields.Patch().Apply(Contact{ID: "id"})

	assert.Equal(t, "id", got.ID)
	assert.Equal(t, fields, got.Fields())
}

func TestContactPatch_JSONHasNoImageOrID(t *testing.T) {
	var patch ContactPatch
	err := json.Unmarshal([]byte(`{"id":"evil","image":"blob-1","firstName":"Ann"}`), &patch)
	require.NoError(t, err)

	require.NotNil(t, patch.FirstName)
	assert.Equal(t, "Ann", *patch.FirstName)

	raw, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "image")
	assert.NotContains(t, string(raw), "evil")
}

func TestContact_JSONShape(t *testing.T) {
	img := "http://host/api/files/1"
	raw, err := json.Marshal(Contact{ID: "1", FirstName: "A", LastName: "B", Email: "a@b.c", LastContact: "2024-01-01", Image: &img})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "A", m["firstName"])
	assert.Equal(t, "2024-01-01", m["lastContact"])
	assert.Equal(t, img, m["image"])
	_, hasPhone := m["phone"]
	assert.False(t, hasPhone)
}

func TestSortDirection_Next(t *testing.T) {
	assert.Equal(t, SortAscending, SortNone.Next())
	assert.Equal(t, SortDescending, SortAscending.Next())
	assert.Equal(t, SortNone, SortDescending.Next())
	assert.Equal(t, SortAscending, SortDirection("").Next())
}

func TestAppBuildInfo_DefaultsAndPrint(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "  ")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())

	var buf bytes.Buffer
	info.Print(&buf)
	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo
	assert.Equal(t, "N/A", info.BuildVersion())
}
