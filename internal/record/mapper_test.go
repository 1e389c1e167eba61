package record

import (
	"encoding/json"
	"testing"

	"gbif-snap/internal/gbif"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64     { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestFromOccurrence_AbsentFieldsSerialiseAsNull(t *testing.T) {
	m := FromOccurrence(gbif.Occurrence{GbifID: int64Ptr(12345)})

	body, err := json.MarshalIndent(m, "", "  ")
	require.NoError(t, err)

	assert.Contains(t, string(body), `"country": null`)
	assert.Contains(t, string(body), `"scientificName": null`)
	assert.Equal(t, "GBIF Occurrence Download https://doi.org/10.15468/dl.12345", m.Citation)
}

func TestFromOccurrence_MissingIDUsesPlaceholder(t *testing.T) {
	m := FromOccurrence(gbif.Occurrence{Country: strPtr("Norway")})

	assert.Contains(t, m.Citation, "dl.unknown")
	require.NotNil(t, m.Country)
	assert.Equal(t, "Norway", *m.Country)
}

func TestFromOccurrence_MediaDefaultsToEmptyList(t *testing.T) {
	m := FromOccurrence(gbif.Occurrence{GbifID: int64Ptr(7)})

	body, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"media":[]`)
}

func TestFromOccurrence_CopiesAllFields(t *testing.T) {
	o := gbif.Occurrence{
		GbifID:           int64Ptr(42),
		ScientificName:   strPtr("Achillea millefolium L."),
		Species:          strPtr("Achillea millefolium"),
		DecimalLatitude:  floatPtr(59.91),
		DecimalLongitude: floatPtr(10.75),
		Country:          strPtr("Norway"),
		Locality:         strPtr("Oslo"),
		EventDate:        strPtr("2024-06-01T00:00:00"),
		RecordedBy:       strPtr("A. Observer"),
		InstitutionCode:  strPtr("NHM"),
		CollectionCode:   strPtr("BOT"),
		CatalogNumber:    strPtr("X-1"),
		BasisOfRecord:    strPtr("HUMAN_OBSERVATION"),
		License:          strPtr("CC_BY_4_0"),
		Publisher:        strPtr("GBIF Norway"),
		DatasetKey:       strPtr("dataset-key"),
		PublishingOrgKey: strPtr("org-key"),
		Media: []gbif.MediaEntry{
			{Identifier: "https://img.example/42.jpg", Type: "StillImage"},
		},
	}

	m := FromOccurrence(o)

	assert.Equal(t, int64(42), *m.GbifID)
	assert.Equal(t, "Achillea millefolium L.", *m.ScientificName)
	assert.Equal(t, 59.91, *m.DecimalLatitude)
	assert.Equal(t, "dataset-key", *m.DatasetKey)
	require.Len(t, m.Media, 1)
	assert.Equal(t, "https://img.example/42.jpg", m.Media[0].Identifier)
	assert.Contains(t, m.Citation, "dl.42")
}

// TestMetadata_FieldSetIsFixed pins the output shape: exactly these keys,
// never more, never fewer.
func TestMetadata_FieldSetIsFixed(t *testing.T) {
	m := FromOccurrence(gbif.Occurrence{})

	body, err := json.Marshal(m)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(body, &doc))

	want := []string{
		"gbifID", "scientificName", "species",
		"decimalLatitude", "decimalLongitude",
		"country", "locality", "eventDate", "recordedBy",
		"institutionCode", "collectionCode", "catalogNumber",
		"basisOfRecord", "license", "publisher",
		"media", "citation", "datasetKey", "publishingOrgKey",
	}

	got := make([]string, 0, len(doc))
	for k := range doc {
		got = append(got, k)
	}
	assert.ElementsMatch(t, want, got)
}

func TestOccurrenceID(t *testing.T) {
	assert.Equal(t, "12345", OccurrenceID(int64Ptr(12345)))
	assert.Equal(t, "unknown", OccurrenceID(nil))
}
