package record

import (
	"strconv"

	"gbif-snap/internal/gbif"
)

// Metadata is the document written alongside each downloaded image. The
// field set is fixed: fields absent from the occurrence serialise as null
// rather than being dropped, so consumers can rely on the shape. Media is
// always a list, empty when the record carried none.
type Metadata struct {
	GbifID           *int64            `json:"gbifID" bson:"gbifID"`
	ScientificName   *string           `json:"scientificName" bson:"scientificName"`
	Species          *string           `json:"species" bson:"species"`
	DecimalLatitude  *float64          `json:"decimalLatitude" bson:"decimalLatitude"`
	DecimalLongitude *float64          `json:"decimalLongitude" bson:"decimalLongitude"`
	Country          *string           `json:"country" bson:"country"`
	Locality         *string           `json:"locality" bson:"locality"`
	EventDate        *string           `json:"eventDate" bson:"eventDate"`
	RecordedBy       *string           `json:"recordedBy" bson:"recordedBy"`
	InstitutionCode  *string           `json:"institutionCode" bson:"institutionCode"`
	CollectionCode   *string           `json:"collectionCode" bson:"collectionCode"`
	CatalogNumber    *string           `json:"catalogNumber" bson:"catalogNumber"`
	BasisOfRecord    *string           `json:"basisOfRecord" bson:"basisOfRecord"`
	License          *string           `json:"license" bson:"license"`
	Publisher        *string           `json:"publisher" bson:"publisher"`
	Media            []gbif.MediaEntry `json:"media" bson:"media"`
	Citation         string            `json:"citation" bson:"citation"`
	DatasetKey       *string           `json:"datasetKey" bson:"datasetKey"`
	PublishingOrgKey *string           `json:"publishingOrgKey" bson:"publishingOrgKey"`
}

// OccurrenceID renders the numeric identifier for citations and file names.
// Records without one get the literal placeholder "unknown".
func OccurrenceID(id *int64) string {
	if id == nil {
		return "unknown"
	}
	return strconv.FormatInt(*id, 10)
}
