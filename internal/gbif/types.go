package gbif

// SearchResponse is the envelope returned by /v1/occurrence/search.
type SearchResponse struct {
	Offset       int          `json:"offset"`
	Limit        int          `json:"limit"`
	EndOfRecords bool         `json:"endOfRecords"`
	Count        int64        `json:"count"`
	Results      []Occurrence `json:"results"`
}

// Occurrence is one occurrence record as it arrives on the wire. GBIF omits
// any field it has no value for, so scalars are pointers: nil means the API
// never sent the field.
type Occurrence struct {
	GbifID           *int64       `json:"gbifID"`
	ScientificName   *string      `json:"scientificName"`
	Species          *string      `json:"species"`
	DecimalLatitude  *float64     `json:"decimalLatitude"`
	DecimalLongitude *float64     `json:"decimalLongitude"`
	Country          *string      `json:"country"`
	Locality         *string      `json:"locality"`
	EventDate        *string      `json:"eventDate"`
	RecordedBy       *string      `json:"recordedBy"`
	InstitutionCode  *string      `json:"institutionCode"`
	CollectionCode   *string      `json:"collectionCode"`
	CatalogNumber    *string      `json:"catalogNumber"`
	BasisOfRecord    *string      `json:"basisOfRecord"`
	License          *string      `json:"license"`
	Publisher        *string      `json:"publisher"`
	DatasetKey       *string      `json:"datasetKey"`
	PublishingOrgKey *string      `json:"publishingOrgKey"`
	Media            []MediaEntry `json:"media"`
}

// MediaEntry is one attached media resource on an occurrence. Identifier
// carries the source URL of the image.
type MediaEntry struct {
	Type         string `json:"type,omitempty" bson:"type,omitempty"`
	Format       string `json:"format,omitempty" bson:"format,omitempty"`
	Identifier   string `json:"identifier,omitempty" bson:"identifier,omitempty"`
	References   string `json:"references,omitempty" bson:"references,omitempty"`
	Created      string `json:"created,omitempty" bson:"created,omitempty"`
	Creator      string `json:"creator,omitempty" bson:"creator,omitempty"`
	Publisher    string `json:"publisher,omitempty" bson:"publisher,omitempty"`
	License      string `json:"license,omitempty" bson:"license,omitempty"`
	RightsHolder string `json:"rightsHolder,omitempty" bson:"rightsHolder,omitempty"`
}
