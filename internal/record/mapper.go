package record

import (
	"fmt"

	"gbif-snap/internal/gbif"
)

// citationFormat is GBIF's occurrence download citation convention.
const citationFormat = "GBIF Occurrence Download https://doi.org/10.15468/dl.%s"

// FromOccurrence projects the fixed metadata field set out of a wire
// occurrence and derives its citation string. Absent fields stay nil.
func FromOccurrence(o gbif.Occurrence) Metadata {
	media := o.Media
	if media == nil {
		media = []gbif.MediaEntry{}
	}

	return Metadata{
		GbifID:           o.GbifID,
		ScientificName:   o.ScientificName,
		Species:          o.Species,
		DecimalLatitude:  o.DecimalLatitude,
		DecimalLongitude: o.DecimalLongitude,
		Country:          o.Country,
		Locality:         o.Locality,
		EventDate:        o.EventDate,
		RecordedBy:       o.RecordedBy,
		InstitutionCode:  o.InstitutionCode,
		CollectionCode:   o.CollectionCode,
		CatalogNumber:    o.CatalogNumber,
		BasisOfRecord:    o.BasisOfRecord,
		License:          o.License,
		Publisher:        o.Publisher,
		Media:            media,
		Citation:         fmt.Sprintf(citationFormat, OccurrenceID(o.GbifID)),
		DatasetKey:       o.DatasetKey,
		PublishingOrgKey: o.PublishingOrgKey,
	}
}
