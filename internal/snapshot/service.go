package snapshot

import (
	"context"
	"io"
	"log"
	"strings"

	"gbif-snap/internal/gbif"
	"gbif-snap/internal/record"
)

// imageExtensions is the allow-list for extensions derived from media URLs.
// Matching is case-sensitive, so an uppercase suffix falls back to jpg.
var imageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
}

const defaultExtension = "jpg"

// Store persists snapshot outputs to the filesystem.
type Store interface {
	SaveImage(id, ext string, r io.Reader) (string, error)
	SaveMetadata(id string, m record.Metadata) (string, error)
}

// Archiver mirrors archive.Repository so the service can run without Mongo.
type Archiver interface {
	UpsertByGBIFID(ctx context.Context, m *record.Metadata) (bool, error)
}

// Publisher announces saved snapshots on the message bus.
type Publisher interface {
	PublishSnapshotSaved(ctx context.Context, m *record.Metadata, imagePath string) error
}

type Service struct {
	client    gbif.Client
	store     Store
	archive   Archiver  // nil when archiving is disabled
	publisher Publisher // nil when events are disabled
	species   string
	limit     int
	logger    *log.Logger
}

func NewService(client gbif.Client, store Store, archive Archiver, publisher Publisher, species string, limit int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		client:    client,
		store:     store,
		archive:   archive,
		publisher: publisher,
		species:   species,
		limit:     limit,
		logger:    logger,
	}
}

// RunOnce performs one full snapshot pass: query the occurrence API, take
// the first record, download its first image, then write the metadata
// document. Missing data (no records, no media, no URL) is an early exit
// with an informational message, not an error.
func (s *Service) RunOnce(ctx context.Context) error {
	s.logger.Printf("querying GBIF for %s...", s.species)

	results, err := s.client.Search(ctx, s.species, s.limit)
	if err != nil {
		return err
	}
	s.logger.Printf("found %d records with images", len(results))

	if len(results) == 0 {
		s.logger.Printf("no records found for %s", s.species)
		return nil
	}

	first := results[0]
	id := record.OccurrenceID(first.GbifID)
	s.logger.Printf("processing record %s...", id)

	if len(first.Media) == 0 {
		s.logger.Println("no media found in the first record")
		return nil
	}

	imageURL := first.Media[0].Identifier
	if imageURL == "" {
		s.logger.Println("no image URL found in media")
		return nil
	}

	ext := imageExtension(imageURL)

	s.logger.Printf("downloading image from %s...", imageURL)
	body, err := s.client.FetchImage(ctx, imageURL)
	if err != nil {
		return err
	}

	imagePath, err := s.store.SaveImage(id, ext, body)
	_ = body.Close()
	if err != nil {
		return err
	}

	meta := record.FromOccurrence(first)
	metadataPath, err := s.store.SaveMetadata(id, meta)
	if err != nil {
		return err
	}

	// Supplemental sinks: failures are logged, never fatal.
	if s.archive != nil {
		if changed, err := s.archive.UpsertByGBIFID(ctx, &meta); err != nil {
			s.logger.Printf("archive upsert failed for %s: %v", id, err)
		} else if changed {
			s.logger.Printf("archived metadata for record %s", id)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishSnapshotSaved(ctx, &meta, imagePath); err != nil {
			s.logger.Printf("failed publishing snapshot %s: %v", id, err)
		}
	}

	s.logger.Printf("successfully processed record %s", id)
	s.logger.Printf("  image: %s", imagePath)
	s.logger.Printf("  metadata: %s", metadataPath)
	return nil
}

// imageExtension derives a file extension from the trailing dot-segment of
// imageURL, dropping anything after a '?'. Unrecognised suffixes, including
// uppercase variants of allowed ones, fall back to jpg.
func imageExtension(imageURL string) string {
	parts := strings.Split(imageURL, ".")
	ext := parts[len(parts)-1]
	if i := strings.IndexByte(ext, '?'); i >= 0 {
		ext = ext[:i]
	}
	if !imageExtensions[ext] {
		return defaultExtension
	}
	return ext
}
