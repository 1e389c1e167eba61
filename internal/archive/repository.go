package archive

import (
	"context"
	"log"

	"gbif-snap/internal/record"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository archives metadata documents keyed by their GBIF identifier.
type Repository interface {
	UpsertByGBIFID(ctx context.Context, m *record.Metadata) (bool, error)
}

type mongoRepository struct {
	col    *mongo.Collection
	logger *log.Logger
}

func NewMongoRepository(db *mongo.Database, logger *log.Logger) (Repository, error) {
	col := db.Collection("occurrences")

	repo := &mongoRepository{
		col:    col,
		logger: logger,
	}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// ensureIndexes keeps one archived document per gbifID and makes lookups by
// scientific name cheap.
func (r *mongoRepository) ensureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gbifID", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "scientificName", Value: 1}},
		},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)

	if err != nil && r.logger != nil {
		r.logger.Printf("failed to create indexes: %v", err)
	}
	return err
}

// UpsertByGBIFID stores the metadata document, replacing any previous
// snapshot of the same occurrence. Returns true when a document was
// inserted or changed.
func (r *mongoRepository) UpsertByGBIFID(ctx context.Context, m *record.Metadata) (bool, error) {
	res, err := r.col.ReplaceOne(
		ctx,
		bson.M{"gbifID": m.GbifID},
		m,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}

	if res.UpsertedCount > 0 && r.logger != nil {
		r.logger.Printf("archived new occurrence: %s", record.OccurrenceID(m.GbifID))
	}
	return res.UpsertedCount > 0 || res.ModifiedCount > 0, nil
}
