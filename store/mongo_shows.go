package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"venue-webapp/model"
	"venue-webapp/seed"
)

const ShowsCollectionName = "shows"

// MongoShowRepository keeps shows as documents in the "shows" collection.
// An empty collection is filled with the sample listing on first read.
type MongoShowRepository struct {
	collection *mongo.Collection
	log        zerolog.Logger
}

func NewMongoShowRepository(db *mongo.Database, log zerolog.Logger) *MongoShowRepository {
	return &MongoShowRepository{
		collection: db.Collection(ShowsCollectionName),
		log:        log.With().Str("collection", ShowsCollectionName).Logger(),
	}
}

func (r *MongoShowRepository) All(ctx context.Context) ([]model.Show, error) {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while counting shows: %w", err)
	}
	if count == 0 {
		if err := r.initializeSampleData(ctx); err != nil {
			r.log.Error().Err(err).Msg("cannot initialise sample shows")
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cur, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("server side problem occured while reading shows: %w", err)
	}
	defer cur.Close(ctx)

	shows := []model.Show{}
	if err := cur.All(ctx, &shows); err != nil {
		return nil, fmt.Errorf("server side problem occured while decoding shows: %w", err)
	}
	return shows, nil
}

func (r *MongoShowRepository) ByID(ctx context.Context, id string) (model.Show, error) {
	var show model.Show
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&show)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Show{}, fmt.Errorf("show %v: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Show{}, fmt.Errorf("server side problem occured while reading show %v: %w", id, err)
	}
	return show, nil
}

func (r *MongoShowRepository) Insert(ctx context.Context, show model.Show) error {
	_, err := r.collection.InsertOne(ctx, show)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("show %v: %w", show.Id, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("cannot insert show %v: %w", show.Id, err)
	}
	return nil
}

// Modify replaces the document only while it still matches the version that
// was read, and retries from a fresh read when another writer got there
// first.
func (r *MongoShowRepository) Modify(ctx context.Context, id string, fn func(*model.Show) error) (model.Show, error) {
	for attempt := 0; attempt < maxModifyAttempts; attempt++ {
		prior, err := r.ByID(ctx, id)
		if err != nil {
			return model.Show{}, err
		}

		filter, err := documentFilter(prior)
		if err != nil {
			return model.Show{}, err
		}

		updated := prior
		if err := fn(&updated); err != nil {
			return model.Show{}, err
		}
		updated.Id = prior.Id

		res, err := r.collection.ReplaceOne(ctx, filter, updated)
		if err != nil {
			return model.Show{}, fmt.Errorf("cannot update show %v: %w", id, err)
		}
		if res.MatchedCount == 1 {
			return updated, nil
		}
		r.log.Debug().Str("show_id", id).Int("attempt", attempt).Msg("show changed during update, retrying")
	}
	return model.Show{}, fmt.Errorf("show %v kept changing during update: %w", id, ErrConflict)
}

func (r *MongoShowRepository) Remove(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("cannot delete show %v: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("show %v: %w", id, ErrNotFound)
	}
	return nil
}

const maxModifyAttempts = 5

// documentFilter matches a show document on every stored field.
func documentFilter(show model.Show) (bson.M, error) {
	raw, err := bson.Marshal(show)
	if err != nil {
		return nil, fmt.Errorf("cannot encode show %v: %w", show.Id, err)
	}
	filter := bson.M{}
	if err := bson.Unmarshal(raw, &filter); err != nil {
		return nil, fmt.Errorf("cannot encode show %v: %w", show.Id, err)
	}
	for _, field := range []string{"created_at", "updated_at"} {
		if _, ok := filter[field]; !ok {
			filter[field] = bson.M{"$exists": false}
		}
	}
	return filter, nil
}

func (r *MongoShowRepository) initializeSampleData(ctx context.Context) error {
	shows := seed.Shows()
	docs := make([]interface{}, 0, len(shows))
	for _, show := range shows {
		docs = append(docs, show)
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return err
	}
	r.log.Info().Int("items", len(docs)).Msg("sample shows initialised")
	return nil
}
