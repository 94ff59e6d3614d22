package source

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// DefaultMongoCollection is the collection used by the Mongo backend.
const DefaultMongoCollection = "conlang_documents"

// MongoCollection defines the collection methods used by Mongo.
// *mongo.Collection satisfies it.
type MongoCollection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	ReplaceOne(ctx context.Context, filter any, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error)
}

type mongoDocument struct {
	Key       string    `bson:"_id"`
	Body      []byte    `bson:"body"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo stores documents keyed by _id.
type Mongo struct {
	coll MongoCollection
	now  func() time.Time
}

// NewMongo returns a Mongo backend over coll.
func NewMongo(coll MongoCollection) *Mongo {
	return &Mongo{coll: coll, now: time.Now}
}

// NewMongoFromDatabase uses DefaultMongoCollection in db.
func NewMongoFromDatabase(db *mongo.Database) *Mongo {
	return NewMongo(db.Collection(DefaultMongoCollection))
}

func (m *Mongo) Read(ctx context.Context, key string) ([]byte, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	var doc mongoDocument
	if err := m.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound(key, nil)
		}
		if ctxErr := contextError(err, "find document"); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("find document %s: %w", key, err)
	}
	return doc.Body, nil
}

func (m *Mongo) Keys(ctx context.Context, prefix string) ([]string, error) {
	filter := bson.D{}
	if prefix != "" {
		filter = bson.D{{Key: "_id", Value: bson.D{{Key: "$regex", Value: "^" + regexp.QuoteMeta(prefix)}}}}
	}
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 1}}).
		SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find keys: %w", err)
	}
	var docs []mongoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("find keys: %w", err)
	}

	keys := make([]string, 0, len(docs))
	for _, d := range docs {
		keys = append(keys, d.Key)
	}
	return keys, nil
}

func (m *Mongo) Write(ctx context.Context, key string, data []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	doc := mongoDocument{Key: key, Body: data, UpdatedAt: m.now().UTC()}
	_, err = m.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: key}}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Join(ErrWriteFailed, fmt.Errorf("%s: %w", key, err))
	}
	return nil
}
