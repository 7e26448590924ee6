package persistence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/fng-app/fng-sales-api/internal/domain/entity"
	domainRepo "github.com/fng-app/fng-sales-api/internal/domain/repository"
)

// MongoStore is the document-store backend: one collection of a MongoDB database.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore binds a backend to db.collection on an existing client.
// The client is owned by the caller.
func NewMongoStore(client *mongo.Client, db, collection string) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: client.Database(db).Collection(collection),
	}
}

// Name returns the backend name
func (s *MongoStore) Name() string {
	return "mongodb"
}

// Ping checks connectivity to the primary
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Insert lets MongoDB assign an ObjectID and returns its hex form
func (s *MongoStore) Insert(ctx context.Context, doc entity.Record) (string, error) {
	res, err := s.collection.InsertOne(ctx, toBSON(doc))
	if err != nil {
		return "", fmt.Errorf("failed to insert document: %w", err)
	}
	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (entity.Record, error) {
	var doc bson.M
	err := s.collection.FindOne(ctx, IDFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domainRepo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find document %s: %w", id, err)
	}
	return fromBSON(doc), nil
}

// Update applies fields with $set so fields outside the canonical shape survive
func (s *MongoStore) Update(ctx context.Context, id string, fields entity.Record) error {
	res, err := s.collection.UpdateOne(ctx, IDFilter(id), bson.M{"$set": toBSON(fields)})
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.collection.DeleteOne(ctx, IDFilter(id))
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}

func (s *MongoStore) FindAll(ctx context.Context) ([]entity.Record, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	out := make([]entity.Record, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fromBSON(doc))
	}
	return out, nil
}

// IDFilter matches a document whose legacy "id" equals id, or whose "_id" equals
// id as an ObjectID when id is valid hex and as a plain string otherwise.
func IDFilter(id string) bson.M {
	var native interface{} = id
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		native = oid
	}
	return bson.M{"$or": bson.A{
		bson.M{"id": id},
		bson.M{"_id": native},
	}}
}

// toBSON copies doc for writing. Ids are never written: MongoDB assigns "_id"
// on insert and it is immutable afterwards.
func toBSON(doc entity.Record) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" || k == "id" {
			continue
		}
		out[k] = toBSONValue(v)
	}
	return out
}

func toBSONValue(v interface{}) interface{} {
	switch t := v.(type) {
	case entity.Record:
		return toBSON(t)
	case map[string]interface{}:
		return toBSON(entity.Record(t))
	case []interface{}:
		out := make(bson.A, len(t))
		for i, e := range t {
			out[i] = toBSONValue(e)
		}
		return out
	default:
		return v
	}
}

// fromBSON converts driver types into the plain values the normalizer reads.
func fromBSON(doc bson.M) entity.Record {
	out := make(entity.Record, len(doc))
	for k, v := range doc {
		out[k] = fromBSONValue(v)
	}
	return out
}

func fromBSONValue(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		return fromBSON(t)
	case bson.D:
		out := make(entity.Record, len(t))
		for _, e := range t {
			out[e.Key] = fromBSONValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = fromBSONValue(e)
		}
		return out
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC()
	case primitive.Decimal128:
		value, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return nil
		}
		return value
	default:
		return v
	}
}
