package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

// Store is the document collection gateway shared by the typed repos. Every
// write is a single atomic document operation; there are no multi-document
// transactions.
type Store struct {
	db  *mongo.Database
	log *logger.Logger
}

func NewStore(db *mongo.Database, baseLog *logger.Logger) *Store {
	return &Store{db: db, log: baseLog.With("repo", "Store")}
}

// Query shapes a read: nil Filter matches all documents, zero Limit means
// unbounded, nil Sort leaves result order unspecified.
type Query struct {
	Filter bson.M
	Sort   bson.D
	Limit  int64
}

// CreateDocument stamps created_at/updated_at (both now, UTC) on the document
// and inserts it, returning the generated id.
func CreateDocument[T types.Stamped](ctx context.Context, s *Store, collection string, doc T) (primitive.ObjectID, error) {
	doc.Stamp(time.Now().UTC())

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid, nil
}

// GetDocuments runs a filtered, optionally sorted and limited read.
func GetDocuments[T any](ctx context.Context, s *Store, collection string, q Query) ([]T, error) {
	filter := q.Filter
	if filter == nil {
		filter = bson.M{}
	}
	findOpts := options.Find()
	if q.Sort != nil {
		findOpts.SetSort(q.Sort)
	}
	if q.Limit > 0 {
		findOpts.SetLimit(q.Limit)
	}

	cur, err := s.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode from %s: %w", collection, err)
	}
	return out, nil
}

// ReplaceDocument applies update as a $set on the document with the given id,
// refreshing updated_at and preserving created_at. It returns the updated
// document, or nil when no document matched.
func ReplaceDocument[T any](ctx context.Context, s *Store, collection string, id primitive.ObjectID, update bson.M) (*T, error) {
	update["updated_at"] = time.Now().UTC()

	res := s.db.Collection(collection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("update in %s: %w", collection, err)
	}
	var doc T
	if err := res.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode from %s: %w", collection, err)
	}
	return &doc, nil
}

// DeleteDocument removes the document with the given id, reporting how many
// documents were removed (0 or 1).
func (s *Store) DeleteDocument(ctx context.Context, collection string, id primitive.ObjectID) (int64, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// DeleteDocuments removes every document matching filter; nil matches all.
func (s *Store) DeleteDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	res, err := s.db.Collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", collection, err)
	}
	return res.DeletedCount, nil
}

// CountDocuments counts documents matching filter; nil matches all.
func (s *Store) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count in %s: %w", collection, err)
	}
	return n, nil
}
