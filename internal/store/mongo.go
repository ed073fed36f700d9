package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection  = "users"
	venuesCollection = "venues"
)

// ensureIndexes creates the indexes the storage invariants depend on. It
// runs on every successful dial; CreateOne is idempotent when the index
// already exists. Without the unique index, two concurrent registrations
// that both pass the handler's existence pre-check would both insert.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type (
	// MongoUsers is the users collection backed by the connection cache.
	MongoUsers struct {
		cache *Cache
	}

	// MongoVenues is the venues collection backed by the connection cache.
	MongoVenues struct {
		cache *Cache
	}
)

func NewMongoUsers(cache *Cache) *MongoUsers {
	return &MongoUsers{cache: cache}
}

func NewMongoVenues(cache *Cache) *MongoVenues {
	return &MongoVenues{cache: cache}
}

func (s *MongoUsers) collection(ctx context.Context) (*mongo.Collection, error) {
	h, err := s.cache.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return h.Collection(usersCollection), nil
}

func (s *MongoUsers) FindByUsername(ctx context.Context, username string) (*User, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	var u User
	err = coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUsers) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	var u User
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUsers) Insert(ctx context.Context, u *User) (*User, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	saved := *u
	if saved.ID.IsZero() {
		saved.ID = primitive.NewObjectID()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now().UTC()
	}
	if _, err := coll.InsertOne(ctx, &saved); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return &saved, nil
}

func (s *MongoVenues) collection(ctx context.Context) (*mongo.Collection, error) {
	h, err := s.cache.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return h.Collection(venuesCollection), nil
}

func (s *MongoVenues) All(ctx context.Context) ([]Venue, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []Venue
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoVenues) FindByID(ctx context.Context, id primitive.ObjectID) (*Venue, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return nil, err
	}
	var v Venue
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *MongoVenues) InsertMany(ctx context.Context, vs []Venue) error {
	if len(vs) == 0 {
		return nil
	}
	coll, err := s.collection(ctx)
	if err != nil {
		return err
	}
	docs := make([]interface{}, 0, len(vs))
	now := time.Now().UTC()
	for i := range vs {
		v := vs[i]
		if v.ID.IsZero() {
			v.ID = primitive.NewObjectID()
		}
		if v.CreatedAt.IsZero() {
			v.CreatedAt = now
		}
		docs = append(docs, &v)
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}

func (s *MongoVenues) Count(ctx context.Context) (int64, error) {
	coll, err := s.collection(ctx)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}
