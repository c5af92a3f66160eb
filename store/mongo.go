// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/danielhkuo/makeurownmenu/models"
)

const submissionCollectionName = "menu_submissions"

// mongoSubmission is the stored document; menu_feedback stays a nested document
type mongoSubmission struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty"`
	Name         string              `bson:"name"`
	Email        string              `bson:"email"`
	Room         string              `bson:"room"`
	MenuFeedback models.MenuFeedback `bson:"menu_feedback"`
	CreatedAt    time.Time           `bson:"created_at"`
}

func (d mongoSubmission) toModel() models.Submission {
	return models.Submission{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Room:         d.Room,
		MenuFeedback: d.MenuFeedback,
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

// MongoStore keeps submissions in a MongoDB collection
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
	now        func() time.Time
}

// OpenMongo connects, pings and ensures the collection indexes exist
func OpenMongo(ctx context.Context, uri, database string, timeout time.Duration) (*MongoStore, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	var result bson.M
	if err := client.Database("admin").RunCommand(pingCtx, bson.D{{Key: "ping", Value: 1}}).Decode(&result); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	slog.Info("connected to MongoDB", "database", database)

	s := NewMongoStore(client, client.Database(database), timeout)
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return s, nil
}

// NewMongoStore wraps an already connected client
func NewMongoStore(client *mongo.Client, db *mongo.Database, timeout time.Duration) *MongoStore {
	return &MongoStore{
		client:     client,
		collection: db.Collection(submissionCollectionName),
		timeout:    timeout,
		now:        time.Now,
	}
}

func (s *MongoStore) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", submissionCollectionName, err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, user models.User, feedback models.MenuFeedback) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	doc := mongoSubmission{
		ID:           primitive.NewObjectID(),
		Name:         user.Name,
		Email:        user.Email,
		Room:         user.Room,
		MenuFeedback: feedback,
		// BSON datetimes carry milliseconds
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return "", storageErr("failed to insert submission", err)
	}

	return doc.ID.Hex(), nil
}

func (s *MongoStore) List(ctx context.Context, email string) ([]models.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	cursor, err := s.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, storageErr("failed to find submissions", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoSubmission
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storageErr("failed to decode submissions", err)
	}

	subs := make([]models.Submission, 0, len(docs))
	for _, d := range docs {
		subs = append(subs, d.toModel())
	}
	return subs, nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	slog.Info("disconnected from MongoDB")
	return nil
}
