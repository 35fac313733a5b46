package inquiry

import (
	"context"
	"fmt"
	"time"

	"seven18/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists inquiry lead records.
type Repository struct {
	collection *mongo.Collection
}

// NewRepository returns a repository backed by the "inquiries" collection.
// A nil client yields a nil repository; callers treat that as the lead
// log being disabled.
func NewRepository(client *mongo.Client) *Repository {
	if client == nil {
		return nil
	}
	return &Repository{
		collection: client.Database("seven18").Collection("inquiries"),
	}
}

// Insert stores a new inquiry record.
func (r *Repository) Insert(ctx context.Context, record models.InquiryRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert inquiry record: %w", err)
	}
	return nil
}

// GetByID fetches a single inquiry record.
func (r *Repository) GetByID(ctx context.Context, id string) (*models.InquiryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.InquiryRecord
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, fmt.Errorf("fetch inquiry record: %w", err)
	}
	return &record, nil
}

// ListRecent returns the most recent inquiry records, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int64) ([]models.InquiryRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list inquiry records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.InquiryRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode inquiry records: %w", err)
	}
	return records, nil
}
