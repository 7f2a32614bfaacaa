package recordsRepo

import (
	"context"
	"errors"
	"time"

	"washly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new order record and returns its ID.
func (r *mongoOrderRecordRepo) Create(ctx context.Context, record models.OrderRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns an order record by its ID.
func (r *mongoOrderRecordRepo) GetByID(ctx context.Context, id string) (*models.OrderRecord, error) {
	var record models.OrderRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByUserID fetches all records belonging to a user, newest first.
func (r *mongoOrderRecordRepo) GetByUserID(ctx context.Context, userID string) ([]models.OrderRecord, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.OrderRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByID removes an order record by ID.
func (r *mongoOrderRecordRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("order record not found")
	}
	return nil
}
