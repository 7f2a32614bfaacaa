package recordsRepo

import (
	"context"

	"washly/database"
	"washly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRecordRepository persists submitted orders for the history view.
type OrderRecordRepository interface {
	Create(ctx context.Context, record models.OrderRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.OrderRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.OrderRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoOrderRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRecordRepo returns a Mongo-backed order record repository.
func NewMongoOrderRecordRepo() OrderRecordRepository {
	coll := database.MongoClient.Database("washly").Collection("order_records")
	return &mongoOrderRecordRepo{coll: coll}
}
