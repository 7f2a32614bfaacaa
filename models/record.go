package models

import "time"

// OrderRecord is the persisted trace of a successfully submitted order.
type OrderRecord struct {
	ID          string               `bson:"id" json:"id"`
	UserID      string               `bson:"user_id" json:"user_id"`
	StoreID     string               `bson:"store_id" json:"store_id"`
	ServiceType string               `bson:"service_type" json:"service_type"`
	TotalAmount float64              `bson:"total_amount" json:"total_amount"`
	CheckoutURL string               `bson:"checkout_url" json:"checkout_url"`
	Payload     OrderCreationPayload `bson:"payload" json:"payload"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
}
