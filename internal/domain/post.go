package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a piece of premium content (e.g. a paid training program).
// The actual media lives in object storage under MediaObjectKey; access is
// granted by a succeeded PremiumPayment for (Post.PostID, user).
type Post struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID           string             `bson:"postId" json:"postId"` // public identifier, unique
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	PriceAmount      float64            `bson:"priceAmount" json:"priceAmount"`    // major units, e.g. 9.99
	MediaObjectKey   string             `bson:"mediaObjectKey,omitempty" json:"-"` // storage key, internal use
	MediaContentType string             `bson:"mediaContentType,omitempty" json:"mediaContentType,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
