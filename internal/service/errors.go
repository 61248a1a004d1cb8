package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cross-cutting error taxonomy. Handlers map these to HTTP statuses:
// validation -> 400, upstream -> 502, persistence -> 500. Not-found lookups
// are generally turned into empty results by the services themselves rather
// than surfaced as errors.
var (
	ErrValidation  = errors.New("validation failed")
	ErrUpstream    = errors.New("upstream service call failed")
	ErrPersistence = errors.New("persistence failed")
)

func parseUserID(userID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, ErrValidation
	}
	return id, nil
}
