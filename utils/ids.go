package utils

import "go.mongodb.org/mongo-driver/bson/primitive"

// ParseObjectID converts a hex id from a path or query into an ObjectID.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, Wrap(ErrInvalidID, err)
	}
	return id, nil
}
