package bookingRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotFilter matches the test only if one array entry has exactly this date
// and at least one slot left. $elemMatch ties both conditions to the same
// entry, so the positional operator in SlotDecrement targets that entry.
func SlotFilter(testID primitive.ObjectID, date string) bson.M {
	return bson.M{
		"_id": testID,
		"availableDates": bson.M{
			"$elemMatch": bson.M{
				"date":  date,
				"slots": bson.M{"$gt": 0},
			},
		},
	}
}

// SlotDecrement takes exactly one slot from the entry matched by SlotFilter.
func SlotDecrement() bson.M {
	return bson.M{"$inc": bson.M{"availableDates.$.slots": -1}}
}
