package bookingRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSlotFilter_ScopesToOneDateWithStock(t *testing.T) {
	id := primitive.NewObjectID()
	filter := SlotFilter(id, "2025-03-01")

	assert.Equal(t, id, filter["_id"])
	elem := filter["availableDates"].(bson.M)["$elemMatch"].(bson.M)
	assert.Equal(t, "2025-03-01", elem["date"])
	assert.Equal(t, bson.M{"$gt": 0}, elem["slots"])
	// The date must not be a top-level dotted path: that would let the
	// positional operator land on whichever entry satisfied another clause.
	_, dotted := filter["availableDates.date"]
	assert.False(t, dotted)
}

func TestSlotDecrement_PositionalByOne(t *testing.T) {
	assert.Equal(t, bson.M{"$inc": bson.M{"availableDates.$.slots": -1}}, SlotDecrement())
}
