package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GuideApplication is terminal on decision: accepting or rejecting deletes
// the document, so the only persisted status is "pending".
type GuideApplication struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Title     string             `bson:"title" json:"title"`
	Reason    string             `bson:"reason" json:"reason"`
	CVLink    string             `bson:"cvLink" json:"cvLink"`
	Status    string             `bson:"status" json:"status"`
	AppliedAt time.Time          `bson:"appliedAt" json:"appliedAt"`
}
