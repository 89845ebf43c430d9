package db_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleTourist   Role = "tourist"
	RoleTourGuide Role = "tour-guide"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a raw role string onto the closed set of roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleTourist, RoleTourGuide, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
