package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	// User is a registered account. The password field holds the derived
	// credential ("hashHex.saltHex"), never a plaintext, and is excluded
	// from every JSON response.
	User struct {
		ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
		Username  string             `bson:"username" json:"username"`
		Password  string             `bson:"password" json:"-"`
		Name      string             `bson:"name" json:"name"`
		Email     string             `bson:"email" json:"email"`
		CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	}

	// Venue is a bookable venue record, created by the bulk importer.
	// AdditionalMetric is a secondary capacity figure (parking spots and
	// the like) that not every venue reports.
	Venue struct {
		ID               primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
		Name             string              `bson:"name" json:"name"`
		Capacity         int                 `bson:"capacity" json:"capacity"`
		AdditionalMetric *int                `bson:"additionalMetric,omitempty" json:"additionalMetric,omitempty"`
		Phone            string              `bson:"phone" json:"phone"`
		Address          string              `bson:"address" json:"address"`
		Price            float64             `bson:"price" json:"price"`
		Email            string              `bson:"email,omitempty" json:"email,omitempty"`
		OwnerID          *primitive.ObjectID `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
		CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	}
)
