package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User represents a registered member of the app.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`

	// --- Profile ---
	WeightKG *float64 `bson:"weightKg,omitempty" json:"weightKg,omitempty"`
	HeightCM *float64 `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	Goal     string   `bson:"goal,omitempty" json:"goal,omitempty"` // e.g. "strength", "general fitness"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate enumerates the fields a member may change about themselves.
// Nil pointers mean "leave unchanged"; clearing a field is not possible
// through this structure.
type ProfileUpdate struct {
	Name     *string  `json:"name,omitempty"`
	WeightKG *float64 `json:"weightKg,omitempty"`
	HeightCM *float64 `json:"heightCm,omitempty"`
	Goal     *string  `json:"goal,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.WeightKG == nil && p.HeightCM == nil && p.Goal == nil
}
