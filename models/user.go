package models

import "time"

// User is an account record. Password holds the bcrypt hash and is never
// serialized to JSON.
type User struct {
	UserID    string    `json:"userId" bson:"userId"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Role      string    `json:"role" bson:"role"` // "user" or "admin"
	LastLogin time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SafeView returns the fields exposed on auth responses.
func (u User) SafeView() map[string]any {
	return map[string]any{
		"id":    u.UserID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}
