package models

import "time"

// Subscriber is a newsletter signup.
type Subscriber struct {
	Email        string    `json:"email" bson:"email"`
	SubscribedAt time.Time `json:"subscribedAt" bson:"subscribedAt"`
}
