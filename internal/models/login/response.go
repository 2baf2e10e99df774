package models

import "time"

type LoginResponse struct {
	Token         string    `json:"token"`
	ExpiresAt     time.Time `json:"expiresAt"`
	FirebaseToken string    `json:"firebaseToken,omitempty"`
}
