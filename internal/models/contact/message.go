package models

import "time"

type ContactMessage struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	ClientIP  string    `json:"clientIp" db:"client_ip"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
