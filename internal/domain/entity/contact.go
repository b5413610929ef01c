package entity

import "time"

type ContactMessage struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Subject   string    `json:"subject,omitempty" firestore:"subject,omitempty"`
	Body      string    `json:"body" firestore:"body"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

const (
	EmailSent   = "sent"
	EmailFailed = "failed"
)

type EmailLog struct {
	ID        string    `json:"id" firestore:"id"`
	To        string    `json:"to" firestore:"to"`
	Subject   string    `json:"subject" firestore:"subject"`
	Body      string    `json:"body" firestore:"body"`
	Status    string    `json:"status" firestore:"status"`
	ErrorText string    `json:"error_text,omitempty" firestore:"errorText,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
