package models

import "time"

// ContactMessage is a message submitted through the contact form.
// Messages are persisted before any delivery attempt so a mail outage
// never loses them.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	Sent      bool
	CreatedAt time.Time
}
