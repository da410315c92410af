package model

import "time"

// ContactMessage is a message submitted through the public contact
// form.  Messages are stored for the support team to work through;
// the API never exposes them back to visitors.
type ContactMessage struct {
	ID        uint64    // contact_messages.id
	Name      string    // contact_messages.name
	Email     string    // contact_messages.email
	Subject   string    // contact_messages.subject
	Message   string    // contact_messages.message
	CreatedAt time.Time // contact_messages.created_at
}
