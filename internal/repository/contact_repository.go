package repository

import (
	"context"
	"database/sql"

	"github.com/cargonova/logistics-api/internal/model"
)

// ContactRepo stores messages submitted through the public contact
// form.
//
// Schema:
//
//	CREATE TABLE contact_messages (
//	    id         BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
//	    name       VARCHAR(128)  NOT NULL,
//	    email      VARCHAR(255)  NOT NULL,
//	    subject    VARCHAR(255)  NOT NULL,
//	    message    TEXT          NOT NULL,
//	    created_at TIMESTAMP     NOT NULL DEFAULT CURRENT_TIMESTAMP
//	);
type ContactRepo struct {
	db *sql.DB
}

// NewContactRepo constructs a ContactRepo with the provided DB handle.
func NewContactRepo(db *sql.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

// Insert stores a new contact message and populates the generated ID.
func (r *ContactRepo) Insert(ctx context.Context, m *model.ContactMessage) error {
	const q = `INSERT INTO contact_messages (name, email, subject, message) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Email, m.Subject, m.Message)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}
