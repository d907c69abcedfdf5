package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SaveContact stores a contact form submission and returns its ID.
func (db *DB) SaveContact(ctx context.Context, name, email, subject, message string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		name, email, subject, message,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return id, nil
}
