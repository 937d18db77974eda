package models

import "time"

type Post struct {
	ID        string    `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	MediaURL  *string   `db:"media_url" json:"media_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
