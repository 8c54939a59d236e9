package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"` //nolint:tagliatelle
	IsStaff      bool      `json:"is_staff"`  //nolint:tagliatelle
	CreatedAt    time.Time `json:"created_at"` //nolint:tagliatelle
}
