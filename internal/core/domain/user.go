package domain

import "time"

// UserID is the opaque identity of an authenticated user.
type UserID string

type User struct {
	ID           UserID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserSummary is the public view of a user embedded in project and task responses.
type UserSummary struct {
	ID    UserID
	Name  string
	Email string
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
