package api

import "time"

// User is the authenticated identity as the server reports it.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Letter is an unsent letter record.
type Letter struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TimeCapsule is a message sealed until its open date.
type TimeCapsule struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	OpenDate  time.Time `json:"open_date"`
	CreatedAt time.Time `json:"created_at"`
}

// UserNote is a free-writing note.
type UserNote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SoulNote is a short affirmation.
type SoulNote struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Technique is a breath-and-ground exercise.
type Technique struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	Duration     string `json:"duration"`
}
