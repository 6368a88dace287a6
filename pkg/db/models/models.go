// Package models holds the GORM rows of the local store. Table names match
// the goose migrations in pkg/migrate.
package models

import "time"

// TokenSlot holds one profile's token pair.
type TokenSlot struct {
	Profile      string `gorm:"primaryKey"`
	AccessToken  string
	RefreshToken string
	UpdatedAt    time.Time
}

func (TokenSlot) TableName() string { return "token_slots" }

// FlashMessage is a read-once notice carried to the next command.
type FlashMessage struct {
	Profile   string `gorm:"primaryKey"`
	Message   string
	CreatedAt time.Time
}

func (FlashMessage) TableName() string { return "flash_messages" }

type CompletedModule struct {
	Profile     string `gorm:"primaryKey"`
	ModuleID    string `gorm:"primaryKey"`
	CompletedAt time.Time
}

func (CompletedModule) TableName() string { return "completed_modules" }

type QuizAnswer struct {
	Profile    string `gorm:"primaryKey"`
	ModuleID   string `gorm:"primaryKey"`
	QuestionID string `gorm:"primaryKey"`
	Answer     int
	UpdatedAt  time.Time
}

func (QuizAnswer) TableName() string { return "quiz_answers" }

// LocalEvent is a user-created event kept only on this machine.
type LocalEvent struct {
	ID          string `gorm:"primaryKey"`
	Profile     string `gorm:"index"`
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	CreatedAt   time.Time
}

func (LocalEvent) TableName() string { return "local_events" }
