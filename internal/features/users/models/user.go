package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID `json:"id"                   gorm:"column:id;primaryKey"`
	Email                string    `json:"email"                gorm:"column:email;uniqueIndex"`
	DisplayName          string    `json:"displayName"          gorm:"column:display_name"`
	PhotoURL             string    `json:"photoUrl"             gorm:"column:photo_url"`
	HashedPassword       string    `json:"-"                    gorm:"column:hashed_password"`
	PasswordCreationTime time.Time `json:"-"                    gorm:"column:password_creation_time"`

	// Progress is the index of the last answered safety-interview question,
	// -1 until the interview has started.
	Progress      int  `json:"progress"      gorm:"column:progress;default:-1"`
	UpdatePersona bool `json:"updatePersona" gorm:"column:update_persona"`

	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// EncryptionSecret is the shared secret for the user's at-rest content.
// Journal entries and chat history are keyed off it.
func (u *User) EncryptionSecret() string {
	return u.Email
}
