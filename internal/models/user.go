package models

import "time"

// Credential holds a user's login secret, keyed by username. The password
// field is a bcrypt hash (the salt is embedded in the hash itself); the
// plaintext is never stored. No json tags on purpose: credentials never
// leave the server.
type Credential struct {
	Username  string    `json:"-" gorm:"primaryKey;type:varchar(100)"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"-"`
}

// User is the profile record the image catalog joins against. A profile row
// is inserted in the same transaction as its credential, so every author
// reference stored on an image can be resolved.
type User struct {
	Username  string    `json:"username" gorm:"primaryKey;type:varchar(100)" validate:"required,min=3,max=100"`
	Email     string    `json:"email" gorm:"type:varchar(255)" validate:"omitempty,email"`
	CreatedAt time.Time `json:"-"`
}
