package model

import "time"

// Session is an opaque bearer token exchanged at sign-in. Expired rows are
// swept by the cleanup schedule.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
