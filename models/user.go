package models

import (
	"time"
)

// User carries both identity and session state. SessionToken and
// UpdateToken are nil when the user has no active session; the unique
// indexes only apply to non-NULL values, so any number of users can be
// logged out at once.
type User struct {
	ID                uint    `gorm:"primaryKey"`
	Email             string  `gorm:"uniqueIndex;not null"`
	PasswordHash      string  `gorm:"not null"`
	SessionToken      *string `gorm:"uniqueIndex"`
	UpdateToken       *string `gorm:"uniqueIndex"`
	SessionExpiration time.Time

	Workouts    []Workout    `gorm:"foreignKey:UserID"`
	Friends     []*User      `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID"`
	HealthFiles []HealthFile `gorm:"foreignKey:UserID"`
}

// VerifySessionToken reports whether token matches the stored session
// token and the session has not yet expired.
func (u *User) VerifySessionToken(token string, now time.Time) bool {
	return u.SessionToken != nil && *u.SessionToken == token && now.Before(u.SessionExpiration)
}

func (u *User) SimpleSerialize() map[string]interface{} {
	return map[string]interface{}{
		"id":    u.ID,
		"email": u.Email,
	}
}

// Serialize includes one level of children as simple views. Workouts and
// Friends must be preloaded by the caller.
func (u *User) Serialize() map[string]interface{} {
	workouts := make([]map[string]interface{}, 0, len(u.Workouts))
	for i := range u.Workouts {
		workouts = append(workouts, u.Workouts[i].SimpleSerialize())
	}
	friends := make([]map[string]interface{}, 0, len(u.Friends))
	for _, f := range u.Friends {
		friends = append(friends, f.SimpleSerialize())
	}
	return map[string]interface{}{
		"id":       u.ID,
		"email":    u.Email,
		"workouts": workouts,
		"friends":  friends,
	}
}
