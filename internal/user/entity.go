package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name               string     `gorm:"type:text;not null" json:"name"`
	Email              string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	AvatarURL          string     `gorm:"type:text" json:"avatar_url"`
	Role               string     `gorm:"type:text;not null;default:'teacher'" json:"role"`
	GoogleAccessToken  string     `gorm:"type:text" json:"-"`
	GoogleRefreshToken string     `gorm:"type:text" json:"-"`
	TokenExpiry        *time.Time `json:"-"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
