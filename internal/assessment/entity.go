package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Assessment struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentName    string         `gorm:"type:text;not null" json:"student_name"`
	Grade          string         `gorm:"type:text;not null" json:"grade"`
	Subject        string         `gorm:"type:text;not null" json:"subject"`
	Accuracy       float64        `gorm:"not null;default:0" json:"accuracy"`
	WordsPerMinute int            `gorm:"not null;default:0" json:"words_per_minute"`
	FluencyScore   int            `gorm:"not null;default:0" json:"fluency_score"`
	Result         datatypes.JSON `gorm:"type:jsonb;not null" json:"result"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
