package model

import (
	"time"

	"xiuxian_game_backend/internal/gamedata"
)

// BreakthroughAttempt 突破记录，只追加不修改
// swagger:model BreakthroughAttempt
type BreakthroughAttempt struct {
	BaseModel
	CharacterID    string         `gorm:"type:varchar(36);index;not null" json:"characterId"`
	FromRealm      gamedata.Realm `gorm:"size:32;not null" json:"fromRealm"`
	ToRealm        gamedata.Realm `gorm:"size:32;not null" json:"toRealm"`
	Success        bool           `gorm:"not null" json:"success"`
	PointsRequired int64          `gorm:"not null" json:"pointsRequired"`
	AttemptedAt    time.Time      `gorm:"not null" json:"attemptedAt"`
}

func (BreakthroughAttempt) TableName() string {
	return "breakthrough_attempts"
}
