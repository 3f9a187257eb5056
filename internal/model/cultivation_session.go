package model

import "time"

// CultivationSession 一次在线修炼的流水记录，仅用于历史统计，
// 修为总数以角色记录为准。
// swagger:model CultivationSession
type CultivationSession struct {
	BaseModel
	CharacterID     string     `gorm:"type:varchar(36);index;not null" json:"characterId"`
	SessionStart    time.Time  `gorm:"not null" json:"sessionStart"`
	SessionEnd      *time.Time `json:"sessionEnd"`
	DurationMinutes int64      `gorm:"not null;default:0" json:"durationMinutes"`
	BaseSpeed       float64    `gorm:"not null" json:"baseSpeed"`
	FinalSpeed      float64    `gorm:"not null" json:"finalSpeed"`
	PointsGained    int64      `gorm:"not null;default:0" json:"pointsGained"`
}

func (CultivationSession) TableName() string {
	return "cultivation_sessions"
}
