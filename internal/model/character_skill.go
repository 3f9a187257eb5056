package model

import "time"

// CharacterSkill 角色功法分配记录。可用技能点不落库，
// 始终按 总额-已分配 推导，避免余额漂移。
// swagger:model CharacterSkill
type CharacterSkill struct {
	BaseModel
	CharacterID     string    `gorm:"type:varchar(36);uniqueIndex:idx_character_skill;not null" json:"characterId"`
	SkillID         string    `gorm:"size:64;uniqueIndex:idx_character_skill;not null" json:"skillId"`
	SkillLevel      int       `gorm:"not null;default:0" json:"skillLevel"`
	AllocatedPoints int       `gorm:"not null;default:0" json:"allocatedPoints"`
	UnlockedAt      time.Time `gorm:"not null" json:"unlockedAt"`
	IsActive        bool      `gorm:"not null;default:true" json:"isActive"`
}

func (CharacterSkill) TableName() string {
	return "character_skills"
}
