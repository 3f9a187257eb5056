package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"xiuxian_game_backend/internal/gamedata"
)

// ExpSources 经验来源统计，JSON列
type ExpSources map[string]int64

func (s ExpSources) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *ExpSources) Scan(value interface{}) error {
	if value == nil {
		*s = ExpSources{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for ExpSources")
	}
	if len(b) == 0 {
		*s = ExpSources{}
		return nil
	}
	return json.Unmarshal(b, s)
}

// swagger:model Character
type Character struct {
	UUIDBase
	PlayerID uint           `gorm:"index;not null" json:"playerId"`
	Name     string         `gorm:"size:100;unique;not null" json:"name"`
	Sect     gamedata.Sect  `gorm:"type:enum('sword','lightning','medical','defense');not null" json:"sect"`
	Realm    gamedata.Realm `gorm:"size:32;not null;default:'qi_refining'" json:"realm"`

	// 进度
	Level             int        `gorm:"not null;default:1" json:"level"`
	TotalExperience   int64      `gorm:"not null;default:0" json:"totalExperience"`
	ExperienceSources ExpSources `gorm:"type:json" json:"experienceSources"`
	CultivationPoints int64      `gorm:"not null;default:0" json:"cultivationPoints"`
	CultivationSpeed  float64    `gorm:"not null;default:1" json:"cultivationSpeed"` // 派生缓存值

	// 修炼会话
	IsCultivating        bool       `gorm:"not null;default:false" json:"isCultivating"`
	SessionStartAt       *time.Time `json:"sessionStartAt"`
	LastCheckpointAt     time.Time  `gorm:"not null" json:"lastCheckpointAt"` // 单调不减
	TotalCultivationTime int64      `gorm:"not null;default:0" json:"totalCultivationTime"` // 分钟

	// 战斗属性
	Attack         int     `gorm:"not null" json:"attack"`
	Defense        int     `gorm:"not null" json:"defense"`
	Speed          int     `gorm:"not null" json:"speed"`
	CriticalRate   float64 `gorm:"not null" json:"criticalRate"`
	CriticalDamage float64 `gorm:"not null" json:"criticalDamage"`
	Accuracy       float64 `gorm:"not null" json:"accuracy"`
	Evasion        float64 `gorm:"not null" json:"evasion"`
	SpiritualPower int     `gorm:"not null" json:"spiritualPower"`
	Comprehension  int     `gorm:"not null" json:"comprehension"`
	Luck           int     `gorm:"not null" json:"luck"`

	// 资源
	Health       int   `gorm:"not null" json:"health"`
	MaxHealth    int   `gorm:"not null" json:"maxHealth"`
	Mana         int   `gorm:"not null" json:"mana"`
	MaxMana      int   `gorm:"not null" json:"maxMana"`
	Gold         int64 `gorm:"not null;default:0" json:"gold"`
	SpiritStones int64 `gorm:"not null;default:0" json:"spiritStones"`
}

func (Character) TableName() string {
	return "characters"
}
