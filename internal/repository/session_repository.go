package repository

import (
	"time"

	"xiuxian_game_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *model.CultivationSession) error {
	return r.DB.Create(s).Error
}

// CloseOpen 关闭角色当前未结束的会话
func (r *SessionRepository) CloseOpen(characterID string, end time.Time, durationMinutes, pointsGained int64) error {
	return r.DB.Model(&model.CultivationSession{}).
		Where("character_id = ? AND session_end IS NULL", characterID).
		Updates(map[string]interface{}{
			"session_end":      end,
			"duration_minutes": durationMinutes,
			"points_gained":    pointsGained,
		}).Error
}

func (r *SessionRepository) Recent(characterID string, limit int) ([]model.CultivationSession, error) {
	var list []model.CultivationSession
	err := r.DB.Where("character_id = ?", characterID).
		Order("session_start DESC").Limit(limit).Find(&list).Error
	return list, err
}
