package repository

import (
	"xiuxian_game_backend/internal/model"

	"gorm.io/gorm"
)

type BreakthroughRepository struct {
	DB *gorm.DB
}

func NewBreakthroughRepository(db *gorm.DB) *BreakthroughRepository {
	return &BreakthroughRepository{DB: db}
}

func (r *BreakthroughRepository) Append(attempt *model.BreakthroughAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *BreakthroughRepository) History(characterID string, limit int) ([]model.BreakthroughAttempt, error) {
	var list []model.BreakthroughAttempt
	err := r.DB.Where("character_id = ?", characterID).
		Order("attempted_at DESC").Limit(limit).Find(&list).Error
	return list, err
}
