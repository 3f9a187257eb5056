package repository

import (
	"time"

	"xiuxian_game_backend/internal/model"

	"gorm.io/gorm"
)

type PlayerRepository struct {
	DB *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{DB: db}
}

func (r *PlayerRepository) Create(player *model.Player) error {
	return r.DB.Create(player).Error
}

func (r *PlayerRepository) FindByID(id uint) (*model.Player, error) {
	var player model.Player
	err := r.DB.First(&player, id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) FindByEmail(email string) (*model.Player, error) {
	var player model.Player
	err := r.DB.Where("email = ?", email).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) FindByUsername(username string) (*model.Player, error) {
	var player model.Player
	err := r.DB.Where("username = ?", username).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *PlayerRepository) UpdateLastLogin(id uint) error {
	return r.DB.Model(&model.Player{}).Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

func (r *PlayerRepository) UpdateAvatar(id uint, url string) error {
	return r.DB.Model(&model.Player{}).Where("id = ?", id).
		Update("avatar", url).Error
}
