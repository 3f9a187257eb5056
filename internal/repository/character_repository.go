package repository

import (
	"xiuxian_game_backend/internal/model"

	"gorm.io/gorm"
)

type CharacterRepository struct {
	DB *gorm.DB
}

func NewCharacterRepository(db *gorm.DB) *CharacterRepository {
	return &CharacterRepository{DB: db}
}

func (r *CharacterRepository) Create(c *model.Character) error {
	return r.DB.Create(c).Error
}

func (r *CharacterRepository) FindByID(id string) (*model.Character, error) {
	var c model.Character
	err := r.DB.Where("id = ?", id).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CharacterRepository) FindByPlayer(playerID uint) ([]model.Character, error) {
	var list []model.Character
	err := r.DB.Where("player_id = ?", playerID).
		Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *CharacterRepository) NameExists(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Character{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Updates 局部更新，调用方负责只传需要变更的字段
func (r *CharacterRepository) Updates(id string, fields map[string]interface{}) error {
	return r.DB.Model(&model.Character{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CharacterRepository) Delete(id string, playerID uint) error {
	result := r.DB.Where("id = ? AND player_id = ?", id, playerID).
		Delete(&model.Character{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RealmCount 按境界聚合的角色数
type RealmCount struct {
	Realm string `json:"realm"`
	Count int64  `json:"count"`
}

func (r *CharacterRepository) CountByRealm() ([]RealmCount, error) {
	var counts []RealmCount
	err := r.DB.Model(&model.Character{}).
		Select("realm, count(*) as count").
		Group("realm").Scan(&counts).Error
	return counts, err
}

func (r *CharacterRepository) TopByLevel(limit int) ([]model.Character, error) {
	var list []model.Character
	err := r.DB.Order("level DESC, total_experience DESC").
		Limit(limit).Find(&list).Error
	return list, err
}
