package repository

import (
	"xiuxian_game_backend/internal/model"

	"gorm.io/gorm"
)

type SkillRepository struct {
	DB *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{DB: db}
}

// FindByCharacter 角色全部功法记录。不按 is_active 过滤，
// 点数账本（SumAllocated）与效果汇总必须基于同一行集
func (r *SkillRepository) FindByCharacter(characterID string) ([]model.CharacterSkill, error) {
	var list []model.CharacterSkill
	err := r.DB.Where("character_id = ?", characterID).
		Find(&list).Error
	return list, err
}

func (r *SkillRepository) FindOne(characterID, skillID string) (*model.CharacterSkill, error) {
	var cs model.CharacterSkill
	err := r.DB.Where("character_id = ? AND skill_id = ?", characterID, skillID).
		First(&cs).Error
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

func (r *SkillRepository) Create(cs *model.CharacterSkill) error {
	return r.DB.Create(cs).Error
}

func (r *SkillRepository) Update(cs *model.CharacterSkill) error {
	return r.DB.Save(cs).Error
}

// SumAllocated 角色已分配技能点合计
func (r *SkillRepository) SumAllocated(characterID string) (int, error) {
	var total int64
	err := r.DB.Model(&model.CharacterSkill{}).
		Where("character_id = ?", characterID).
		Select("COALESCE(SUM(allocated_points), 0)").
		Scan(&total).Error
	return int(total), err
}
