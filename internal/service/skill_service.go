package service

import (
	"errors"
	"time"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/internal/util"

	"gorm.io/gorm"
)

type SkillService struct {
	CharRepo  *repository.CharacterRepository
	SkillRepo *repository.SkillRepository
}

func NewSkillService(charRepo *repository.CharacterRepository, skillRepo *repository.SkillRepository) *SkillService {
	return &SkillService{
		CharRepo:  charRepo,
		SkillRepo: skillRepo,
	}
}

// SkillPointsInfo 技能点视图。available 永远按账本推导，不信任任何存量字段
type SkillPointsInfo struct {
	Available   int                        `json:"available"`
	TotalEarned int                        `json:"totalEarned"`
	Sources     gamedata.SkillPointSources `json:"sources"`
}

// AvailablePoints 纯计算：总额 - 已分配
func AvailablePoints(level int, realm gamedata.Realm, allocated int) int {
	return gamedata.TotalSkillPoints(level, realm) - allocated
}

func (s *SkillService) GetSkillPoints(characterID string) (*SkillPointsInfo, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}
	allocated, err := s.SkillRepo.SumAllocated(characterID)
	if err != nil {
		return nil, err
	}
	return &SkillPointsInfo{
		Available:   AvailablePoints(c.Level, c.Realm, allocated),
		TotalEarned: gamedata.TotalSkillPoints(c.Level, c.Realm),
		Sources:     gamedata.ApproximateSources(c.Level, c.Realm),
	}, nil
}

// SkillEffects 功法效果汇总：各属性加法加成 + 修炼速度加成
type SkillEffects struct {
	StatBonuses           map[gamedata.StatType]float64 `json:"statBonuses"`
	CultivationSpeedBonus float64                       `json:"cultivationSpeedBonus"`
}

// AggregateSkillEffects 纯计算：对每个已解锁且等级>0的功法，
// 按 基础值 + 每级值 × 等级 汇总
func AggregateSkillEffects(sect gamedata.Sect, skills []model.CharacterSkill) SkillEffects {
	effects := SkillEffects{StatBonuses: map[gamedata.StatType]float64{}}
	for _, cs := range skills {
		if cs.SkillLevel == 0 {
			continue
		}
		def, ok := gamedata.SkillByID(sect, cs.SkillID)
		if !ok {
			continue
		}
		for _, effect := range def.Effects {
			total := effect.Value + effect.ValuePerLevel*float64(cs.SkillLevel)
			switch effect.Type {
			case gamedata.EffectStatBonus:
				effects.StatBonuses[effect.StatType] += total
			case gamedata.EffectCultivationSpeed:
				effects.CultivationSpeedBonus += total
			}
		}
	}
	return effects
}

func (s *SkillService) CalculateEffects(characterID string) (*SkillEffects, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}
	skills, err := s.SkillRepo.FindByCharacter(characterID)
	if err != nil {
		return nil, err
	}
	effects := AggregateSkillEffects(c.Sect, skills)
	return &effects, nil
}

// UnlockSkill 解锁功法（0级，未分配点数）。解锁条件不满足时返回结构化原因。
func (s *SkillService) UnlockSkill(characterID, skillID string) (*model.CharacterSkill, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	def, ok := gamedata.SkillByID(c.Sect, skillID)
	if !ok {
		return nil, util.ErrSkillNotFound
	}

	if _, err := s.SkillRepo.FindOne(characterID, skillID); err == nil {
		return nil, util.ErrSkillAlreadyUnlocked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unlocked, err := s.unlockedIDs(characterID)
	if err != nil {
		return nil, err
	}
	if !gamedata.CanUnlockSkill(def, c.Level, c.Realm, unlocked) {
		return nil, util.ErrSkillRequirementsUnmet
	}

	cs := &model.CharacterSkill{
		CharacterID: characterID,
		SkillID:     skillID,
		SkillLevel:  0,
		UnlockedAt:  time.Now().UTC(),
		IsActive:    true,
	}
	if err := s.SkillRepo.Create(cs); err != nil {
		return nil, err
	}
	return cs, nil
}

// UpgradeOutcome 升级结果
type UpgradeOutcome struct {
	Skill          *model.CharacterSkill `json:"skill"`
	Cost           int                   `json:"cost"`
	AvailableAfter int                   `json:"availableAfter"`
	NewSpeed       float64               `json:"newSpeed"`
}

// CheckUpgrade 纯校验：功法升一级的全部前置条件。
// 依次检查已解锁、未满级、点数充足、解锁条件仍满足，
// 任何一项不通过即返回对应哨兵错误，不产生任何变更。
func CheckUpgrade(def gamedata.SectSkill, cs *model.CharacterSkill, level int, realm gamedata.Realm, available int, unlocked []string) error {
	if cs == nil {
		return util.ErrSkillLocked
	}
	if cs.SkillLevel >= def.MaxLevel {
		return util.ErrSkillMaxLevel
	}
	if available < gamedata.TierCost(def.Tier) {
		return util.ErrSkillPointsInsufficient
	}
	if !gamedata.CanUnlockSkill(def, level, realm, unlocked) {
		return util.ErrSkillRequirementsUnmet
	}
	return nil
}

// UpgradeSkill 功法升一级。校验全部通过才产生变更。
func (s *SkillService) UpgradeSkill(characterID, skillID string) (*UpgradeOutcome, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	def, ok := gamedata.SkillByID(c.Sect, skillID)
	if !ok {
		return nil, util.ErrSkillNotFound
	}

	cs, err := s.SkillRepo.FindOne(characterID, skillID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cs = nil
	}

	cost := gamedata.TierCost(def.Tier)
	allocated, err := s.SkillRepo.SumAllocated(characterID)
	if err != nil {
		return nil, err
	}
	available := AvailablePoints(c.Level, c.Realm, allocated)

	unlocked, err := s.unlockedIDs(characterID)
	if err != nil {
		return nil, err
	}
	if err := CheckUpgrade(def, cs, c.Level, c.Realm, available, unlocked); err != nil {
		return nil, err
	}

	cs.SkillLevel++
	cs.AllocatedPoints += cost
	if err := s.SkillRepo.Update(cs); err != nil {
		return nil, err
	}

	// 功法可能改变修炼速度，重算派生缓存
	skills, err := s.SkillRepo.FindByCharacter(characterID)
	if err != nil {
		return nil, err
	}
	effects := AggregateSkillEffects(c.Sect, skills)
	newSpeed := gamedata.CultivationSpeed(c.Sect, c.Realm, effects.CultivationSpeedBonus)
	if newSpeed != c.CultivationSpeed {
		if err := s.CharRepo.Updates(characterID, map[string]interface{}{"cultivation_speed": newSpeed}); err != nil {
			return nil, err
		}
	}

	return &UpgradeOutcome{
		Skill:          cs,
		Cost:           cost,
		AvailableAfter: available - cost,
		NewSpeed:       newSpeed,
	}, nil
}

// SkillNode 功法树节点视图
type SkillNode struct {
	gamedata.SectSkill
	CurrentLevel    int  `json:"currentLevel"`
	AllocatedPoints int  `json:"allocatedPoints"`
	Unlocked        bool `json:"unlocked"`
	CanUnlock       bool `json:"canUnlock"`
}

// GetSkillTree 角色宗门功法树及解锁状态
func (s *SkillService) GetSkillTree(characterID string) ([]SkillNode, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}
	skills, err := s.SkillRepo.FindByCharacter(characterID)
	if err != nil {
		return nil, err
	}

	owned := make(map[string]model.CharacterSkill, len(skills))
	unlocked := make([]string, 0, len(skills))
	for _, cs := range skills {
		owned[cs.SkillID] = cs
		unlocked = append(unlocked, cs.SkillID)
	}

	tree := gamedata.SkillTrees[c.Sect]
	nodes := make([]SkillNode, 0, len(tree))
	for _, def := range tree {
		node := SkillNode{SectSkill: def}
		if cs, ok := owned[def.ID]; ok {
			node.Unlocked = true
			node.CurrentLevel = cs.SkillLevel
			node.AllocatedPoints = cs.AllocatedPoints
		} else {
			node.CanUnlock = gamedata.CanUnlockSkill(def, c.Level, c.Realm, unlocked)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (s *SkillService) unlockedIDs(characterID string) ([]string, error) {
	skills, err := s.SkillRepo.FindByCharacter(characterID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(skills))
	for _, cs := range skills {
		ids = append(ids, cs.SkillID)
	}
	return ids, nil
}
