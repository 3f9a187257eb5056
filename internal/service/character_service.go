package service

import (
	"errors"
	"strings"
	"time"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/internal/util"
	"xiuxian_game_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaxCharactersPerPlayer 每个玩家可创建的角色上限
const MaxCharactersPerPlayer = 3

type CharacterService struct {
	CharRepo    *repository.CharacterRepository
	Leaderboard *LeaderboardService
}

func NewCharacterService(charRepo *repository.CharacterRepository, leaderboard *LeaderboardService) *CharacterService {
	return &CharacterService{CharRepo: charRepo, Leaderboard: leaderboard}
}

// NewCharacter 纯构造：按宗门初始模板生成角色，不落库
func NewCharacter(playerID uint, name string, sect gamedata.Sect) *model.Character {
	stats := gamedata.InitialStats(sect)
	health, mana := gamedata.InitialResources(sect)
	now := time.Now().UTC()

	return &model.Character{
		PlayerID:          playerID,
		Name:              strings.TrimSpace(name),
		Sect:              sect,
		Realm:             gamedata.QiRefining,
		Level:             1,
		ExperienceSources: model.ExpSources{},
		CultivationSpeed:  gamedata.CultivationSpeed(sect, gamedata.QiRefining, 0),
		LastCheckpointAt:  now,

		Attack:         stats.Attack,
		Defense:        stats.Defense,
		Speed:          stats.Speed,
		CriticalRate:   stats.CriticalRate,
		CriticalDamage: stats.CriticalDamage,
		Accuracy:       stats.Accuracy,
		Evasion:        stats.Evasion,
		SpiritualPower: stats.SpiritualPower,
		Comprehension:  stats.Comprehension,
		Luck:           stats.Luck,

		Health:       health,
		MaxHealth:    health,
		Mana:         mana,
		MaxMana:      mana,
		Gold:         gamedata.BaseGold,
		SpiritStones: gamedata.BaseSpiritStones,
	}
}

// Create 创建角色：名称规则、全局唯一名、宗门合法性、角色数上限
func (s *CharacterService) Create(playerID uint, name string, sect gamedata.Sect) (*model.Character, error) {
	if err := gamedata.ValidateCharacterName(name); err != nil {
		return nil, err
	}
	if !gamedata.IsValidSect(sect) {
		return nil, errors.New("未知的宗门")
	}

	existing, err := s.CharRepo.FindByPlayer(playerID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= MaxCharactersPerPlayer {
		return nil, errors.New("角色数量已达上限")
	}

	taken, err := s.CharRepo.NameExists(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, util.ErrCharacterNameTaken
	}

	c := NewCharacter(playerID, name, sect)
	if err := s.CharRepo.Create(c); err != nil {
		return nil, err
	}

	s.Leaderboard.UpdateCharacter(c)
	logger.Log.Info("character created",
		zap.String("characterId", c.ID),
		zap.Uint("playerId", playerID),
		zap.String("sect", string(sect)))
	return c, nil
}

// Get 按ID取角色，校验归属
func (s *CharacterService) Get(characterID string, playerID uint) (*model.Character, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCharacterNotFound
		}
		return nil, err
	}
	if c.PlayerID != playerID {
		return nil, util.ErrPermissionDenied
	}
	return c, nil
}

// List 玩家名下全部角色
func (s *CharacterService) List(playerID uint) ([]model.Character, error) {
	return s.CharRepo.FindByPlayer(playerID)
}

// Delete 删除角色（软删除），仅限本人
func (s *CharacterService) Delete(characterID string, playerID uint) error {
	err := s.CharRepo.Delete(characterID, playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCharacterNotFound
		}
		return err
	}
	s.Leaderboard.Remove(characterID)
	logger.Log.Info("character deleted",
		zap.String("characterId", characterID), zap.Uint("playerId", playerID))
	return nil
}

// SectList 宗门静态信息，供创角界面展示
func (s *CharacterService) SectList() []gamedata.SectInfo {
	list := make([]gamedata.SectInfo, 0, len(gamedata.AllSects))
	for _, id := range gamedata.AllSects {
		list = append(list, gamedata.SectTable[id])
	}
	return list
}

// RealmList 境界静态表，升序
func (s *CharacterService) RealmList() []gamedata.RealmInfo {
	list := make([]gamedata.RealmInfo, 0, len(gamedata.RealmOrder))
	for _, id := range gamedata.RealmOrder {
		list = append(list, gamedata.RealmTable[id])
	}
	return list
}
