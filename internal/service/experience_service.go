package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/internal/util"
	"xiuxian_game_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 经验来源标识
const (
	ExpSourceCultivation  = "cultivation"
	ExpSourceBreakthrough = "breakthrough"
	ExpSourceDailyLogin   = "daily_login"
)

type ExperienceService struct {
	CharRepo    *repository.CharacterRepository
	Leaderboard *LeaderboardService
	Redis       *redis.Client
}

func NewExperienceService(charRepo *repository.CharacterRepository, leaderboard *LeaderboardService, rdb *redis.Client) *ExperienceService {
	return &ExperienceService{
		CharRepo:    charRepo,
		Leaderboard: leaderboard,
		Redis:       rdb,
	}
}

// MilestoneHit 本次升级触发的里程碑
type MilestoneHit struct {
	Level   int                      `json:"level"`
	Rewards gamedata.MilestoneReward `json:"rewards"`
}

// LevelUpRewards 升级奖励汇总
type LevelUpRewards struct {
	StatsIncrease  int            `json:"statsIncrease"`
	HealthIncrease int            `json:"healthIncrease"`
	ManaIncrease   int            `json:"manaIncrease"`
	GoldBonus      int64          `json:"goldBonus"`
	SkillPoints    int            `json:"skillPoints"`
	Milestones     []MilestoneHit `json:"milestones,omitempty"`
}

// ExpAwardOutcome 经验发放结果。已达境界上限时 Rejected=true 且不产生任何变更
type ExpAwardOutcome struct {
	Rejected        bool           `json:"rejected"`
	Reason          string         `json:"reason,omitempty"`
	ExpGained       int64          `json:"expGained"`
	NewLevel        int            `json:"newLevel"`
	LevelsGained    int            `json:"levelsGained"`
	CurrentLevelExp int64          `json:"currentLevelExp"`
	ExpToNext       int64          `json:"expToNext"`
	AtCap           bool           `json:"atCap"`
	Rewards         LevelUpRewards `json:"rewards"`
}

// ApplyExperience 纯内存结算：加经验、逐级升级（受境界上限约束）、
// 叠加升级与里程碑奖励。拒绝时不触碰角色任何字段。
func ApplyExperience(c *model.Character, amount int64, source string) ExpAwardOutcome {
	if c.Level >= gamedata.LevelCap(c.Realm) {
		return ExpAwardOutcome{
			Rejected: true,
			AtCap:    true,
			Reason:   "已达当前境界等级上限，请先突破",
		}
	}

	newTotal := c.TotalExperience + amount
	res := gamedata.ResolveLevel(newTotal, c.Level, c.Realm)

	outcome := ExpAwardOutcome{
		ExpGained:       amount,
		NewLevel:        res.NewLevel,
		LevelsGained:    res.LevelsGained,
		CurrentLevelExp: res.CurrentLevelExp,
		ExpToNext:       res.ExpToNext,
		AtCap:           res.AtCap,
	}

	if res.LevelsGained > 0 {
		rewards := LevelUpRewards{
			StatsIncrease:  res.LevelsGained * gamedata.LevelUpStatIncrease,
			HealthIncrease: res.LevelsGained * gamedata.LevelUpHealthIncrease,
			ManaIncrease:   res.LevelsGained * gamedata.LevelUpManaIncrease,
			GoldBonus:      int64(res.LevelsGained) * gamedata.LevelUpGoldBonus,
			SkillPoints:    res.LevelsGained * gamedata.SkillPointsPerLevel,
		}
		for lv := c.Level + 1; lv <= res.NewLevel; lv++ {
			if reward, ok := gamedata.MilestoneRewards[lv]; ok {
				rewards.Milestones = append(rewards.Milestones, MilestoneHit{Level: lv, Rewards: reward})
				rewards.GoldBonus += reward.Gold
			}
		}
		outcome.Rewards = rewards

		c.Attack += rewards.StatsIncrease
		c.Defense += rewards.StatsIncrease
		c.Speed += rewards.StatsIncrease
		c.MaxHealth += rewards.HealthIncrease
		c.MaxMana += rewards.ManaIncrease
		c.Gold += rewards.GoldBonus
		for _, m := range rewards.Milestones {
			c.SpiritStones += m.Rewards.SpiritStones
		}
	}

	c.Level = res.NewLevel
	c.TotalExperience = newTotal
	if c.ExperienceSources == nil {
		c.ExperienceSources = model.ExpSources{}
	}
	c.ExperienceSources[source] += amount

	return outcome
}

// AwardExperience 发放经验并落库。达上限时拒绝，不写任何字段。
func (s *ExperienceService) AwardExperience(characterID string, amount int64, source string) (*ExpAwardOutcome, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	outcome := ApplyExperience(c, amount, source)
	if outcome.Rejected {
		return &outcome, nil
	}

	fields := map[string]interface{}{
		"level":              c.Level,
		"total_experience":   c.TotalExperience,
		"experience_sources": c.ExperienceSources,
		"attack":             c.Attack,
		"defense":            c.Defense,
		"speed":              c.Speed,
		"max_health":         c.MaxHealth,
		"max_mana":           c.MaxMana,
		"gold":               c.Gold,
		"spirit_stones":      c.SpiritStones,
	}
	if err := s.CharRepo.Updates(characterID, fields); err != nil {
		return nil, err
	}

	if outcome.LevelsGained > 0 {
		s.Leaderboard.UpdateCharacter(c)
		logger.Log.Info("character leveled up",
			zap.String("characterId", characterID),
			zap.Int("newLevel", outcome.NewLevel),
			zap.Int("levelsGained", outcome.LevelsGained))
	}

	return &outcome, nil
}

// ClaimDailyLogin 每日签到奖励，按自然日（UTC）去重
func (s *ExperienceService) ClaimDailyLogin(characterID string) (*ExpAwardOutcome, error) {
	key := fmt.Sprintf("daily_login:%s:%s", characterID, time.Now().UTC().Format(util.DateFormat))

	ok, err := s.Redis.SetNX(context.Background(), key, 1, 48*time.Hour).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("今日已签到")
	}

	return s.AwardExperience(characterID, gamedata.ExpDailyLogin, ExpSourceDailyLogin)
}

// LevelProgress 等级进度视图
type LevelProgress struct {
	Level           int     `json:"level"`
	CurrentLevelExp int64   `json:"currentLevelExp"`
	ExpToNext       int64   `json:"expToNext"`
	ProgressPercent float64 `json:"progressPercent"`
	TotalExp        int64   `json:"totalExp"`
	MaxLevel        int     `json:"maxLevel"`
	IsMaxLevel      bool    `json:"isMaxLevel"`
}

func (s *ExperienceService) GetLevelProgress(characterID string) (*LevelProgress, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	currentLevelExp := c.TotalExperience - gamedata.TotalExpToLevel(c.Level)
	expToNext := gamedata.ExpToNextLevel(c.Level)
	maxLevel := gamedata.LevelCap(c.Realm)

	return &LevelProgress{
		Level:           c.Level,
		CurrentLevelExp: currentLevelExp,
		ExpToNext:       expToNext,
		ProgressPercent: float64(currentLevelExp) / float64(expToNext) * 100,
		TotalExp:        c.TotalExperience,
		MaxLevel:        maxLevel,
		IsMaxLevel:      c.Level >= maxLevel,
	}, nil
}

// ExpSourceEntry 经验来源明细
type ExpSourceEntry struct {
	Source     string  `json:"source"`
	Amount     int64   `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// ExpStatistics 经验统计视图
type ExpStatistics struct {
	TotalExp  int64            `json:"totalExp"`
	Level     int              `json:"level"`
	Breakdown []ExpSourceEntry `json:"breakdown"`
}

func (s *ExperienceService) GetExpStatistics(characterID string) (*ExpStatistics, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	stats := &ExpStatistics{
		TotalExp: c.TotalExperience,
		Level:    c.Level,
	}
	for source, amount := range c.ExperienceSources {
		pct := 0.0
		if c.TotalExperience > 0 {
			pct = float64(amount) / float64(c.TotalExperience) * 100
		}
		stats.Breakdown = append(stats.Breakdown, ExpSourceEntry{
			Source:     source,
			Amount:     amount,
			Percentage: pct,
		})
	}
	return stats, nil
}
