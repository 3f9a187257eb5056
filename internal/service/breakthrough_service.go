package service

import (
	"fmt"
	"math"
	"time"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/internal/util"
	"xiuxian_game_backend/pkg/logger"
	"xiuxian_game_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BreakthroughSuccessRate 突破成功率，draw < 该值判定为成功
const BreakthroughSuccessRate = 0.90

// FailurePointsLossRate 失败扣除当前修为的比例
const FailurePointsLossRate = 0.5

type BreakthroughService struct {
	CharRepo    *repository.CharacterRepository
	BreakRepo   *repository.BreakthroughRepository
	SkillRepo   *repository.SkillRepository
	ExpSvc      *ExperienceService
	Leaderboard *LeaderboardService
	Rand        RandomSource
}

func NewBreakthroughService(
	charRepo *repository.CharacterRepository,
	breakRepo *repository.BreakthroughRepository,
	skillRepo *repository.SkillRepository,
	expSvc *ExperienceService,
	leaderboard *LeaderboardService,
	rng RandomSource,
) *BreakthroughService {
	return &BreakthroughService{
		CharRepo:    charRepo,
		BreakRepo:   breakRepo,
		SkillRepo:   skillRepo,
		ExpSvc:      expSvc,
		Leaderboard: leaderboard,
		Rand:        rng,
	}
}

// Eligibility 突破资格视图
type Eligibility struct {
	Eligible       bool                            `json:"eligible"`
	Reasons        []string                        `json:"reasons,omitempty"`
	CurrentRealm   gamedata.Realm                  `json:"currentRealm"`
	NextRealm      gamedata.Realm                  `json:"nextRealm,omitempty"`
	PointsRequired int64                           `json:"pointsRequired"`
	CurrentPoints  int64                           `json:"currentPoints"`
	SuccessRate    float64                         `json:"successRate"`
	Materials      []gamedata.BreakthroughMaterial `json:"materials,omitempty"`
}

// CheckEligibility 纯计算：是否具备突破条件。
// 材料清单仅随视图返回，不参与判定。
func CheckEligibility(c *model.Character) Eligibility {
	e := Eligibility{
		CurrentRealm:  c.Realm,
		CurrentPoints: c.CultivationPoints,
		SuccessRate:   BreakthroughSuccessRate,
	}

	next, ok := gamedata.NextRealm(c.Realm)
	if !ok {
		e.Reasons = append(e.Reasons, "已是最高境界")
		return e
	}
	info := gamedata.RealmTable[next]
	e.NextRealm = next
	e.PointsRequired = info.PointsRequired
	e.Materials = info.Materials

	if c.Level < gamedata.LevelCap(c.Realm) {
		e.Reasons = append(e.Reasons, "等级未达当前境界上限")
	}
	if c.CultivationPoints < info.PointsRequired {
		e.Reasons = append(e.Reasons, "修为不足")
	}
	e.Eligible = len(e.Reasons) == 0
	return e
}

// ineligibilityError 将资格校验结果包装成哨兵错误，
// 控制器用 errors.Is 与后端故障区分
func ineligibilityError(e Eligibility) error {
	if len(e.Reasons) == 0 {
		return util.ErrBreakthroughIneligible
	}
	return fmt.Errorf("%w：%s", util.ErrBreakthroughIneligible, e.Reasons[0])
}

func (s *BreakthroughService) CanBreakthrough(characterID string) (*Eligibility, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}
	e := CheckEligibility(c)
	return &e, nil
}

// BreakthroughResult 突破判定结果
type BreakthroughResult struct {
	Success        bool           `json:"success"`
	FromRealm      gamedata.Realm `json:"fromRealm"`
	ToRealm        gamedata.Realm `json:"toRealm"`
	PointsRequired int64          `json:"pointsRequired"`
	PointsLost     int64          `json:"pointsLost"`
	NewSkillSlots  int            `json:"newSkillSlots"`
	ExpReward      int64          `json:"expReward"`
	NewSpeed       float64        `json:"newSpeed"`
}

// rescale 属性随境界倍率换算：先还原到基础值再乘新倍率，向下取整
func rescale(stat int, oldMult, newMult float64) int {
	return int(math.Floor(float64(stat) / oldMult * newMult))
}

// ResolveBreakthrough 纯内存判定并应用结果。
// 成功：进入下一境界、属性按倍率换算、状态回满、修为清零。
// 失败：扣除当前修为的一半（向下取整），其余不变。
// 升级经验奖励由调用方在落库后另行发放。
func ResolveBreakthrough(c *model.Character, draw float64) BreakthroughResult {
	next, _ := gamedata.NextRealm(c.Realm)
	oldInfo := gamedata.RealmTable[c.Realm]
	newInfo := gamedata.RealmTable[next]

	result := BreakthroughResult{
		FromRealm:      c.Realm,
		ToRealm:        next,
		PointsRequired: newInfo.PointsRequired,
	}

	if draw >= BreakthroughSuccessRate {
		lost := int64(math.Floor(float64(c.CultivationPoints) * FailurePointsLossRate))
		c.CultivationPoints -= lost
		result.PointsLost = lost
		return result
	}

	result.Success = true
	result.NewSkillSlots = newInfo.NewSkillSlots
	result.ExpReward = gamedata.ExpBreakthrough

	c.Realm = next
	c.CultivationPoints = 0

	c.Attack = rescale(c.Attack, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.Defense = rescale(c.Defense, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.Speed = rescale(c.Speed, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.SpiritualPower = rescale(c.SpiritualPower, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.Comprehension = rescale(c.Comprehension, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.Luck = rescale(c.Luck, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.MaxHealth = rescale(c.MaxHealth, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.MaxMana = rescale(c.MaxMana, oldInfo.StatMultiplier, newInfo.StatMultiplier)
	c.Health = c.MaxHealth
	c.Mana = c.MaxMana

	return result
}

// Attempt 发起突破。判定、突破记录与角色变更在同一事务内落库，
// 成功后的经验奖励与排行榜更新在事务外执行。
func (s *BreakthroughService) Attempt(characterID string) (*BreakthroughResult, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	eligibility := CheckEligibility(c)
	if !eligibility.Eligible {
		return nil, ineligibilityError(eligibility)
	}

	draw := s.Rand.Float64()
	result := ResolveBreakthrough(c, draw)

	if result.Success {
		skills, err := s.SkillRepo.FindByCharacter(characterID)
		if err != nil {
			return nil, err
		}
		effects := AggregateSkillEffects(c.Sect, skills)
		c.CultivationSpeed = gamedata.CultivationSpeed(c.Sect, c.Realm, effects.CultivationSpeedBonus)
		result.NewSpeed = c.CultivationSpeed
	} else {
		result.NewSpeed = c.CultivationSpeed
	}

	now := time.Now().UTC()
	attempt := &model.BreakthroughAttempt{
		CharacterID:    characterID,
		FromRealm:      result.FromRealm,
		ToRealm:        result.ToRealm,
		Success:        result.Success,
		PointsRequired: result.PointsRequired,
		AttemptedAt:    now,
	}

	fields := map[string]interface{}{
		"cultivation_points": c.CultivationPoints,
	}
	if result.Success {
		fields["realm"] = c.Realm
		fields["cultivation_speed"] = c.CultivationSpeed
		fields["attack"] = c.Attack
		fields["defense"] = c.Defense
		fields["speed"] = c.Speed
		fields["spiritual_power"] = c.SpiritualPower
		fields["comprehension"] = c.Comprehension
		fields["luck"] = c.Luck
		fields["max_health"] = c.MaxHealth
		fields["max_mana"] = c.MaxMana
		fields["health"] = c.Health
		fields["mana"] = c.Mana
	}

	err = s.BreakRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		return tx.Model(&model.Character{}).
			Where("id = ?", characterID).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}

	if result.Success {
		monitoring.BreakthroughAttempts.WithLabelValues("success").Inc()
		s.Leaderboard.UpdateCharacter(c)
		logger.Log.Info("breakthrough succeeded",
			zap.String("characterId", characterID),
			zap.String("fromRealm", string(result.FromRealm)),
			zap.String("toRealm", string(result.ToRealm)))

		if _, err := s.ExpSvc.AwardExperience(characterID, gamedata.ExpBreakthrough, ExpSourceBreakthrough); err != nil {
			// 奖励发放失败不回滚突破本身
			logger.Log.Error("failed to award breakthrough experience",
				zap.String("characterId", characterID), zap.Error(err))
		}
	} else {
		monitoring.BreakthroughAttempts.WithLabelValues("failure").Inc()
		logger.Log.Info("breakthrough failed",
			zap.String("characterId", characterID),
			zap.Int64("pointsLost", result.PointsLost))
	}

	return &result, nil
}

// History 突破历史，按时间倒序
func (s *BreakthroughService) History(characterID string, limit int) ([]model.BreakthroughAttempt, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.BreakRepo.History(characterID, limit)
}
