package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/internal/util"
	"xiuxian_game_backend/pkg/logger"
	"xiuxian_game_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 修炼节奏常量
const (
	BasePointsPerHour = 10
	OfflineEfficiency = 0.5
	MaxOfflineHours   = 24

	offlineClaimTTL = 10 * time.Minute
)

type CultivationService struct {
	CharRepo    *repository.CharacterRepository
	SessionRepo *repository.SessionRepository
	ExpSvc      *ExperienceService
	Redis       *redis.Client
}

func NewCultivationService(
	charRepo *repository.CharacterRepository,
	sessionRepo *repository.SessionRepository,
	expSvc *ExperienceService,
	rdb *redis.Client,
) *CultivationService {
	return &CultivationService{
		CharRepo:    charRepo,
		SessionRepo: sessionRepo,
		ExpSvc:      expSvc,
		Redis:       rdb,
	}
}

// ExpForMinutes 修炼时长对应的经验收益，整体向下取整
func ExpForMinutes(minutes int64) int64 {
	return minutes * gamedata.ExpPerCultivationHour / 60
}

// PointsPerMinute 每分钟修为 = 基础时速/60 × 修炼速度
func PointsPerMinute(speed float64) float64 {
	return BasePointsPerHour / 60.0 * speed
}

// PointsForMinutes 整段时间的修为收益，向下取整。
// 先乘后除，避免 10/60 这类无限小数的截断误差。
func PointsForMinutes(speed float64, minutes int64) int64 {
	return int64(float64(minutes) * speed * BasePointsPerHour / 60.0)
}

// ElapsedMinutes 以整分钟计的流逝时间，now 早于 since 时为0
func ElapsedMinutes(since, now time.Time) int64 {
	if !now.After(since) {
		return 0
	}
	return int64(now.Sub(since) / time.Minute)
}

// Checkpoint 纯内存结算：按整分钟累加修为（向下取整保证无小数漂移），
// 无论是否在修炼，last_checkpoint_at 都推进到 now（只进不退），
// 避免挂账无限累积。同一 now 重复调用第二次必然得0。
func Checkpoint(c *model.Character, now time.Time) (gained int64) {
	elapsed := ElapsedMinutes(c.LastCheckpointAt, now)

	if c.IsCultivating && elapsed > 0 {
		gained = PointsForMinutes(c.CultivationSpeed, elapsed)
		c.CultivationPoints += gained
		c.TotalCultivationTime += elapsed
	}

	if now.After(c.LastCheckpointAt) {
		c.LastCheckpointAt = now
	}
	return gained
}

// OfflinePreview 离线收益预览，纯读不落库：
// 间隔上限24小时，效率减半，同样按整分钟向下取整。
func OfflinePreview(c *model.Character, now time.Time) (points int64, minutes int64) {
	if c.IsCultivating {
		return 0, 0
	}
	minutes = ElapsedMinutes(c.LastCheckpointAt, now)
	if maxMinutes := int64(MaxOfflineHours * 60); minutes > maxMinutes {
		minutes = maxMinutes
	}
	points = int64(float64(minutes) * c.CultivationSpeed * BasePointsPerHour / 60.0 * OfflineEfficiency)
	return points, minutes
}

// StartSession 开始修炼。已在修炼中则拒绝。
func (s *CultivationService) StartSession(characterID string) (*model.Character, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}
	if c.IsCultivating {
		return nil, util.ErrAlreadyCultivating
	}

	now := time.Now().UTC()
	Checkpoint(c, now) // 推进检查点，闲置期不计分

	c.IsCultivating = true
	c.SessionStartAt = &now

	err = s.CharRepo.Updates(characterID, map[string]interface{}{
		"is_cultivating":     true,
		"session_start_at":   now,
		"last_checkpoint_at": c.LastCheckpointAt,
	})
	if err != nil {
		return nil, err
	}

	session := &model.CultivationSession{
		CharacterID:  characterID,
		SessionStart: now,
		BaseSpeed:    BasePointsPerHour,
		FinalSpeed:   c.CultivationSpeed,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		// 会话流水仅用于历史统计，失败不阻断修炼
		logger.Log.Error("failed to create cultivation session record",
			zap.String("characterId", characterID), zap.Error(err))
	}

	return c, nil
}

// StopSession 结束修炼：结算最后一段收益，关闭会话流水。
func (s *CultivationService) StopSession(characterID string) (*model.Character, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}
	if !c.IsCultivating {
		return nil, util.ErrNotCultivating
	}

	now := time.Now().UTC()
	gained := Checkpoint(c, now)

	var durationMinutes int64
	if c.SessionStartAt != nil {
		durationMinutes = ElapsedMinutes(*c.SessionStartAt, now)
	}
	sessionPoints := PointsForMinutes(c.CultivationSpeed, durationMinutes)

	c.IsCultivating = false
	c.SessionStartAt = nil

	err = s.CharRepo.Updates(characterID, map[string]interface{}{
		"is_cultivating":         false,
		"session_start_at":       nil,
		"cultivation_points":     c.CultivationPoints,
		"total_cultivation_time": c.TotalCultivationTime,
		"last_checkpoint_at":     c.LastCheckpointAt,
	})
	if err != nil {
		return nil, err
	}

	if gained > 0 {
		monitoring.CultivationPointsAwarded.Add(float64(gained))
	}

	if err := s.SessionRepo.CloseOpen(characterID, now, durationMinutes, sessionPoints); err != nil {
		logger.Log.Error("failed to close cultivation session record",
			zap.String("characterId", characterID), zap.Error(err))
	}

	// 修炼同时积累少量经验，按整场会话结算
	if exp := ExpForMinutes(durationMinutes); exp > 0 {
		if _, err := s.ExpSvc.AwardExperience(characterID, exp, ExpSourceCultivation); err != nil {
			logger.Log.Error("failed to award cultivation experience",
				zap.String("characterId", characterID), zap.Error(err))
		}
	}

	return c, nil
}

// CheckpointCharacter 周期性结算，幂等：同一时刻重复调用不会重复计分。
func (s *CultivationService) CheckpointCharacter(characterID string, now time.Time) (int64, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return 0, err
	}

	gained := Checkpoint(c, now)

	err = s.CharRepo.Updates(characterID, map[string]interface{}{
		"cultivation_points":     c.CultivationPoints,
		"total_cultivation_time": c.TotalCultivationTime,
		"last_checkpoint_at":     c.LastCheckpointAt,
	})
	if err != nil {
		return 0, err
	}

	if gained > 0 {
		monitoring.CultivationPointsAwarded.Add(float64(gained))
	}
	return gained, nil
}

// Progress 当前修炼进度视图
type Progress struct {
	TotalPoints      int64   `json:"totalPoints"`
	PendingPoints    int64   `json:"pendingPoints"` // 自上次结算后的未落库收益
	SessionMinutes   int64   `json:"sessionMinutes"`
	TotalMinutes     int64   `json:"totalMinutes"`
	CultivationSpeed float64 `json:"cultivationSpeed"`
	PointsPerHour    float64 `json:"pointsPerHour"`
	IsCultivating    bool    `json:"isCultivating"`
}

// GetProgress 只读进度查询，不推进检查点
func (s *CultivationService) GetProgress(characterID string) (*Progress, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	elapsed := ElapsedMinutes(c.LastCheckpointAt, now)

	var pending, sessionMinutes int64
	if c.IsCultivating {
		pending = PointsForMinutes(c.CultivationSpeed, elapsed)
		if c.SessionStartAt != nil {
			sessionMinutes = ElapsedMinutes(*c.SessionStartAt, now)
		}
	}

	return &Progress{
		TotalPoints:      c.CultivationPoints + pending,
		PendingPoints:    pending,
		SessionMinutes:   sessionMinutes,
		TotalMinutes:     c.TotalCultivationTime,
		CultivationSpeed: c.CultivationSpeed,
		PointsPerHour:    PointsPerMinute(c.CultivationSpeed) * 60,
		IsCultivating:    c.IsCultivating,
	}, nil
}

// OfflineProgressResult 离线收益预览与领取凭证
type OfflineProgressResult struct {
	PointsGained   int64  `json:"pointsGained"`
	MinutesElapsed int64  `json:"minutesElapsed"`
	ClaimToken     string `json:"claimToken,omitempty"`
}

type offlineClaim struct {
	CharacterID string `json:"characterId"`
	Points      int64  `json:"points"`
	Minutes     int64  `json:"minutes"`
}

// OfflineProgress 预览离线收益并签发一次性领取凭证。
// 预览本身不改任何状态，收益需调用 ClaimOffline 显式领取。
func (s *CultivationService) OfflineProgress(characterID string) (*OfflineProgressResult, error) {
	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	points, minutes := OfflinePreview(c, now)
	result := &OfflineProgressResult{PointsGained: points, MinutesElapsed: minutes}
	if points <= 0 {
		return result, nil
	}

	token := uuid.New().String()
	payload, _ := json.Marshal(offlineClaim{CharacterID: characterID, Points: points, Minutes: minutes})
	if err := s.Redis.Set(context.Background(), "offline_claim:"+token, payload, offlineClaimTTL).Err(); err != nil {
		return nil, err
	}
	result.ClaimToken = token
	return result, nil
}

// ClaimOffline 领取离线收益。凭证一次性生效，重放不会重复计分。
func (s *CultivationService) ClaimOffline(characterID, token string) (*model.Character, error) {
	ctx := context.Background()
	raw, err := s.Redis.GetDel(ctx, "offline_claim:"+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, util.ErrClaimAlreadyUsed
		}
		return nil, err
	}

	var claim offlineClaim
	if err := json.Unmarshal([]byte(raw), &claim); err != nil {
		return nil, err
	}
	if claim.CharacterID != characterID {
		return nil, util.ErrPermissionDenied
	}

	c, err := s.CharRepo.FindByID(characterID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c.CultivationPoints += claim.Points
	if now.After(c.LastCheckpointAt) {
		c.LastCheckpointAt = now
	}

	err = s.CharRepo.Updates(characterID, map[string]interface{}{
		"cultivation_points": c.CultivationPoints,
		"last_checkpoint_at": c.LastCheckpointAt,
	})
	if err != nil {
		return nil, err
	}

	monitoring.CultivationPointsAwarded.Add(float64(claim.Points))

	// 离线经验与离线修为同一效率折减
	if exp := int64(float64(ExpForMinutes(claim.Minutes)) * OfflineEfficiency); exp > 0 {
		if _, err := s.ExpSvc.AwardExperience(characterID, exp, ExpSourceCultivation); err != nil {
			logger.Log.Error("failed to award offline experience",
				zap.String("characterId", characterID), zap.Error(err))
		}
	}

	logger.Log.Info("offline progress claimed",
		zap.String("characterId", characterID),
		zap.Int64("points", claim.Points),
		zap.Int64("minutes", claim.Minutes))

	return c, nil
}

// CheckpointAllCultivating 后台定时任务入口：结算所有修炼中的角色
func (s *CultivationService) CheckpointAllCultivating() error {
	var ids []string
	err := s.CharRepo.DB.Model(&model.Character{}).
		Where("is_cultivating = ?", true).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, id := range ids {
		if _, err := s.CheckpointCharacter(id, now); err != nil {
			logger.Log.Error("checkpoint failed",
				zap.String("characterId", id), zap.Error(err))
		}
	}
	return nil
}
