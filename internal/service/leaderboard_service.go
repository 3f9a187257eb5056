package service

import (
	"context"
	"time"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardKey = "leaderboard:level"

type LeaderboardService struct {
	CharRepo *repository.CharacterRepository
	Redis    *redis.Client
}

func NewLeaderboardService(charRepo *repository.CharacterRepository, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{CharRepo: charRepo, Redis: rdb}
}

// leaderboardScore 排序分：等级优先，同级按总经验
func leaderboardScore(c *model.Character) float64 {
	return float64(c.Level)*1e10 + float64(c.TotalExperience)
}

// UpdateCharacter 刷新角色榜单分数。Redis不可用时只记日志，
// 查询会自动退回数据库排序。
func (s *LeaderboardService) UpdateCharacter(c *model.Character) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := s.Redis.ZAdd(ctx, leaderboardKey, &redis.Z{
		Score:  leaderboardScore(c),
		Member: c.ID,
	}).Err()
	if err != nil {
		logger.Log.Warn("leaderboard update skipped",
			zap.String("characterId", c.ID), zap.Error(err))
	}
}

// Remove 角色删除后移出榜单
func (s *LeaderboardService) Remove(characterID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Redis.ZRem(ctx, leaderboardKey, characterID).Err(); err != nil {
		logger.Log.Warn("leaderboard remove skipped",
			zap.String("characterId", characterID), zap.Error(err))
	}
}

// LeaderboardEntry 榜单条目
type LeaderboardEntry struct {
	Rank      int            `json:"rank"`
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Sect      gamedata.Sect  `json:"sect"`
	Realm     gamedata.Realm `json:"realm"`
	RealmName string         `json:"realmName"`
	Level     int            `json:"level"`
	TotalExp  int64          `json:"totalExp"`
}

// Top 榜单前N名。优先读Redis有序集合，失败时退回数据库排序。
func (s *LeaderboardService) Top(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ids, err := s.Redis.ZRevRange(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil || len(ids) == 0 {
		if err != nil {
			logger.Log.Warn("leaderboard redis unavailable, falling back to database", zap.Error(err))
		}
		return s.topFromDB(limit)
	}

	entries := make([]LeaderboardEntry, 0, len(ids))
	for i, id := range ids {
		c, err := s.CharRepo.FindByID(id)
		if err != nil {
			// 榜单里的脏成员（角色已删除等），跳过
			continue
		}
		entries = append(entries, toEntry(c, i+1))
	}
	return entries, nil
}

func (s *LeaderboardService) topFromDB(limit int) ([]LeaderboardEntry, error) {
	list, err := s.CharRepo.TopByLevel(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(list))
	for i := range list {
		entries = append(entries, toEntry(&list[i], i+1))
	}
	return entries, nil
}

// Rank 角色当前名次，1起始。不在榜单时返回0。
func (s *LeaderboardService) Rank(characterID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rank, err := s.Redis.ZRevRank(ctx, leaderboardKey, characterID).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return int(rank) + 1, nil
}

// RealmDistribution 各境界人数分布，按境界升序，空境界也占位
type RealmDistribution struct {
	Realm     gamedata.Realm `json:"realm"`
	RealmName string         `json:"realmName"`
	Count     int64          `json:"count"`
}

// Distribution 全服境界分布统计
func (s *LeaderboardService) Distribution() ([]RealmDistribution, error) {
	counts, err := s.CharRepo.CountByRealm()
	if err != nil {
		return nil, err
	}

	byRealm := make(map[gamedata.Realm]int64, len(counts))
	for _, rc := range counts {
		byRealm[gamedata.Realm(rc.Realm)] = rc.Count
	}

	dist := make([]RealmDistribution, 0, len(gamedata.RealmOrder))
	for _, r := range gamedata.RealmOrder {
		dist = append(dist, RealmDistribution{
			Realm:     r,
			RealmName: gamedata.RealmTable[r].Name,
			Count:     byRealm[r],
		})
	}
	return dist, nil
}

func toEntry(c *model.Character, rank int) LeaderboardEntry {
	return LeaderboardEntry{
		Rank:      rank,
		ID:        c.ID,
		Name:      c.Name,
		Sect:      c.Sect,
		Realm:     c.Realm,
		RealmName: gamedata.RealmTable[c.Realm].Name,
		Level:     c.Level,
		TotalExp:  c.TotalExperience,
	}
}
