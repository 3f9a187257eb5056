package controller

import (
	"strconv"

	"xiuxian_game_backend/internal/service"
	"xiuxian_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	CharacterService   *service.CharacterService
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(characterService *service.CharacterService, leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{
		CharacterService:   characterService,
		LeaderboardService: leaderboardService,
	}
}

// Top godoc
// @Summary 等级排行榜
// @Description 按等级与总经验排序的角色榜单
// @Tags 排行榜
// @Produce  json
// @Param   limit query int false "返回条数，默认20，最大100"
// @Success 200 {object} util.Response{data=[]service.LeaderboardEntry}
// @Router /api/leaderboard [get]
func (c *LeaderboardController) Top(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	entries, err := c.LeaderboardService.Top(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// Distribution godoc
// @Summary 境界分布
// @Description 全服各境界的角色数量，按境界升序
// @Tags 排行榜
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.RealmDistribution}
// @Router /api/leaderboard/realms [get]
func (c *LeaderboardController) Distribution(ctx *gin.Context) {
	dist, err := c.LeaderboardService.Distribution()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dist)
}

// Rank godoc
// @Summary 角色名次
// @Description 角色在等级榜中的当前名次，未上榜时为0
// @Tags 排行榜
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=object}
// @Router /api/characters/{id}/rank [get]
func (c *LeaderboardController) Rank(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	rank, err := c.LeaderboardService.Rank(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"rank": rank})
}
