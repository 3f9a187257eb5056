package controller

import (
	"errors"
	"strconv"

	"xiuxian_game_backend/internal/service"
	"xiuxian_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BreakthroughController struct {
	CharacterService    *service.CharacterService
	BreakthroughService *service.BreakthroughService
}

func NewBreakthroughController(characterService *service.CharacterService, breakthroughService *service.BreakthroughService) *BreakthroughController {
	return &BreakthroughController{
		CharacterService:    characterService,
		BreakthroughService: breakthroughService,
	}
}

// Check godoc
// @Summary 突破资格查询
// @Description 是否满足进入下一境界的条件，含所需修为与材料清单
// @Tags 突破
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.Eligibility}
// @Router /api/characters/{id}/breakthrough [get]
func (c *BreakthroughController) Check(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	eligibility, err := c.BreakthroughService.CanBreakthrough(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, eligibility)
}

// Attempt godoc
// @Summary 发起突破
// @Description 消耗修为尝试进入下一境界。失败扣除一半当前修为。
// @Tags 突破
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.BreakthroughResult}
// @Failure 400 {object} util.Response "不满足突破条件"
// @Router /api/characters/{id}/breakthrough [post]
func (c *BreakthroughController) Attempt(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	result, err := c.BreakthroughService.Attempt(character.ID)
	if err != nil {
		if errors.Is(err, util.ErrBreakthroughIneligible) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// History godoc
// @Summary 突破历史
// @Description 按时间倒序的突破记录
// @Tags 突破
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Param   limit query int false "返回条数，默认20"
// @Success 200 {object} util.Response{data=[]model.BreakthroughAttempt}
// @Router /api/characters/{id}/breakthrough/history [get]
func (c *BreakthroughController) History(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	history, err := c.BreakthroughService.History(character.ID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}
