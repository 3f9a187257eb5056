package controller

import (
	"errors"

	"xiuxian_game_backend/internal/service"
	"xiuxian_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	CharacterService *service.CharacterService
	SkillService     *service.SkillService
}

func NewSkillController(characterService *service.CharacterService, skillService *service.SkillService) *SkillController {
	return &SkillController{
		CharacterService: characterService,
		SkillService:     skillService,
	}
}

// Tree godoc
// @Summary 功法树
// @Description 角色宗门的功法树及每个节点的解锁状态
// @Tags 功法
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=[]service.SkillNode}
// @Router /api/characters/{id}/skills [get]
func (c *SkillController) Tree(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	tree, err := c.SkillService.GetSkillTree(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tree)
}

// Points godoc
// @Summary 技能点信息
// @Description 可用点数、累计获得与来源拆分
// @Tags 功法
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.SkillPointsInfo}
// @Router /api/characters/{id}/skills/points [get]
func (c *SkillController) Points(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	info, err := c.SkillService.GetSkillPoints(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, info)
}

// Effects godoc
// @Summary 功法效果汇总
// @Description 全部已升级功法的属性与修炼速度加成合计
// @Tags 功法
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.SkillEffects}
// @Router /api/characters/{id}/skills/effects [get]
func (c *SkillController) Effects(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	effects, err := c.SkillService.CalculateEffects(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, effects)
}

// Unlock godoc
// @Summary 解锁功法
// @Description 满足等级、境界与前置功法要求后解锁，解锁本身不消耗点数
// @Tags 功法
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Param   skillId path string true "功法ID"
// @Success 200 {object} util.Response{data=model.CharacterSkill}
// @Failure 400 {object} util.Response "未满足解锁条件"
// @Failure 409 {object} util.Response "功法已解锁"
// @Router /api/characters/{id}/skills/{skillId}/unlock [post]
func (c *SkillController) Unlock(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	cs, err := c.SkillService.UnlockSkill(character.ID, ctx.Param("skillId"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSkillNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSkillAlreadyUnlocked):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrSkillRequirementsUnmet):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, cs)
}

// Upgrade godoc
// @Summary 升级功法
// @Description 消耗技能点将功法提升一级，点数按层级定价
// @Tags 功法
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Param   skillId path string true "功法ID"
// @Success 200 {object} util.Response{data=service.UpgradeOutcome}
// @Failure 400 {object} util.Response "点数不足或已满级"
// @Router /api/characters/{id}/skills/{skillId}/upgrade [post]
func (c *SkillController) Upgrade(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	outcome, err := c.SkillService.UpgradeSkill(character.ID, ctx.Param("skillId"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSkillNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSkillLocked),
			errors.Is(err, util.ErrSkillMaxLevel),
			errors.Is(err, util.ErrSkillPointsInsufficient),
			errors.Is(err, util.ErrSkillRequirementsUnmet):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, outcome)
}
