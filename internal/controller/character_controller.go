package controller

import (
	"errors"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/service"
	"xiuxian_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CharacterController struct {
	CharacterService  *service.CharacterService
	ExperienceService *service.ExperienceService
}

func NewCharacterController(characterService *service.CharacterService, experienceService *service.ExperienceService) *CharacterController {
	return &CharacterController{
		CharacterService:  characterService,
		ExperienceService: experienceService,
	}
}

// CreateCharacterRequest 创建角色请求
// swagger:model CreateCharacterRequest
type CreateCharacterRequest struct {
	Name string `json:"name" binding:"required"`
	Sect string `json:"sect" binding:"required,oneof=sword lightning medical defense"`
}

// Create godoc
// @Summary 创建角色
// @Description 按选择的宗门模板创建新角色
// @Tags 角色
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateCharacterRequest true "角色信息"
// @Success 201 {object} util.Response{data=model.Character} "创建成功"
// @Failure 400 {object} util.Response "名称或宗门不合法"
// @Failure 409 {object} util.Response "角色名已被使用"
// @Router /api/characters [post]
func (c *CharacterController) Create(ctx *gin.Context) {
	claims := util.GetPlayerFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateCharacterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	character, err := c.CharacterService.Create(claims.PlayerID, req.Name, gamedata.Sect(req.Sect))
	if err != nil {
		if errors.Is(err, util.ErrCharacterNameTaken) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, character)
}

// List godoc
// @Summary 角色列表
// @Description 当前玩家名下的全部角色
// @Tags 角色
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Character}
// @Router /api/characters [get]
func (c *CharacterController) List(ctx *gin.Context) {
	claims := util.GetPlayerFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	list, err := c.CharacterService.List(claims.PlayerID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// Get godoc
// @Summary 角色详情
// @Tags 角色
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=model.Character}
// @Failure 404 {object} util.Response "角色不存在"
// @Router /api/characters/{id} [get]
func (c *CharacterController) Get(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}
	util.Success(ctx, character)
}

// Delete godoc
// @Summary 删除角色
// @Tags 角色
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "角色不存在"
// @Router /api/characters/{id} [delete]
func (c *CharacterController) Delete(ctx *gin.Context) {
	claims := util.GetPlayerFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.CharacterService.Delete(ctx.Param("id"), claims.PlayerID)
	if err != nil {
		if errors.Is(err, util.ErrCharacterNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// LevelProgress godoc
// @Summary 等级进度
// @Description 当前等级、本级经验与升级所需经验
// @Tags 角色
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.LevelProgress}
// @Router /api/characters/{id}/level [get]
func (c *CharacterController) LevelProgress(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	progress, err := c.ExperienceService.GetLevelProgress(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// ExpStatistics godoc
// @Summary 经验来源统计
// @Tags 角色
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.ExpStatistics}
// @Router /api/characters/{id}/experience [get]
func (c *CharacterController) ExpStatistics(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	stats, err := c.ExperienceService.GetExpStatistics(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// DailyLogin godoc
// @Summary 每日签到
// @Description 领取每日登录经验，按自然日去重
// @Tags 角色
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.ExpAwardOutcome}
// @Failure 409 {object} util.Response "今日已签到"
// @Router /api/characters/{id}/daily-login [post]
func (c *CharacterController) DailyLogin(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	outcome, err := c.ExperienceService.ClaimDailyLogin(character.ID)
	if err != nil {
		util.Conflict(ctx, err.Error())
		return
	}
	util.Success(ctx, outcome)
}

// Sects godoc
// @Summary 宗门列表
// @Description 四大宗门的静态配置，供创角界面使用
// @Tags 角色
// @Produce  json
// @Success 200 {object} util.Response{data=[]gamedata.SectInfo}
// @Router /api/sects [get]
func (c *CharacterController) Sects(ctx *gin.Context) {
	util.Success(ctx, c.CharacterService.SectList())
}

// Realms godoc
// @Summary 境界列表
// @Description 九大境界的静态配置，升序排列
// @Tags 角色
// @Produce  json
// @Success 200 {object} util.Response{data=[]gamedata.RealmInfo}
// @Router /api/realms [get]
func (c *CharacterController) Realms(ctx *gin.Context) {
	util.Success(ctx, c.CharacterService.RealmList())
}

// resolveOwnedCharacter 取路径参数中的角色并校验归属，失败时已写响应
func resolveOwnedCharacter(ctx *gin.Context, svc *service.CharacterService) (*model.Character, bool) {
	claims := util.GetPlayerFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return nil, false
	}

	character, err := svc.Get(ctx.Param("id"), claims.PlayerID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrCharacterNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Error(ctx, 403, "无权访问该角色")
		default:
			util.LogInternalError(ctx, err)
		}
		return nil, false
	}
	return character, true
}
