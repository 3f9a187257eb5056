package controller

import (
	"errors"

	"xiuxian_game_backend/internal/service"
	"xiuxian_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CultivationController struct {
	CharacterService   *service.CharacterService
	CultivationService *service.CultivationService
}

func NewCultivationController(characterService *service.CharacterService, cultivationService *service.CultivationService) *CultivationController {
	return &CultivationController{
		CharacterService:   characterService,
		CultivationService: cultivationService,
	}
}

// Start godoc
// @Summary 开始修炼
// @Description 进入修炼状态，修为按时间持续累积
// @Tags 修炼
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=model.Character}
// @Failure 409 {object} util.Response "角色已在修炼中"
// @Router /api/characters/{id}/cultivation/start [post]
func (c *CultivationController) Start(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	result, err := c.CultivationService.StartSession(character.ID)
	if err != nil {
		if errors.Is(err, util.ErrAlreadyCultivating) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Stop godoc
// @Summary 结束修炼
// @Description 结算本次修炼收益并退出修炼状态
// @Tags 修炼
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=model.Character}
// @Failure 409 {object} util.Response "角色未在修炼"
// @Router /api/characters/{id}/cultivation/stop [post]
func (c *CultivationController) Stop(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	result, err := c.CultivationService.StopSession(character.ID)
	if err != nil {
		if errors.Is(err, util.ErrNotCultivating) {
			util.Conflict(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Progress godoc
// @Summary 修炼进度
// @Description 当前修为、未结算收益与修炼速度
// @Tags 修炼
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.Progress}
// @Router /api/characters/{id}/cultivation [get]
func (c *CultivationController) Progress(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	progress, err := c.CultivationService.GetProgress(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// Offline godoc
// @Summary 离线收益预览
// @Description 预览离线累积收益并签发一次性领取凭证
// @Tags 修炼
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=service.OfflineProgressResult}
// @Router /api/characters/{id}/cultivation/offline [get]
func (c *CultivationController) Offline(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	result, err := c.CultivationService.OfflineProgress(character.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ClaimOfflineRequest 离线收益领取请求
// swagger:model ClaimOfflineRequest
type ClaimOfflineRequest struct {
	ClaimToken string `json:"claimToken" binding:"required"`
}

// ClaimOffline godoc
// @Summary 领取离线收益
// @Description 使用预览签发的凭证领取，凭证一次性生效
// @Tags 修炼
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Param   body body ClaimOfflineRequest true "领取凭证"
// @Success 200 {object} util.Response{data=model.Character}
// @Failure 409 {object} util.Response "凭证已使用或过期"
// @Router /api/characters/{id}/cultivation/offline/claim [post]
func (c *CultivationController) ClaimOffline(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	var req ClaimOfflineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CultivationService.ClaimOffline(character.ID, req.ClaimToken)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrClaimAlreadyUsed):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrPermissionDenied):
			util.Error(ctx, 403, "无权领取该收益")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}

// Sessions godoc
// @Summary 修炼历史
// @Description 最近的修炼会话流水
// @Tags 修炼
// @Produce  json
// @Security BearerAuth
// @Param   id path string true "角色ID"
// @Success 200 {object} util.Response{data=[]model.CultivationSession}
// @Router /api/characters/{id}/cultivation/sessions [get]
func (c *CultivationController) Sessions(ctx *gin.Context) {
	character, ok := resolveOwnedCharacter(ctx, c.CharacterService)
	if !ok {
		return
	}

	sessions, err := c.CultivationService.SessionRepo.Recent(character.ID, 20)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}
