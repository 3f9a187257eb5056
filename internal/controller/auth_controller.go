package controller

import (
	"errors"

	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/service"
	"xiuxian_game_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService    *service.AuthService
	StorageService *service.StorageService
}

func NewAuthController(authService *service.AuthService, storageService *service.StorageService) *AuthController {
	return &AuthController{
		AuthService:    authService,
		StorageService: storageService,
	}
}

// RegisterRequest 注册请求
// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register godoc
// @Summary 注册新玩家
// @Description 使用邮箱和密码注册玩家账号
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "玩家注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱或用户名已被注册"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	player := &model.Player{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := c.AuthService.Register(player); err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrUsernameRegistered):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": player.ID})
}

// LoginRequest 登录请求
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 玩家登录
// @Description 校验凭证并签发JWT
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭证"
// @Success 200 {object} util.Response{data=object} "登录成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "凭证无效"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, "邮箱或密码错误")
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// Profile godoc
// @Summary 当前玩家信息
// @Tags 认证
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Player}
// @Failure 401 {object} util.Response "未登录"
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	player := c.AuthService.GetCurrentPlayer(ctx)
	if player == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, player)
}

// UploadAvatar godoc
// @Summary 上传玩家头像
// @Tags 认证
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   avatar formData file true "头像图片，2MB以内"
// @Success 200 {object} util.Response{data=object} "上传成功"
// @Failure 400 {object} util.Response "文件不合法"
// @Router /api/profile/avatar [post]
func (c *AuthController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetPlayerFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "缺少头像文件")
		return
	}

	url, err := c.StorageService.UploadAvatar(ctx.Request.Context(), claims.PlayerID, file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}
