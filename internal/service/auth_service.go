package service

import (
	"errors"

	"xiuxian_game_backend/internal/config"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/repository"
	"xiuxian_game_backend/internal/util"
	"xiuxian_game_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	PlayerRepo *repository.PlayerRepository
	Cfg        *config.Config
}

func NewAuthService(playerRepo *repository.PlayerRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		PlayerRepo: playerRepo,
		Cfg:        cfg,
	}
}

func (s *AuthService) Register(player *model.Player) error {
	_, err := s.PlayerRepo.FindByEmail(player.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	_, err = s.PlayerRepo.FindByUsername(player.Username)
	if err == nil {
		return util.ErrUsernameRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(player.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	player.Password = string(hashedPassword)

	if err := s.PlayerRepo.Create(player); err != nil {
		return err
	}

	logger.Log.Info("player registered", zap.Uint("playerId", player.ID))
	return nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	player, err := s.PlayerRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	if player.Disabled {
		return "", errors.New("账号已被禁用")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := s.PlayerRepo.UpdateLastLogin(player.ID); err != nil {
		logger.Log.Warn("failed to update last login", zap.Uint("playerId", player.ID), zap.Error(err))
	}

	return util.GenerateJWT(player, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentPlayer(c *gin.Context) *model.Player {
	claims := util.GetPlayerFromContext(c)
	if claims == nil {
		return nil
	}

	player, _ := s.PlayerRepo.FindByID(claims.PlayerID)
	return player
}
