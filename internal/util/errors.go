package util

import "errors"

var (
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrUsernameRegistered   = errors.New("该用户名已被使用")
	ErrCharacterNotFound    = errors.New("角色不存在")
	ErrCharacterNameTaken   = errors.New("角色名已被使用")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrAlreadyCultivating   = errors.New("角色已在修炼中")
	ErrNotCultivating       = errors.New("角色当前未在修炼")
	ErrSkillNotFound        = errors.New("功法不存在")
	ErrSkillAlreadyUnlocked = errors.New("功法已解锁")
	ErrClaimAlreadyUsed     = errors.New("离线收益已领取")

	// 业务规则拒绝，控制器映射为400；其余错误一律走 LogInternalError
	ErrBreakthroughIneligible  = errors.New("未满足突破条件")
	ErrSkillLocked             = errors.New("功法尚未解锁")
	ErrSkillMaxLevel           = errors.New("功法已达最高等级")
	ErrSkillPointsInsufficient = errors.New("技能点不足")
	ErrSkillRequirementsUnmet  = errors.New("未满足功法解锁条件")
)
