package gamedata

import (
	"errors"
	"regexp"
	"strings"
)

// 角色名规则
const (
	NameMinLength = 2
	NameMaxLength = 20
)

var (
	namePattern    = regexp.MustCompile(`^[\p{L}0-9 ]+$`)
	forbiddenWords = []string{"admin", "mod", "gm", "system", "null", "undefined"}
)

var (
	ErrNameEmpty     = errors.New("角色名不能为空")
	ErrNameTooShort  = errors.New("角色名至少需要2个字符")
	ErrNameTooLong   = errors.New("角色名不能超过20个字符")
	ErrNameBadChars  = errors.New("角色名只能包含字母、数字和空格")
	ErrNameForbidden = errors.New("角色名包含禁用词")
)

// ValidateCharacterName 角色名校验，任何违规都在落库前拦截
func ValidateCharacterName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameEmpty
	}
	if len([]rune(trimmed)) < NameMinLength {
		return ErrNameTooShort
	}
	if len([]rune(trimmed)) > NameMaxLength {
		return ErrNameTooLong
	}
	if !namePattern.MatchString(trimmed) {
		return ErrNameBadChars
	}
	lower := strings.ToLower(trimmed)
	for _, w := range forbiddenWords {
		if strings.Contains(lower, w) {
			return ErrNameForbidden
		}
	}
	return nil
}
