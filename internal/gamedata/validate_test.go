package gamedata

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCharacterName(t *testing.T) {
	cases := []struct {
		name string
		want error
	}{
		{"张三", nil},
		{"Sword Master 9", nil},
		{"  李四  ", nil}, // 首尾空白修剪后合法
		{"", ErrNameEmpty},
		{"   ", ErrNameEmpty},
		{"a", ErrNameTooShort},
		{strings.Repeat("长", 21), ErrNameTooLong},
		{"bad!name", ErrNameBadChars},
		{"under_score", ErrNameBadChars},
		{"admin123", ErrNameForbidden},
		{"SuperGM", ErrNameForbidden},
		{"System的人", ErrNameForbidden},
	}
	for _, c := range cases {
		err := ValidateCharacterName(c.name)
		if !errors.Is(err, c.want) {
			t.Errorf("ValidateCharacterName(%q) = %v, want %v", c.name, err, c.want)
		}
	}
}
