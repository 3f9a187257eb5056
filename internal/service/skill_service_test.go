package service

import (
	"errors"
	"testing"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/util"
)

func TestAvailablePoints(t *testing.T) {
	// 总额按等级与境界推导，可用 = 总额 - 已分配
	total := gamedata.TotalSkillPoints(10, gamedata.Foundation)
	if got := AvailablePoints(10, gamedata.Foundation, 0); got != total {
		t.Errorf("available = %d, want %d", got, total)
	}
	if got := AvailablePoints(10, gamedata.Foundation, 4); got != total-4 {
		t.Errorf("available = %d, want %d", got, total-4)
	}
}

func TestAggregateSkillEffects(t *testing.T) {
	skills := []model.CharacterSkill{
		{SkillID: "sword_basic_qi", SkillLevel: 3}, // 攻击 2 + 2×3 = 8
		{SkillID: "sword_heart", SkillLevel: 2},    // 修速 0.02 + 0.01×2 = 0.04
		{SkillID: "sword_swift_step", SkillLevel: 0}, // 0级已解锁未升级，不生效
	}

	effects := AggregateSkillEffects(gamedata.SectSword, skills)

	if got := effects.StatBonuses[gamedata.StatAttack]; got != 8 {
		t.Errorf("attack bonus = %v, want 8", got)
	}
	if _, ok := effects.StatBonuses[gamedata.StatSpeed]; ok {
		t.Error("level 0 skill should contribute nothing")
	}

	want := 0.02 + 0.01*2
	if effects.CultivationSpeedBonus != want {
		t.Errorf("cultivation speed bonus = %v, want %v", effects.CultivationSpeedBonus, want)
	}
}

func TestAggregateSkillEffectsIgnoresForeignSkills(t *testing.T) {
	// 数据异常时（他宗功法混入）直接跳过，不污染汇总
	skills := []model.CharacterSkill{
		{SkillID: "lightning_body", SkillLevel: 5},
	}
	effects := AggregateSkillEffects(gamedata.SectSword, skills)
	if len(effects.StatBonuses) != 0 || effects.CultivationSpeedBonus != 0 {
		t.Errorf("foreign skill leaked into effects: %+v", effects)
	}
}

func TestAggregateSkillEffectsMultiEffectSkill(t *testing.T) {
	skills := []model.CharacterSkill{
		{SkillID: "sword_crit_edge", SkillLevel: 1},
	}
	effects := AggregateSkillEffects(gamedata.SectSword, skills)

	if got := effects.StatBonuses[gamedata.StatCriticalRate]; got != 0.01+0.01 {
		t.Errorf("crit rate bonus = %v, want 0.02", got)
	}
	if got := effects.StatBonuses[gamedata.StatCriticalDamage]; got != 0.05+0.05 {
		t.Errorf("crit damage bonus = %v, want 0.1", got)
	}
}

func TestCheckUpgrade(t *testing.T) {
	basic, _ := gamedata.SkillByID(gamedata.SectSword, "sword_basic_qi")

	cases := []struct {
		name      string
		cs        *model.CharacterSkill
		available int
		wantErr   error
	}{
		{"未解锁", nil, 10, util.ErrSkillLocked},
		{"已满级", &model.CharacterSkill{SkillLevel: basic.MaxLevel}, 10, util.ErrSkillMaxLevel},
		{"点数不足", &model.CharacterSkill{SkillLevel: 1}, 0, util.ErrSkillPointsInsufficient},
		{"通过", &model.CharacterSkill{SkillLevel: 1}, 1, nil},
	}
	for _, c := range cases {
		err := CheckUpgrade(basic, c.cs, 10, gamedata.QiRefining, c.available, []string{"sword_basic_qi"})
		if !errors.Is(err, c.wantErr) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.wantErr)
		}
	}
}

func TestCheckUpgradeRejectsUnmetRequirements(t *testing.T) {
	// 前置功法缺失时即使点数充足也拒绝
	crit, _ := gamedata.SkillByID(gamedata.SectSword, "sword_crit_edge")
	cs := &model.CharacterSkill{SkillLevel: 1}

	err := CheckUpgrade(crit, cs, 15, gamedata.Foundation, 10, []string{"sword_crit_edge"})
	if !errors.Is(err, util.ErrSkillRequirementsUnmet) {
		t.Errorf("err = %v, want %v", err, util.ErrSkillRequirementsUnmet)
	}

	// 补上前置后通过
	err = CheckUpgrade(crit, cs, 15, gamedata.Foundation, 10, []string{"sword_heart", "sword_crit_edge"})
	if err != nil {
		t.Errorf("expected pass with prerequisite unlocked, got %v", err)
	}
}

func TestAggregateSkillEffectsIndependentOfActiveFlag(t *testing.T) {
	// 点数账本与效果汇总读同一行集，is_active 不参与过滤
	skills := []model.CharacterSkill{
		{SkillID: "sword_basic_qi", SkillLevel: 2, IsActive: false},
	}
	effects := AggregateSkillEffects(gamedata.SectSword, skills)
	if got := effects.StatBonuses[gamedata.StatAttack]; got != 2+2*2 {
		t.Errorf("attack bonus = %v, want 6", got)
	}
}
