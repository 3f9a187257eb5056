package service

import (
	"errors"
	"strings"
	"testing"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
	"xiuxian_game_backend/internal/util"
)

func breakthroughReadyCharacter() *model.Character {
	c := testCharacter()
	c.Level = 10
	c.TotalExperience = gamedata.TotalExpToLevel(10)
	c.CultivationPoints = 10000
	return c
}

func TestCheckEligibility(t *testing.T) {
	c := breakthroughReadyCharacter()
	e := CheckEligibility(c)
	if !e.Eligible {
		t.Fatalf("expected eligible, reasons: %v", e.Reasons)
	}
	if e.NextRealm != gamedata.Foundation {
		t.Errorf("next realm = %s, want foundation", e.NextRealm)
	}
	if e.PointsRequired != 10000 {
		t.Errorf("points required = %d, want 10000", e.PointsRequired)
	}
}

func TestCheckEligibilityRejectsBelowLevelCap(t *testing.T) {
	c := breakthroughReadyCharacter()
	c.Level = 9
	if e := CheckEligibility(c); e.Eligible {
		t.Error("should reject below realm level cap")
	}
}

func TestCheckEligibilityRejectsInsufficientPoints(t *testing.T) {
	c := breakthroughReadyCharacter()
	c.CultivationPoints = 9999
	if e := CheckEligibility(c); e.Eligible {
		t.Error("should reject with insufficient cultivation points")
	}
}

func TestCheckEligibilityRejectsMaxRealm(t *testing.T) {
	c := breakthroughReadyCharacter()
	c.Realm = gamedata.TrueImmortal
	c.Level = 100
	c.CultivationPoints = 99999999
	e := CheckEligibility(c)
	if e.Eligible {
		t.Error("true_immortal has no next realm")
	}
	if e.NextRealm != "" {
		t.Errorf("next realm = %s, want empty", e.NextRealm)
	}
}

func TestResolveBreakthroughFailure(t *testing.T) {
	c := breakthroughReadyCharacter()
	snapshot := *c

	// 0.95 >= 0.90 判定失败
	result := ResolveBreakthrough(c, 0.95)

	if result.Success {
		t.Fatal("draw 0.95 should fail")
	}
	if result.PointsLost != 5000 {
		t.Errorf("points lost = %d, want 5000", result.PointsLost)
	}
	if c.CultivationPoints != 5000 {
		t.Errorf("points = %d, want 5000", c.CultivationPoints)
	}
	// 失败不改境界和属性
	if c.Realm != snapshot.Realm {
		t.Errorf("realm changed on failure: %s", c.Realm)
	}
	if c.Attack != snapshot.Attack || c.MaxHealth != snapshot.MaxHealth {
		t.Error("stats changed on failure")
	}
}

func TestResolveBreakthroughSuccess(t *testing.T) {
	c := breakthroughReadyCharacter()
	c.Health = 1
	c.Mana = 1
	baseAttack := c.Attack

	result := ResolveBreakthrough(c, 0.5)

	if !result.Success {
		t.Fatal("draw 0.5 should succeed")
	}
	if c.Realm != gamedata.Foundation {
		t.Fatalf("realm = %s, want foundation", c.Realm)
	}
	if c.CultivationPoints != 0 {
		t.Errorf("points = %d, want 0 after success", c.CultivationPoints)
	}

	// 属性按 1.0 → 1.2 倍率换算，向下取整
	wantAttack := int(float64(baseAttack) / 1.0 * 1.2)
	if c.Attack != wantAttack {
		t.Errorf("attack = %d, want %d", c.Attack, wantAttack)
	}

	// 突破成功后状态回满
	if c.Health != c.MaxHealth {
		t.Errorf("health = %d, want full %d", c.Health, c.MaxHealth)
	}
	if c.Mana != c.MaxMana {
		t.Errorf("mana = %d, want full %d", c.Mana, c.MaxMana)
	}

	if result.ExpReward != gamedata.ExpBreakthrough {
		t.Errorf("exp reward = %d, want %d", result.ExpReward, gamedata.ExpBreakthrough)
	}
	if result.NewSkillSlots != gamedata.RealmTable[gamedata.Foundation].NewSkillSlots {
		t.Errorf("new skill slots = %d", result.NewSkillSlots)
	}
}

func TestResolveBreakthroughFailureFloorsOddPoints(t *testing.T) {
	c := breakthroughReadyCharacter()
	c.CultivationPoints = 10001

	result := ResolveBreakthrough(c, 0.99)
	if result.PointsLost != 5000 {
		t.Errorf("points lost = %d, want floor(10001/2) = 5000", result.PointsLost)
	}
	if c.CultivationPoints != 5001 {
		t.Errorf("points = %d, want 5001", c.CultivationPoints)
	}
}

func TestResolveBreakthroughBoundaryDraw(t *testing.T) {
	// draw 恰好等于成功率时判定失败
	c := breakthroughReadyCharacter()
	if result := ResolveBreakthrough(c, BreakthroughSuccessRate); result.Success {
		t.Error("draw equal to success rate should fail")
	}

	c = breakthroughReadyCharacter()
	if result := ResolveBreakthrough(c, 0.8999); !result.Success {
		t.Error("draw just below success rate should succeed")
	}
}

func TestIneligibilityErrorCarriesSentinel(t *testing.T) {
	c := breakthroughReadyCharacter()
	c.CultivationPoints = 9999

	err := ineligibilityError(CheckEligibility(c))
	if !errors.Is(err, util.ErrBreakthroughIneligible) {
		t.Fatalf("ineligibility error should match sentinel, got %v", err)
	}
	if !strings.Contains(err.Error(), "修为不足") {
		t.Errorf("error should carry the rejection reason, got %q", err.Error())
	}

	// 无具体原因时退回哨兵本身
	ready := breakthroughReadyCharacter()
	e := CheckEligibility(ready)
	e.Reasons = nil
	if err := ineligibilityError(e); !errors.Is(err, util.ErrBreakthroughIneligible) {
		t.Errorf("bare ineligibility should still match sentinel, got %v", err)
	}
}
