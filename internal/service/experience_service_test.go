package service

import (
	"testing"

	"xiuxian_game_backend/internal/gamedata"
	"xiuxian_game_backend/internal/model"
)

func testCharacter() *model.Character {
	stats := gamedata.InitialStats(gamedata.SectSword)
	health, mana := gamedata.InitialResources(gamedata.SectSword)
	return &model.Character{
		Sect:              gamedata.SectSword,
		Realm:             gamedata.QiRefining,
		Level:             1,
		ExperienceSources: model.ExpSources{},
		CultivationSpeed:  gamedata.CultivationSpeed(gamedata.SectSword, gamedata.QiRefining, 0),
		Attack:            stats.Attack,
		Defense:           stats.Defense,
		Speed:             stats.Speed,
		CriticalRate:      stats.CriticalRate,
		CriticalDamage:    stats.CriticalDamage,
		Accuracy:          stats.Accuracy,
		Evasion:           stats.Evasion,
		SpiritualPower:    stats.SpiritualPower,
		Comprehension:     stats.Comprehension,
		Luck:              stats.Luck,
		Health:            health,
		MaxHealth:         health,
		Mana:              mana,
		MaxMana:           mana,
		Gold:              gamedata.BaseGold,
	}
}

func TestApplyExperienceNoLevelUp(t *testing.T) {
	c := testCharacter()
	outcome := ApplyExperience(c, 50, ExpSourceDailyLogin)

	if outcome.Rejected {
		t.Fatal("should not reject below cap")
	}
	if c.Level != 1 || outcome.LevelsGained != 0 {
		t.Errorf("level = %d (+%d), want 1 (+0)", c.Level, outcome.LevelsGained)
	}
	if c.TotalExperience != 50 {
		t.Errorf("total exp = %d, want 50", c.TotalExperience)
	}
	if c.ExperienceSources[ExpSourceDailyLogin] != 50 {
		t.Errorf("source ledger = %v", c.ExperienceSources)
	}
}

func TestApplyExperienceLevelUpRewards(t *testing.T) {
	c := testCharacter()
	baseAttack := c.Attack
	baseMaxHealth := c.MaxHealth
	baseGold := c.Gold

	outcome := ApplyExperience(c, 100, ExpSourceCultivation)

	if outcome.LevelsGained != 1 || c.Level != 2 {
		t.Fatalf("level = %d (+%d), want 2 (+1)", c.Level, outcome.LevelsGained)
	}
	if c.Attack != baseAttack+gamedata.LevelUpStatIncrease {
		t.Errorf("attack = %d, want %d", c.Attack, baseAttack+gamedata.LevelUpStatIncrease)
	}
	if c.MaxHealth != baseMaxHealth+gamedata.LevelUpHealthIncrease {
		t.Errorf("max health = %d, want %d", c.MaxHealth, baseMaxHealth+gamedata.LevelUpHealthIncrease)
	}
	if c.Gold != baseGold+gamedata.LevelUpGoldBonus {
		t.Errorf("gold = %d, want %d", c.Gold, baseGold+gamedata.LevelUpGoldBonus)
	}
}

func TestApplyExperienceMilestone(t *testing.T) {
	c := testCharacter()
	c.Level = 9
	c.TotalExperience = gamedata.TotalExpToLevel(9)
	baseGold := c.Gold

	outcome := ApplyExperience(c, gamedata.ExpToNextLevel(9), ExpSourceCultivation)

	if c.Level != 10 {
		t.Fatalf("level = %d, want 10", c.Level)
	}
	if len(outcome.Rewards.Milestones) != 1 || outcome.Rewards.Milestones[0].Level != 10 {
		t.Fatalf("milestones = %+v, want one at level 10", outcome.Rewards.Milestones)
	}

	milestone := gamedata.MilestoneRewards[10]
	wantGold := baseGold + gamedata.LevelUpGoldBonus + milestone.Gold
	if c.Gold != wantGold {
		t.Errorf("gold = %d, want %d", c.Gold, wantGold)
	}
	if c.SpiritStones != milestone.SpiritStones {
		t.Errorf("spirit stones = %d, want %d", c.SpiritStones, milestone.SpiritStones)
	}
	if !outcome.AtCap {
		t.Error("level 10 in qi_refining should be at cap")
	}
}

func TestApplyExperienceRejectedAtCap(t *testing.T) {
	c := testCharacter()
	c.Level = 10
	c.TotalExperience = gamedata.TotalExpToLevel(10)
	snapshot := *c

	outcome := ApplyExperience(c, 500, ExpSourceCultivation)

	if !outcome.Rejected || !outcome.AtCap {
		t.Fatal("expected rejection at realm cap")
	}
	// 拒绝时不得改动任何字段
	if c.TotalExperience != snapshot.TotalExperience {
		t.Errorf("total exp mutated: %d -> %d", snapshot.TotalExperience, c.TotalExperience)
	}
	if c.Level != snapshot.Level || c.Gold != snapshot.Gold {
		t.Error("character mutated despite rejection")
	}
	if len(c.ExperienceSources) != 0 {
		t.Errorf("source ledger mutated: %v", c.ExperienceSources)
	}
}

func TestApplyExperienceAccumulatesSources(t *testing.T) {
	c := testCharacter()
	ApplyExperience(c, 30, ExpSourceCultivation)
	ApplyExperience(c, 20, ExpSourceCultivation)
	ApplyExperience(c, 25, ExpSourceDailyLogin)

	if c.ExperienceSources[ExpSourceCultivation] != 50 {
		t.Errorf("cultivation source = %d, want 50", c.ExperienceSources[ExpSourceCultivation])
	}
	if c.ExperienceSources[ExpSourceDailyLogin] != 25 {
		t.Errorf("daily login source = %d, want 25", c.ExperienceSources[ExpSourceDailyLogin])
	}
	if c.TotalExperience != 75 {
		t.Errorf("total exp = %d, want 75", c.TotalExperience)
	}
}
