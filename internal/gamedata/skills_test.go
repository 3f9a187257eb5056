package gamedata

import "testing"

func TestTotalSkillPoints(t *testing.T) {
	cases := []struct {
		level int
		realm Realm
		want  int
	}{
		{1, QiRefining, 1},         // 1×1 + 0 + 0
		{10, QiRefining, 12},       // 10 + 2 + 0
		{10, Foundation, 15},       // 10 + 2 + 3
		{25, GoldenCore, 35},       // 25 + 4 + 6
		{50, SpiritSevering, 72},   // 50 + 10 + 12
	}
	for _, c := range cases {
		if got := TotalSkillPoints(c.level, c.realm); got != c.want {
			t.Errorf("TotalSkillPoints(%d, %s) = %d, want %d", c.level, c.realm, got, c.want)
		}
	}
}

func TestTierCost(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 3, 4: 5}
	for tier, want := range cases {
		if got := TierCost(tier); got != want {
			t.Errorf("TierCost(%d) = %d, want %d", tier, got, want)
		}
	}
	if got := TierCost(99); got != 1 {
		t.Errorf("TierCost(99) = %d, want default 1", got)
	}
}

func TestSkillTreesIntegrity(t *testing.T) {
	for _, sect := range AllSects {
		tree, ok := SkillTrees[sect]
		if !ok || len(tree) == 0 {
			t.Fatalf("sect %s has no skill tree", sect)
		}

		ids := map[string]bool{}
		for _, skill := range tree {
			if ids[skill.ID] {
				t.Errorf("duplicate skill id %s in sect %s", skill.ID, sect)
			}
			ids[skill.ID] = true

			if skill.Sect != sect {
				t.Errorf("skill %s carries sect %s, expected %s", skill.ID, skill.Sect, sect)
			}
			if skill.Tier < 1 || skill.Tier > 4 {
				t.Errorf("skill %s has tier %d out of range", skill.ID, skill.Tier)
			}
			if skill.MaxLevel <= 0 {
				t.Errorf("skill %s has non-positive max level", skill.ID)
			}
			if len(skill.Effects) == 0 {
				t.Errorf("skill %s has no effects", skill.ID)
			}
		}

		// 前置功法必须指向同宗门已定义的功法
		for _, skill := range tree {
			for _, prereq := range skill.Requirements.PrerequisiteSkills {
				if !ids[prereq] {
					t.Errorf("skill %s requires unknown prerequisite %s", skill.ID, prereq)
				}
			}
		}
	}
}

func TestCanUnlockSkill(t *testing.T) {
	skill, ok := SkillByID(SectSword, "sword_crit_edge")
	if !ok {
		t.Fatal("sword_crit_edge not found")
	}

	// 等级不足
	if CanUnlockSkill(skill, 10, Foundation, []string{"sword_heart"}) {
		t.Error("should reject: level below requirement")
	}
	// 境界不足
	if CanUnlockSkill(skill, 15, QiRefining, []string{"sword_heart"}) {
		t.Error("should reject: realm below requirement")
	}
	// 缺少前置功法
	if CanUnlockSkill(skill, 15, Foundation, nil) {
		t.Error("should reject: missing prerequisite")
	}
	// 全部满足
	if !CanUnlockSkill(skill, 15, Foundation, []string{"sword_heart"}) {
		t.Error("should allow unlock when all requirements met")
	}
	// 境界高于要求同样放行
	if !CanUnlockSkill(skill, 15, GoldenCore, []string{"sword_heart"}) {
		t.Error("higher realm should satisfy realm requirement")
	}
}

func TestSkillByID(t *testing.T) {
	if _, ok := SkillByID(SectSword, "sword_basic_qi"); !ok {
		t.Error("sword_basic_qi should exist")
	}
	if _, ok := SkillByID(SectMedical, "sword_basic_qi"); ok {
		t.Error("sword skill should not resolve under medical sect")
	}
	if _, ok := SkillByID(SectSword, "no_such_skill"); ok {
		t.Error("unknown id should not resolve")
	}
}
