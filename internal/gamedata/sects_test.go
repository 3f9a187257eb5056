package gamedata

import "testing"

func TestSectTableComplete(t *testing.T) {
	if len(AllSects) != 4 {
		t.Fatalf("expected 4 sects, got %d", len(AllSects))
	}
	for _, s := range AllSects {
		if _, ok := SectTable[s]; !ok {
			t.Errorf("sect %s missing from table", s)
		}
		if _, ok := SectCultivationBonus[s]; !ok {
			t.Errorf("sect %s missing cultivation bonus", s)
		}
	}
}

func TestInitialStatsAppliesSectBonus(t *testing.T) {
	stats := InitialStats(SectSword)
	if stats.Attack != BaseStats.Attack+5 {
		t.Errorf("sword attack = %d, want %d", stats.Attack, BaseStats.Attack+5)
	}
	if stats.Speed != BaseStats.Speed+3 {
		t.Errorf("sword speed = %d, want %d", stats.Speed, BaseStats.Speed+3)
	}
	if stats.CriticalRate != BaseStats.CriticalRate+0.02 {
		t.Errorf("sword crit rate = %v", stats.CriticalRate)
	}

	// 无加成的属性保持基础值
	if stats.Defense != BaseStats.Defense {
		t.Errorf("sword defense = %d, want base %d", stats.Defense, BaseStats.Defense)
	}
}

func TestInitialResources(t *testing.T) {
	health, mana := InitialResources(SectMedical)
	if health != BaseHealth+30 {
		t.Errorf("medical health = %d, want %d", health, BaseHealth+30)
	}
	if mana != BaseMana+15 {
		t.Errorf("medical mana = %d, want %d", mana, BaseMana+15)
	}

	health, mana = InitialResources(SectSword)
	if health != BaseHealth || mana != BaseMana {
		t.Errorf("sword resources = %d/%d, want base %d/%d", health, mana, BaseHealth, BaseMana)
	}
}

func TestCultivationSpeed(t *testing.T) {
	// 1 + 宗门 + 境界 + 功法
	got := CultivationSpeed(SectLightning, QiRefining, 0)
	want := 1.0 + SectCultivationBonus[SectLightning]
	if got != want {
		t.Errorf("lightning qi_refining speed = %v, want %v", got, want)
	}

	got = CultivationSpeed(SectSword, Foundation, 0.05)
	want = 1.0 + SectCultivationBonus[SectSword] + RealmTable[Foundation].CultivationSpeedBonus + 0.05
	if got != want {
		t.Errorf("sword foundation speed = %v, want %v", got, want)
	}
}
