package gamedata

import "testing"

func TestRealmTableComplete(t *testing.T) {
	if len(RealmOrder) != 9 {
		t.Fatalf("expected 9 realms, got %d", len(RealmOrder))
	}
	for _, r := range RealmOrder {
		if _, ok := RealmTable[r]; !ok {
			t.Errorf("realm %s missing from table", r)
		}
	}
}

func TestRealmProgressionIsMonotonic(t *testing.T) {
	for i := 1; i < len(RealmOrder); i++ {
		prev := RealmTable[RealmOrder[i-1]]
		cur := RealmTable[RealmOrder[i]]
		if cur.PointsRequired <= prev.PointsRequired {
			t.Errorf("%s points %d not above %s points %d",
				cur.ID, cur.PointsRequired, prev.ID, prev.PointsRequired)
		}
		if cur.StatMultiplier <= prev.StatMultiplier {
			t.Errorf("%s multiplier %v not above %s multiplier %v",
				cur.ID, cur.StatMultiplier, prev.ID, prev.StatMultiplier)
		}
		if cur.LevelMin != prev.LevelMax+1 {
			t.Errorf("%s level range [%d,%d] does not follow %s [%d,%d]",
				cur.ID, cur.LevelMin, cur.LevelMax, prev.ID, prev.LevelMin, prev.LevelMax)
		}
	}
}

func TestNextRealm(t *testing.T) {
	next, ok := NextRealm(QiRefining)
	if !ok || next != Foundation {
		t.Errorf("NextRealm(qi_refining) = %s, %v", next, ok)
	}
	if _, ok := NextRealm(TrueImmortal); ok {
		t.Error("true_immortal should have no next realm")
	}
}

func TestRealmForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  Realm
	}{
		{1, QiRefining},
		{10, QiRefining},
		{11, Foundation},
		{25, GoldenCore},
		{81, TrueImmortal},
		{100, TrueImmortal},
	}
	for _, c := range cases {
		if got := RealmForLevel(c.level); got != c.want {
			t.Errorf("RealmForLevel(%d) = %s, want %s", c.level, got, c.want)
		}
	}
}

func TestLevelCap(t *testing.T) {
	if got := LevelCap(QiRefining); got != 10 {
		t.Errorf("LevelCap(qi_refining) = %d, want 10", got)
	}
	if got := LevelCap(TrueImmortal); got != 100 {
		t.Errorf("LevelCap(true_immortal) = %d, want 100", got)
	}
}

func TestFoundationRealmValues(t *testing.T) {
	info := RealmTable[Foundation]
	if info.PointsRequired != 10000 {
		t.Errorf("foundation points = %d, want 10000", info.PointsRequired)
	}
	if info.StatMultiplier != 1.2 {
		t.Errorf("foundation multiplier = %v, want 1.2", info.StatMultiplier)
	}
	if info.CultivationSpeedBonus != 0.1 {
		t.Errorf("foundation speed bonus = %v, want 0.1", info.CultivationSpeedBonus)
	}
}
