package gamedata

import "testing"

func TestExpToNextLevel(t *testing.T) {
	cases := []struct {
		level int
		want  int64
	}{
		{1, 100},
		{2, 115},
		{3, 132},
		{9, 305},
	}
	for _, c := range cases {
		if got := ExpToNextLevel(c.level); got != c.want {
			t.Errorf("ExpToNextLevel(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestExpCurveIsStrictlyIncreasing(t *testing.T) {
	for l := 1; l < 100; l++ {
		if ExpToNextLevel(l+1) <= ExpToNextLevel(l) {
			t.Fatalf("curve not increasing at level %d: %d -> %d",
				l, ExpToNextLevel(l), ExpToNextLevel(l+1))
		}
	}
}

func TestTotalExpToLevel(t *testing.T) {
	if got := TotalExpToLevel(1); got != 0 {
		t.Errorf("TotalExpToLevel(1) = %d, want 0", got)
	}
	if got := TotalExpToLevel(2); got != 100 {
		t.Errorf("TotalExpToLevel(2) = %d, want 100", got)
	}
	// 100+115+132+152+174+201+231+266+305
	if got := TotalExpToLevel(10); got != 1676 {
		t.Errorf("TotalExpToLevel(10) = %d, want 1676", got)
	}
}

func TestResolveLevelSingleLevel(t *testing.T) {
	res := ResolveLevel(100, 1, QiRefining)
	if res.NewLevel != 2 || res.LevelsGained != 1 {
		t.Fatalf("got level %d (+%d), want 2 (+1)", res.NewLevel, res.LevelsGained)
	}
	if res.CurrentLevelExp != 0 {
		t.Errorf("CurrentLevelExp = %d, want 0", res.CurrentLevelExp)
	}
	if res.ExpToNext != 115 {
		t.Errorf("ExpToNext = %d, want 115", res.ExpToNext)
	}
}

func TestResolveLevelMultiLevel(t *testing.T) {
	// 350 = 100 + 115 + 132 + 3
	res := ResolveLevel(350, 1, QiRefining)
	if res.NewLevel != 4 || res.LevelsGained != 3 {
		t.Fatalf("got level %d (+%d), want 4 (+3)", res.NewLevel, res.LevelsGained)
	}
	if res.CurrentLevelExp != 3 {
		t.Errorf("CurrentLevelExp = %d, want 3", res.CurrentLevelExp)
	}
}

func TestResolveLevelStopsAtRealmCap(t *testing.T) {
	// 炼气期上限10级，经验再多也不越级
	res := ResolveLevel(1_000_000, 1, QiRefining)
	if res.NewLevel != 10 {
		t.Fatalf("got level %d, want 10", res.NewLevel)
	}
	if !res.AtCap {
		t.Error("expected AtCap")
	}

	// 突破到筑基后同样的经验可以继续升
	res = ResolveLevel(1_000_000, 10, Foundation)
	if res.NewLevel <= 10 {
		t.Errorf("after realm advance expected level > 10, got %d", res.NewLevel)
	}
	if res.NewLevel > 20 {
		t.Errorf("foundation cap is 20, got %d", res.NewLevel)
	}
}

func TestResolveLevelExactBoundary(t *testing.T) {
	res := ResolveLevel(1676, 9, QiRefining)
	if res.NewLevel != 10 {
		t.Fatalf("got level %d, want 10", res.NewLevel)
	}
	if res.CurrentLevelExp != 0 {
		t.Errorf("CurrentLevelExp = %d, want 0", res.CurrentLevelExp)
	}
	if !res.AtCap {
		t.Error("level 10 in qi_refining should be at cap")
	}
}

func TestMilestoneRewardsCoverEveryTenthLevel(t *testing.T) {
	for _, lv := range []int{10, 20, 30, 40, 50} {
		if _, ok := MilestoneRewards[lv]; !ok {
			t.Errorf("missing milestone reward for level %d", lv)
		}
	}
	if MilestoneRewards[10].Gold != 1000 || MilestoneRewards[10].SpiritStones != 10 {
		t.Errorf("unexpected level 10 milestone: %+v", MilestoneRewards[10])
	}
}
