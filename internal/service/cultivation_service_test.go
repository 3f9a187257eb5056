package service

import (
	"testing"
	"time"

	"xiuxian_game_backend/internal/model"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func cultivatingCharacter(speed float64) *model.Character {
	return &model.Character{
		CultivationSpeed: speed,
		IsCultivating:    true,
		LastCheckpointAt: baseTime,
	}
}

func TestPointsForMinutes(t *testing.T) {
	cases := []struct {
		speed   float64
		minutes int64
		want    int64
	}{
		{1.0, 60, 10},  // 基础时速
		{1.0, 6, 1},    // 每6分钟1点
		{1.0, 5, 0},    // 不足最小粒度向下取整
		{2.0, 30, 10},  // 速度翻倍
		{1.5, 60, 15},
		{1.0, 0, 0},
	}
	for _, c := range cases {
		if got := PointsForMinutes(c.speed, c.minutes); got != c.want {
			t.Errorf("PointsForMinutes(%v, %d) = %d, want %d", c.speed, c.minutes, got, c.want)
		}
	}
}

func TestExpForMinutes(t *testing.T) {
	cases := []struct {
		minutes int64
		want    int64
	}{
		{60, 10},
		{59, 9},
		{6, 1},
		{5, 0},
		{0, 0},
	}
	for _, c := range cases {
		if got := ExpForMinutes(c.minutes); got != c.want {
			t.Errorf("ExpForMinutes(%d) = %d, want %d", c.minutes, got, c.want)
		}
	}
}

func TestElapsedMinutes(t *testing.T) {
	if got := ElapsedMinutes(baseTime, baseTime.Add(90*time.Second)); got != 1 {
		t.Errorf("90s = %d minutes, want 1", got)
	}
	if got := ElapsedMinutes(baseTime, baseTime.Add(59*time.Second)); got != 0 {
		t.Errorf("59s = %d minutes, want 0", got)
	}
	// 时钟回拨不产生负值
	if got := ElapsedMinutes(baseTime, baseTime.Add(-time.Hour)); got != 0 {
		t.Errorf("negative interval = %d, want 0", got)
	}
}

func TestCheckpointAccrues(t *testing.T) {
	c := cultivatingCharacter(1.0)
	now := baseTime.Add(time.Hour)

	gained := Checkpoint(c, now)
	if gained != 10 {
		t.Errorf("gained = %d, want 10", gained)
	}
	if c.CultivationPoints != 10 {
		t.Errorf("points = %d, want 10", c.CultivationPoints)
	}
	if c.TotalCultivationTime != 60 {
		t.Errorf("total minutes = %d, want 60", c.TotalCultivationTime)
	}
	if !c.LastCheckpointAt.Equal(now) {
		t.Errorf("checkpoint not advanced: %v", c.LastCheckpointAt)
	}
}

func TestCheckpointIdempotent(t *testing.T) {
	c := cultivatingCharacter(1.0)
	now := baseTime.Add(time.Hour)

	first := Checkpoint(c, now)
	second := Checkpoint(c, now)

	if first != 10 {
		t.Errorf("first = %d, want 10", first)
	}
	if second != 0 {
		t.Errorf("repeated checkpoint at same instant gained %d, want 0", second)
	}
	if c.CultivationPoints != 10 {
		t.Errorf("points = %d, want 10 after replay", c.CultivationPoints)
	}
}

func TestCheckpointMonotone(t *testing.T) {
	c := cultivatingCharacter(1.0)
	now := baseTime.Add(time.Hour)
	Checkpoint(c, now)

	// 更早的时间戳不能让检查点倒退
	gained := Checkpoint(c, baseTime.Add(30*time.Minute))
	if gained != 0 {
		t.Errorf("stale timestamp gained %d, want 0", gained)
	}
	if !c.LastCheckpointAt.Equal(now) {
		t.Errorf("checkpoint regressed to %v", c.LastCheckpointAt)
	}
}

func TestCheckpointAdvancesWhileIdle(t *testing.T) {
	c := cultivatingCharacter(1.0)
	c.IsCultivating = false
	now := baseTime.Add(2 * time.Hour)

	gained := Checkpoint(c, now)
	if gained != 0 {
		t.Errorf("idle character gained %d, want 0", gained)
	}
	// 闲置期不计分，但检查点照常推进，防止重新开始修炼时补算
	if !c.LastCheckpointAt.Equal(now) {
		t.Errorf("checkpoint not advanced while idle: %v", c.LastCheckpointAt)
	}
}

func TestOfflinePreviewHalvesEfficiency(t *testing.T) {
	c := cultivatingCharacter(1.0)
	c.IsCultivating = false

	points, minutes := OfflinePreview(c, baseTime.Add(4*time.Hour))
	if minutes != 240 {
		t.Errorf("minutes = %d, want 240", minutes)
	}
	// 4小时 × 10点/时 × 0.5 = 20
	if points != 20 {
		t.Errorf("points = %d, want 20", points)
	}
}

func TestOfflinePreviewCapsAt24Hours(t *testing.T) {
	c := cultivatingCharacter(1.0)
	c.IsCultivating = false

	points, minutes := OfflinePreview(c, baseTime.Add(72*time.Hour))
	if minutes != 24*60 {
		t.Errorf("minutes = %d, want %d", minutes, 24*60)
	}
	// 封顶24小时 × 10点/时 × 0.5 = 120
	if points != 120 {
		t.Errorf("points = %d, want 120", points)
	}
}

func TestOfflinePreviewZeroWhileCultivating(t *testing.T) {
	c := cultivatingCharacter(1.0)

	points, minutes := OfflinePreview(c, baseTime.Add(10*time.Hour))
	if points != 0 || minutes != 0 {
		t.Errorf("cultivating character got offline preview %d/%d, want 0/0", points, minutes)
	}
}
