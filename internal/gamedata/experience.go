package gamedata

import "math"

// 经验曲线常量
const (
	BaseExpToLevel = 100
	ExpGrowthRate  = 1.15
)

// 经验来源数值
const (
	ExpBreakthrough       = 1000 // 每次突破成功
	ExpDailyLogin         = 25   // 每日登录
	ExpPerCultivationHour = 10   // 每小时修炼
)

// 升级奖励，按升级次数线性发放
const (
	LevelUpStatIncrease   = 5   // 全属性+5
	LevelUpHealthIncrease = 100 // 生命上限+100
	LevelUpManaIncrease   = 50  // 法力上限+50
	LevelUpGoldBonus      = 100 // 金币+100
)

// MilestoneReward 整十级里程碑奖励
type MilestoneReward struct {
	Gold         int64  `json:"gold"`
	SpiritStones int64  `json:"spiritStones"`
	SpecialItem  string `json:"specialItem"`
}

// MilestoneRewards 每逢10级额外奖励
var MilestoneRewards = map[int]MilestoneReward{
	10: {Gold: 1000, SpiritStones: 10, SpecialItem: "foundation_pill"},
	20: {Gold: 2500, SpiritStones: 25, SpecialItem: "golden_core_pill"},
	30: {Gold: 5000, SpiritStones: 50, SpecialItem: "nascent_soul_pill"},
	40: {Gold: 10000, SpiritStones: 100, SpecialItem: "spirit_severing_pill"},
	50: {Gold: 20000, SpiritStones: 200, SpecialItem: "void_refinement_pill"},
}

// ExpToNextLevel 当前等级升到下一级所需经验
func ExpToNextLevel(level int) int64 {
	return int64(math.Floor(BaseExpToLevel * math.Pow(ExpGrowthRate, float64(level-1))))
}

// TotalExpToLevel 从1级升到 targetLevel 的累计经验
func TotalExpToLevel(targetLevel int) int64 {
	var total int64
	for i := 1; i < targetLevel; i++ {
		total += ExpToNextLevel(i)
	}
	return total
}

// LevelResolution 等级结算结果
type LevelResolution struct {
	NewLevel        int   // 结算后等级
	LevelsGained    int   // 本次提升的等级数
	CurrentLevelExp int64 // 新等级内已有经验
	ExpToNext       int64 // 新等级升级所需经验
	AtCap           bool  // 是否达到境界等级上限
}

// ResolveLevel 根据累计经验逐级结算等级，受境界等级上限约束。
// 无论经验多高都不会越过上限，突破是唯一的出路。
func ResolveLevel(totalExp int64, currentLevel int, realm Realm) LevelResolution {
	cap := LevelCap(realm)
	newLevel := currentLevel

	for newLevel < cap && totalExp >= TotalExpToLevel(newLevel)+ExpToNextLevel(newLevel) {
		newLevel++
	}
	if newLevel > cap {
		newLevel = cap
	}

	return LevelResolution{
		NewLevel:        newLevel,
		LevelsGained:    newLevel - currentLevel,
		CurrentLevelExp: totalExp - TotalExpToLevel(newLevel),
		ExpToNext:       ExpToNextLevel(newLevel),
		AtCap:           newLevel >= cap,
	}
}
