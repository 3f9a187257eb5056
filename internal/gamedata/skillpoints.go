package gamedata

// 技能点来源
const (
	SkillPointsPerLevel        = 1 // 每级
	SkillPointsPerMilestone    = 2 // 每逢10级
	SkillPointsPerBreakthrough = 3 // 每次突破（按境界序号计）
)

// TotalSkillPoints 技能点总额是推导值，不落库，随用随算：
// level×1 + floor(level/10)×2 + 境界序号×3
func TotalSkillPoints(level int, realm Realm) int {
	total := level * SkillPointsPerLevel
	total += (level / 10) * SkillPointsPerMilestone
	total += RealmIndex(realm) * SkillPointsPerBreakthrough
	return total
}

// SkillPointSources 技能点来源拆分，仅用于前端展示。
// breakthrough 一项取总额30%的近似值，并非账本口径。
type SkillPointSources struct {
	LevelUp      int `json:"levelUp"`
	Breakthrough int `json:"breakthrough"`
	Milestones   int `json:"milestones"`
	Achievements int `json:"achievements"`
	Events       int `json:"events"`
}

// ApproximateSources 展示用来源拆分
func ApproximateSources(level int, realm Realm) SkillPointSources {
	total := TotalSkillPoints(level, realm)
	return SkillPointSources{
		LevelUp:      level * SkillPointsPerLevel,
		Breakthrough: total * 30 / 100,
		Milestones:   (level / 10) * SkillPointsPerMilestone,
	}
}
