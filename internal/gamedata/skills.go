package gamedata

// SkillEffectType 功法效果类型
type SkillEffectType string

const (
	EffectStatBonus        SkillEffectType = "stat_bonus"
	EffectCultivationSpeed SkillEffectType = "cultivation_speed"
	EffectPassiveAbility   SkillEffectType = "passive_ability"
)

// StatType 属性键，用于 stat_bonus 效果
type StatType string

const (
	StatAttack         StatType = "attack"
	StatDefense        StatType = "defense"
	StatSpeed          StatType = "speed"
	StatCriticalRate   StatType = "criticalRate"
	StatCriticalDamage StatType = "criticalDamage"
	StatAccuracy       StatType = "accuracy"
	StatEvasion        StatType = "evasion"
	StatSpiritualPower StatType = "spiritualPower"
	StatComprehension  StatType = "comprehension"
	StatLuck           StatType = "luck"
)

// SkillEffect 功法效果，总值 = Value + ValuePerLevel × 功法等级
type SkillEffect struct {
	Type          SkillEffectType `json:"type"`
	StatType      StatType        `json:"statType,omitempty"`
	Value         float64         `json:"value"`
	ValuePerLevel float64         `json:"valuePerLevel"`
}

// SkillRequirements 功法解锁条件，全部满足方可解锁
type SkillRequirements struct {
	Level              int      `json:"level,omitempty"`
	Realm              Realm    `json:"realm,omitempty"`
	PrerequisiteSkills []string `json:"prerequisiteSkills,omitempty"`
}

// SectSkill 宗门功法静态定义
type SectSkill struct {
	ID           string            `json:"id"`
	Sect         Sect              `json:"sect"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Tier         int               `json:"tier"` // 1-4
	MaxLevel     int               `json:"maxLevel"`
	Requirements SkillRequirements `json:"requirements"`
	Effects      []SkillEffect     `json:"effects"`
}

// TierCosts 各阶功法每级消耗的技能点
var TierCosts = map[int]int{1: 1, 2: 2, 3: 3, 4: 5}

// TierCost 功法升级单价，未知阶默认1
func TierCost(tier int) int {
	if c, ok := TierCosts[tier]; ok {
		return c
	}
	return 1
}

// SkillTrees 各宗门功法树，按阶递进
var SkillTrees = map[Sect][]SectSkill{
	SectSword: {
		{
			ID: "sword_basic_qi", Sect: SectSword, Name: "基础剑气", Tier: 1, MaxLevel: 5,
			Description:  "凝聚剑气，强化攻击。",
			Requirements: SkillRequirements{Level: 1},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatAttack, Value: 2, ValuePerLevel: 2}},
		},
		{
			ID: "sword_swift_step", Sect: SectSword, Name: "疾风步", Tier: 1, MaxLevel: 5,
			Description:  "身法轻盈，出手更快。",
			Requirements: SkillRequirements{Level: 3},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatSpeed, Value: 1, ValuePerLevel: 1}},
		},
		{
			ID: "sword_heart", Sect: SectSword, Name: "剑心通明", Tier: 2, MaxLevel: 5,
			Description:  "剑心澄澈，修炼事半功倍。",
			Requirements: SkillRequirements{Level: 8, PrerequisiteSkills: []string{"sword_basic_qi"}},
			Effects:      []SkillEffect{{Type: EffectCultivationSpeed, Value: 0.02, ValuePerLevel: 0.01}},
		},
		{
			ID: "sword_crit_edge", Sect: SectSword, Name: "锋芒毕露", Tier: 3, MaxLevel: 3,
			Description:  "剑锋所指，一击致命。",
			Requirements: SkillRequirements{Level: 15, Realm: Foundation, PrerequisiteSkills: []string{"sword_heart"}},
			Effects: []SkillEffect{
				{Type: EffectStatBonus, StatType: StatCriticalRate, Value: 0.01, ValuePerLevel: 0.01},
				{Type: EffectStatBonus, StatType: StatCriticalDamage, Value: 0.05, ValuePerLevel: 0.05},
			},
		},
		{
			ID: "sword_immortal_slash", Sect: SectSword, Name: "仙人一剑", Tier: 4, MaxLevel: 3,
			Description:  "万剑归一，仙凡一线。",
			Requirements: SkillRequirements{Level: 25, Realm: GoldenCore, PrerequisiteSkills: []string{"sword_crit_edge"}},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatAttack, Value: 10, ValuePerLevel: 10}},
		},
	},
	SectLightning: {
		{
			ID: "lightning_body", Sect: SectLightning, Name: "雷体淬炼", Tier: 1, MaxLevel: 5,
			Description:  "以雷炼体，速度见长。",
			Requirements: SkillRequirements{Level: 1},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatSpeed, Value: 2, ValuePerLevel: 1}},
		},
		{
			ID: "lightning_eye", Sect: SectLightning, Name: "雷瞳", Tier: 1, MaxLevel: 5,
			Description:  "目蕴雷光，洞察破绽。",
			Requirements: SkillRequirements{Level: 3},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatAccuracy, Value: 0.01, ValuePerLevel: 0.01}},
		},
		{
			ID: "lightning_meditation", Sect: SectLightning, Name: "御雷诀", Tier: 2, MaxLevel: 5,
			Description:  "引雷入体，修炼神速。",
			Requirements: SkillRequirements{Level: 8, PrerequisiteSkills: []string{"lightning_body"}},
			Effects:      []SkillEffect{{Type: EffectCultivationSpeed, Value: 0.03, ValuePerLevel: 0.01}},
		},
		{
			ID: "lightning_spirit", Sect: SectLightning, Name: "雷灵附体", Tier: 3, MaxLevel: 3,
			Description:  "雷灵加身，灵力暴涨。",
			Requirements: SkillRequirements{Level: 15, Realm: Foundation, PrerequisiteSkills: []string{"lightning_meditation"}},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatSpiritualPower, Value: 3, ValuePerLevel: 3}},
		},
		{
			ID: "lightning_tribulation", Sect: SectLightning, Name: "渡劫雷法", Tier: 4, MaxLevel: 3,
			Description:  "以身引劫，雷法通天。",
			Requirements: SkillRequirements{Level: 25, Realm: GoldenCore, PrerequisiteSkills: []string{"lightning_spirit"}},
			Effects: []SkillEffect{
				{Type: EffectStatBonus, StatType: StatAttack, Value: 8, ValuePerLevel: 8},
				{Type: EffectCultivationSpeed, Value: 0.05, ValuePerLevel: 0.02},
			},
		},
	},
	SectMedical: {
		{
			ID: "medical_herb_sense", Sect: SectMedical, Name: "辨药术", Tier: 1, MaxLevel: 5,
			Description:  "识百草，明药理。",
			Requirements: SkillRequirements{Level: 1},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatComprehension, Value: 1, ValuePerLevel: 1}},
		},
		{
			ID: "medical_inner_breath", Sect: SectMedical, Name: "内息调理", Tier: 1, MaxLevel: 5,
			Description:  "调息养气，根基稳固。",
			Requirements: SkillRequirements{Level: 3},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatDefense, Value: 1, ValuePerLevel: 1}},
		},
		{
			ID: "medical_pill_aid", Sect: SectMedical, Name: "丹药辅修", Tier: 2, MaxLevel: 5,
			Description:  "以丹辅修，水磨工夫。",
			Requirements: SkillRequirements{Level: 8, PrerequisiteSkills: []string{"medical_herb_sense"}},
			Effects:      []SkillEffect{{Type: EffectCultivationSpeed, Value: 0.02, ValuePerLevel: 0.01}},
		},
		{
			ID: "medical_rebirth", Sect: SectMedical, Name: "回春妙手", Tier: 3, MaxLevel: 3,
			Description:  "生死人肉白骨。",
			Requirements: SkillRequirements{Level: 15, Realm: Foundation, PrerequisiteSkills: []string{"medical_pill_aid"}},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatLuck, Value: 2, ValuePerLevel: 2}},
		},
		{
			ID: "medical_immortal_dan", Sect: SectMedical, Name: "仙丹大成", Tier: 4, MaxLevel: 3,
			Description:  "丹道大成，福泽深厚。",
			Requirements: SkillRequirements{Level: 25, Realm: GoldenCore, PrerequisiteSkills: []string{"medical_rebirth"}},
			Effects: []SkillEffect{
				{Type: EffectStatBonus, StatType: StatComprehension, Value: 5, ValuePerLevel: 5},
				{Type: EffectCultivationSpeed, Value: 0.04, ValuePerLevel: 0.02},
			},
		},
	},
	SectDefense: {
		{
			ID: "defense_iron_skin", Sect: SectDefense, Name: "铁布衫", Tier: 1, MaxLevel: 5,
			Description:  "皮糙肉厚，刀枪难入。",
			Requirements: SkillRequirements{Level: 1},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatDefense, Value: 2, ValuePerLevel: 2}},
		},
		{
			ID: "defense_root", Sect: SectDefense, Name: "不动如山", Tier: 1, MaxLevel: 5,
			Description:  "下盘稳固，难以撼动。",
			Requirements: SkillRequirements{Level: 3},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatEvasion, Value: 0.005, ValuePerLevel: 0.005}},
		},
		{
			ID: "defense_turtle_breath", Sect: SectDefense, Name: "龟息功", Tier: 2, MaxLevel: 5,
			Description:  "龟息绵长，积少成多。",
			Requirements: SkillRequirements{Level: 8, PrerequisiteSkills: []string{"defense_iron_skin"}},
			Effects:      []SkillEffect{{Type: EffectCultivationSpeed, Value: 0.02, ValuePerLevel: 0.01}},
		},
		{
			ID: "defense_mountain", Sect: SectDefense, Name: "山岳金身", Tier: 3, MaxLevel: 3,
			Description:  "金身不坏，山岳难摧。",
			Requirements: SkillRequirements{Level: 15, Realm: Foundation, PrerequisiteSkills: []string{"defense_turtle_breath"}},
			Effects:      []SkillEffect{{Type: EffectStatBonus, StatType: StatDefense, Value: 5, ValuePerLevel: 5}},
		},
		{
			ID: "defense_immortal_shield", Sect: SectDefense, Name: "仙盾护体", Tier: 4, MaxLevel: 3,
			Description:  "仙盾加身，万法不侵。",
			Requirements: SkillRequirements{Level: 25, Realm: GoldenCore, PrerequisiteSkills: []string{"defense_mountain"}},
			Effects: []SkillEffect{
				{Type: EffectStatBonus, StatType: StatDefense, Value: 8, ValuePerLevel: 8},
				{Type: EffectStatBonus, StatType: StatSpiritualPower, Value: 3, ValuePerLevel: 3},
			},
		},
	},
}

// SkillByID 在指定宗门功法树中查找功法
func SkillByID(sect Sect, skillID string) (SectSkill, bool) {
	for _, s := range SkillTrees[sect] {
		if s.ID == skillID {
			return s, true
		}
	}
	return SectSkill{}, false
}

// CanUnlockSkill 校验解锁条件：等级、境界、前置功法缺一不可
func CanUnlockSkill(skill SectSkill, level int, realm Realm, unlocked []string) bool {
	if skill.Requirements.Level > 0 && level < skill.Requirements.Level {
		return false
	}
	if skill.Requirements.Realm != "" && RealmIndex(realm) < RealmIndex(skill.Requirements.Realm) {
		return false
	}
	for _, prereq := range skill.Requirements.PrerequisiteSkills {
		found := false
		for _, u := range unlocked {
			if u == prereq {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
