package gamedata

// Realm 境界标识，九大境界全局有序
type Realm string

const (
	QiRefining      Realm = "qi_refining"      // 炼气
	Foundation      Realm = "foundation"       // 筑基
	GoldenCore      Realm = "golden_core"      // 金丹
	NascentSoul     Realm = "nascent_soul"     // 元婴
	SpiritSevering  Realm = "spirit_severing"  // 化神
	VoidRefinement  Realm = "void_refinement"  // 炼虚
	BodyIntegration Realm = "body_integration" // 合体
	Mahayana        Realm = "mahayana"         // 大乘
	TrueImmortal    Realm = "true_immortal"    // 真仙
)

// RealmOrder 境界升序排列，索引即境界序号
var RealmOrder = []Realm{
	QiRefining, Foundation, GoldenCore, NascentSoul,
	SpiritSevering, VoidRefinement, BodyIntegration,
	Mahayana, TrueImmortal,
}

// BreakthroughMaterial 突破材料需求（当前仅做展示，不参与校验）
type BreakthroughMaterial struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// RealmInfo 单个境界的静态配置
type RealmInfo struct {
	ID                    Realm                  `json:"id"`
	Name                  string                 `json:"name"`
	LevelMin              int                    `json:"levelMin"`
	LevelMax              int                    `json:"levelMax"`
	PointsRequired        int64                  `json:"cultivationPointsRequired"`
	StatMultiplier        float64                `json:"statMultiplier"`
	CultivationSpeedBonus float64                `json:"cultivationSpeedBonus"`
	NewSkillSlots         int                    `json:"newSkillSlots"`
	Materials             []BreakthroughMaterial `json:"breakthroughMaterials"`
}

// RealmTable 境界静态表。PointsRequired 指突破进入该境界所需修为
var RealmTable = map[Realm]RealmInfo{
	QiRefining: {
		ID: QiRefining, Name: "炼气", LevelMin: 1, LevelMax: 10,
		PointsRequired: 0, StatMultiplier: 1.0, CultivationSpeedBonus: 0.0,
		NewSkillSlots: 0, Materials: nil,
	},
	Foundation: {
		ID: Foundation, Name: "筑基", LevelMin: 11, LevelMax: 20,
		PointsRequired: 10000, StatMultiplier: 1.2, CultivationSpeedBonus: 0.1,
		NewSkillSlots: 1,
		Materials: []BreakthroughMaterial{
			{ItemID: "foundation_pill", Quantity: 1},
			{ItemID: "spirit_stone", Quantity: 100},
		},
	},
	GoldenCore: {
		ID: GoldenCore, Name: "金丹", LevelMin: 21, LevelMax: 30,
		PointsRequired: 50000, StatMultiplier: 1.5, CultivationSpeedBonus: 0.25,
		NewSkillSlots: 2,
		Materials: []BreakthroughMaterial{
			{ItemID: "golden_core_pill", Quantity: 1},
			{ItemID: "spirit_stone", Quantity: 500},
			{ItemID: "rare_herb", Quantity: 10},
		},
	},
	NascentSoul: {
		ID: NascentSoul, Name: "元婴", LevelMin: 31, LevelMax: 40,
		PointsRequired: 150000, StatMultiplier: 2.0, CultivationSpeedBonus: 0.5,
		NewSkillSlots: 3,
		Materials: []BreakthroughMaterial{
			{ItemID: "nascent_soul_pill", Quantity: 1},
			{ItemID: "spirit_stone", Quantity: 1000},
			{ItemID: "rare_herb", Quantity: 25},
			{ItemID: "heavenly_essence", Quantity: 5},
		},
	},
	SpiritSevering: {
		ID: SpiritSevering, Name: "化神", LevelMin: 41, LevelMax: 50,
		PointsRequired: 400000, StatMultiplier: 3.0, CultivationSpeedBonus: 1.0,
		NewSkillSlots: 4,
		Materials: []BreakthroughMaterial{
			{ItemID: "spirit_severing_pill", Quantity: 1},
			{ItemID: "spirit_stone", Quantity: 2500},
			{ItemID: "heavenly_essence", Quantity: 15},
			{ItemID: "divine_crystal", Quantity: 3},
		},
	},
	VoidRefinement: {
		ID: VoidRefinement, Name: "炼虚", LevelMin: 51, LevelMax: 60,
		PointsRequired: 1000000, StatMultiplier: 4.0, CultivationSpeedBonus: 1.5,
		NewSkillSlots: 5,
		Materials: []BreakthroughMaterial{
			{ItemID: "void_refinement_pill", Quantity: 1},
			{ItemID: "spirit_stone", Quantity: 5000},
			{ItemID: "divine_crystal", Quantity: 10},
			{ItemID: "void_essence", Quantity: 5},
		},
	},
	BodyIntegration: {
		ID: BodyIntegration, Name: "合体", LevelMin: 61, LevelMax: 70,
		PointsRequired: 2500000, StatMultiplier: 6.0, CultivationSpeedBonus: 2.0,
		NewSkillSlots: 6,
		Materials: []BreakthroughMaterial{
			{ItemID: "body_integration_pill", Quantity: 1},
			{ItemID: "divine_crystal", Quantity: 25},
			{ItemID: "void_essence", Quantity: 15},
			{ItemID: "immortal_fragment", Quantity: 3},
		},
	},
	Mahayana: {
		ID: Mahayana, Name: "大乘", LevelMin: 71, LevelMax: 80,
		PointsRequired: 6000000, StatMultiplier: 10.0, CultivationSpeedBonus: 3.0,
		NewSkillSlots: 7,
		Materials: []BreakthroughMaterial{
			{ItemID: "mahayana_pill", Quantity: 1},
			{ItemID: "divine_crystal", Quantity: 50},
			{ItemID: "immortal_fragment", Quantity: 10},
			{ItemID: "heavenly_dao_essence", Quantity: 5},
		},
	},
	TrueImmortal: {
		ID: TrueImmortal, Name: "真仙", LevelMin: 81, LevelMax: 100,
		PointsRequired: 15000000, StatMultiplier: 20.0, CultivationSpeedBonus: 5.0,
		NewSkillSlots: 10,
		Materials: []BreakthroughMaterial{
			{ItemID: "true_immortal_pill", Quantity: 1},
			{ItemID: "immortal_fragment", Quantity: 25},
			{ItemID: "heavenly_dao_essence", Quantity: 15},
			{ItemID: "primordial_chaos", Quantity: 1},
		},
	},
}

// IsValidRealm 判断是否为已知境界
func IsValidRealm(r Realm) bool {
	_, ok := RealmTable[r]
	return ok
}

// RealmIndex 返回境界在 RealmOrder 中的序号（炼气=0），未知境界返回0
func RealmIndex(r Realm) int {
	for i, v := range RealmOrder {
		if v == r {
			return i
		}
	}
	return 0
}

// NextRealm 返回下一境界，已是真仙返回 ok=false
func NextRealm(r Realm) (Realm, bool) {
	idx := RealmIndex(r)
	if idx >= len(RealmOrder)-1 {
		return "", false
	}
	return RealmOrder[idx+1], true
}

// RealmForLevel 根据等级推算所属境界
func RealmForLevel(level int) Realm {
	for _, r := range RealmOrder {
		info := RealmTable[r]
		if level >= info.LevelMin && level <= info.LevelMax {
			return r
		}
	}
	return QiRefining
}

// LevelCap 境界等级上限，突破前无法越过
func LevelCap(r Realm) int {
	return RealmTable[r].LevelMax
}
