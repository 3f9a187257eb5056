package gamedata

// Sect 宗门标识，四大宗门固定不变
type Sect string

const (
	SectSword     Sect = "sword"     // 剑宗
	SectLightning Sect = "lightning" // 雷宗
	SectMedical   Sect = "medical"   // 医宗
	SectDefense   Sect = "defense"   // 防御宗
)

// AllSects 宗门列表
var AllSects = []Sect{SectSword, SectLightning, SectMedical, SectDefense}

// StatBlock 角色战斗属性
type StatBlock struct {
	Attack         int     `json:"attack"`
	Defense        int     `json:"defense"`
	Speed          int     `json:"speed"`
	CriticalRate   float64 `json:"criticalRate"`
	CriticalDamage float64 `json:"criticalDamage"`
	Accuracy       float64 `json:"accuracy"`
	Evasion        float64 `json:"evasion"`
	SpiritualPower int     `json:"spiritualPower"`
	Comprehension  int     `json:"comprehension"`
	Luck           int     `json:"luck"`
}

// SectBonus 宗门加成，属性均为加法叠加
type SectBonus struct {
	StatBlock
	Health int `json:"health"`
	Mana   int `json:"mana"`
}

// SectInfo 单个宗门的静态配置
type SectInfo struct {
	ID          Sect      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Bonuses     SectBonus `json:"bonuses"`
}

// SectTable 宗门静态表
var SectTable = map[Sect]SectInfo{
	SectSword: {
		ID: SectSword, Name: "剑宗",
		Description: "专精剑道，攻高速快，适合进攻型玩法。",
		Bonuses: SectBonus{StatBlock: StatBlock{
			Attack: 5, Speed: 3, CriticalRate: 0.02, CriticalDamage: 0.1,
		}},
	},
	SectLightning: {
		ID: SectLightning, Name: "雷宗",
		Description: "驭雷而行，极速与法术伤害兼备。",
		Bonuses: SectBonus{
			StatBlock: StatBlock{Attack: 4, Speed: 5, SpiritualPower: 3, Accuracy: 0.05},
			Mana:      20,
		},
	},
	SectMedical: {
		ID: SectMedical, Name: "医宗",
		Description: "精通医道与辅助，恢复能力出众，走持久路线。",
		Bonuses: SectBonus{
			StatBlock: StatBlock{Defense: 3, Comprehension: 4, Luck: 2},
			Health:    30, Mana: 15,
		},
	},
	SectDefense: {
		ID: SectDefense, Name: "防御宗",
		Description: "防御稳如山岳，难以被击败，稳健之选。",
		Bonuses: SectBonus{
			StatBlock: StatBlock{Defense: 6, Evasion: 0.03, SpiritualPower: 2},
			Health:    25,
		},
	},
}

// SectCultivationBonus 宗门修炼速度加成（加法）
var SectCultivationBonus = map[Sect]float64{
	SectSword:     0.05,
	SectLightning: 0.08,
	SectMedical:   0.03,
	SectDefense:   0.02,
}

// BaseStats 角色初始战斗属性
var BaseStats = StatBlock{
	Attack: 10, Defense: 10, Speed: 10,
	CriticalRate: 0.05, CriticalDamage: 1.5,
	Accuracy: 0.9, Evasion: 0.1,
	SpiritualPower: 5, Comprehension: 5, Luck: 5,
}

// 初始资源
const (
	BaseHealth       = 100
	BaseMana         = 50
	BaseGold         = 1000
	BaseSpiritStones = 0
)

// IsValidSect 判断是否为已知宗门
func IsValidSect(s Sect) bool {
	_, ok := SectTable[s]
	return ok
}

// InitialStats 返回叠加宗门加成后的初始属性
func InitialStats(s Sect) StatBlock {
	stats := BaseStats
	bonus := SectTable[s].Bonuses
	stats.Attack += bonus.Attack
	stats.Defense += bonus.Defense
	stats.Speed += bonus.Speed
	stats.CriticalRate += bonus.CriticalRate
	stats.CriticalDamage += bonus.CriticalDamage
	stats.Accuracy += bonus.Accuracy
	stats.Evasion += bonus.Evasion
	stats.SpiritualPower += bonus.SpiritualPower
	stats.Comprehension += bonus.Comprehension
	stats.Luck += bonus.Luck
	return stats
}

// InitialResources 返回叠加宗门加成后的初始血蓝
func InitialResources(s Sect) (health, mana int) {
	bonus := SectTable[s].Bonuses
	return BaseHealth + bonus.Health, BaseMana + bonus.Mana
}

// CultivationSpeed 修炼速度 = 1 + 宗门加成 + 境界加成 + 功法加成
func CultivationSpeed(s Sect, r Realm, skillBonus float64) float64 {
	return 1.0 + SectCultivationBonus[s] + RealmTable[r].CultivationSpeedBonus + skillBonus
}
