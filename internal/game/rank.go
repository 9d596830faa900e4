package game

type Rank string

const (
	RankNovice   Rank = "novice"
	RankSurvivor Rank = "survivor"
	RankRanger   Rank = "ranger"
	RankDefender Rank = "defender"
	RankElite    Rank = "elite"
)

// Tier index for comparing ranks (promotion check)
func (r Rank) Tier() int {
	switch r {
	case RankSurvivor:
		return 1

	case RankRanger:
		return 2

	case RankDefender:
		return 3

	case RankElite:
		return 4

	default:
		return 0
	}
}

func (r Rank) String() string {
	return string(r)
}

// CalculateRank maps EXP to its tier. Thresholds are inclusive on the low
// end: 0-100 novice, 101-300 survivor, 301-600 ranger, 601-1000 defender,
// 1001+ elite.
func CalculateRank(exp int) Rank {
	if exp >= 1001 {
		return RankElite
	}
	if exp >= 601 {
		return RankDefender
	}
	if exp >= 301 {
		return RankRanger
	}
	if exp >= 101 {
		return RankSurvivor
	}
	return RankNovice
}
