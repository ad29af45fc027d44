package engine

// XPPerLevel is the flat cost of every level. The law is linear: total XP
// buckets straight into levels, no widening curve.
const XPPerLevel = 150

// LevelInfo is the derived view of a total XP amount.
type LevelInfo struct {
	Level         int
	XPInLevel     int
	XPToNextLevel int
}

// LevelThreshold returns the total XP at which the given level begins.
func LevelThreshold(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) * XPPerLevel
}

// DeriveLevel maps total XP to the level and in-level remainder. Negative
// totals clamp to a fresh level 1.
func DeriveLevel(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}
	level := totalXP/XPPerLevel + 1
	inLevel := totalXP - LevelThreshold(level)
	return LevelInfo{
		Level:         level,
		XPInLevel:     inLevel,
		XPToNextLevel: XPPerLevel - inLevel,
	}
}

// LevelSpan is the widening per-level XP span the original UI printed under
// its progress bar. Display only; nothing derives a level from it.
func LevelSpan(level int) int {
	if level < 1 {
		level = 1
	}
	return level*100 + (level-1)*50
}
