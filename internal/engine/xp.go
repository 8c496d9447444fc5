package engine

// XPPerLevel is the fixed width of every level tier.
// Leveling is flat on purpose: the progress bar and the "N/100 XP" label are
// derived straight from these functions, so the tier width is user-visible
// and must not change.
const XPPerLevel = 100

// LevelForXP returns the level for a total XP amount. Levels start at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPWithinLevel returns the XP accumulated inside the current tier.
func XPWithinLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp % XPPerLevel
}

// ProgressFraction returns progress through the current tier in [0, 1).
func ProgressFraction(xp int) float64 {
	return float64(XPWithinLevel(xp)) / float64(XPPerLevel)
}

// XPToNextLevel returns how much XP is missing to reach the next level.
func XPToNextLevel(xp int) int {
	return XPPerLevel - XPWithinLevel(xp)
}
