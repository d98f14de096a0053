package usecase

const (
	// titleTokenCount is how many transcript words the rule-based title keeps.
	titleTokenCount = 6
	// titleMaxRunes bounds the transcript-derived title on the service path.
	titleMaxRunes = 50
	titleSuffix   = "..."

	// endOfDayClock is the time given to a due date stated without one.
	endOfDayClock = "23:59:59"
)
