package services

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

func ConfidenceLevel(present int, total int) string {
	if total <= 0 {
		return ConfidenceLow
	}
	fraction := float64(present) / float64(total)
	switch {
	case fraction >= 0.7:
		return ConfidenceHigh
	case fraction >= 0.4:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func countTrue(flags ...bool) int {
	count := 0
	for _, flag := range flags {
		if flag {
			count++
		}
	}
	return count
}

// AwarenessConfidence counts the twelve awareness data points. Adherence and
// streaks are always computed and always count.
func AwarenessConfidence(inputs AwarenessInputs) string {
	present := countTrue(
		inputs.BMI != nil,
		inputs.Food.Calories > 0,
		inputs.Food.Protein > 0,
		inputs.Food.Sodium > 0,
		inputs.Food.Sugar > 0,
		inputs.Food.Fiber > 0,
		inputs.Food.Fat > 0,
		inputs.AvgSteps > 0,
		inputs.WearableSleep > 0,
		inputs.WeeklyCardioMinutes > 0,
		true,
		true,
	)
	return ConfidenceLevel(present, 12)
}
