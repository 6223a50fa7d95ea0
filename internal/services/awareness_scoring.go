package services

import (
	"fmt"
	"math"
	"strconv"
)

// AwarenessDisclaimer accompanies every awareness response.
const AwarenessDisclaimer = "For awareness only. Not medical advice."

const (
	defaultHydrationWeightKg = 70.0
	hydrationMLPerKg         = 30.0
	defaultSleepHours        = 7.5
)

// AwarenessItem is one scored indicator. NumericScore is always 0-100.
type AwarenessItem struct {
	Name            string   `json:"name"`
	RiskLevel       string   `json:"risk_level"`
	NumericScore    int      `json:"numeric_score"`
	Reasons         []string `json:"reasons"`
	ImprovementHint string   `json:"improvement_hint"`
}

// AwarenessInputs is the frozen bundle every scorer reads. Zero values mean
// the source had no data.
type AwarenessInputs struct {
	WeightKg    *float64
	BMI         *float64
	BMICategory string

	Food                FoodAverages
	HighCalorieDays     int
	LowProteinDays      int
	HighCaloriePercent  float64
	LowProteinPercent   float64
	WeeklyCardioMinutes float64
	WorkoutDays         int
	SedentaryDays       int
	LowActivityWeeks    int
	TotalActivityWeeks  int
	LowActivityPercent  float64

	AvgSteps          float64
	WearableSleep     float64
	RestingHeartRate  float64
	WearableAvailable bool
	HealthSyncUsed    bool
	ProfileSleepHours float64

	LateMeals         int
	StreakInstability int
	AdherenceScore    int
	DietStreak        int
	WorkoutStreak     int
}

// ScoreAwareness returns the twelve indicators in a fixed order.
func ScoreAwareness(inputs AwarenessInputs) []AwarenessItem {
	sleepScore, sleepItem := scoreSleepQuality(inputs)
	bpScore, bpItem := scoreBloodPressure(inputs)
	diabetesScore, diabetesItem := scoreDiabetes(inputs)

	return []AwarenessItem{
		scoreHydration(inputs),
		sleepItem,
		bpItem,
		diabetesItem,
		scoreCardiovascular(inputs),
		scoreObesity(inputs),
		scoreCholesterol(inputs),
		scoreGutHealth(inputs),
		scoreNutrientDeficiency(inputs),
		scoreStress(inputs, sleepScore),
		scoreMetabolicSyndrome(inputs, bpScore, diabetesScore),
		scoreConsistency(inputs),
	}
}

func scoreHydration(inputs AwarenessInputs) AwarenessItem {
	item := AwarenessItem{
		Name:            "Hydration Adequacy",
		ImprovementHint: "Aim for clear or pale yellow urine; increase water intake with meals and activity.",
	}

	food := inputs.Food
	if inputs.AvgSteps == 0 && inputs.WorkoutDays == 0 && food.Calories == 0 && food.WaterML == 0 {
		item.RiskLevel = "Unknown"
		item.Reasons = []string{"No activity, food, or water data available"}
		return item
	}

	weight := defaultHydrationWeightKg
	if inputs.WeightKg != nil && *inputs.WeightKg > 0 {
		weight = *inputs.WeightKg
	}
	multiplier := 1.0
	if inputs.AvgSteps > 10000 {
		multiplier += 0.3
	}
	if inputs.WeeklyCardioMinutes > 150 {
		multiplier += 0.2
	}
	if food.Fat > 100 {
		multiplier += 0.1
	}
	need := weight * hydrationMLPerKg * multiplier

	intake := food.Calories
	note := "estimated from calories"
	if food.WaterML > 0 {
		intake = food.WaterML
		note = "measured water intake"
	}

	ratio := 0.0
	if need > 0 {
		ratio = intake / need
	}
	switch {
	case ratio >= 0.9:
		item.RiskLevel = "Adequate"
	case ratio >= 0.7:
		item.RiskLevel = "Needs Improvement"
	default:
		item.RiskLevel = "Dehydration Risk"
	}
	item.NumericScore = clampScore(int(math.Round(ratio * 100)))

	item.Reasons = []string{fmt.Sprintf("Estimated %.0fml intake (%s) vs %.0fml need", intake, note, need)}
	if food.WaterML > 0 {
		item.Reasons = append(item.Reasons, fmt.Sprintf("[14-day food tracker] Water logged: %.0fml/day average", food.WaterML))
	}
	if inputs.AvgSteps > 0 {
		item.Reasons = append(item.Reasons, fmt.Sprintf("[7-day wearable/sync] Daily steps: %.0f avg", inputs.AvgSteps))
	}
	if inputs.HealthSyncUsed {
		item.Reasons = append(item.Reasons, "[Fallback] Using recent health sync data (wearable unavailable)")
	}
	if inputs.WorkoutDays > 0 {
		item.Reasons = append(item.Reasons, fmt.Sprintf("[7-day workout tracker] Workout days: %d days", inputs.WorkoutDays))
	}
	if food.Calories > 0 {
		item.Reasons = append(item.Reasons, fmt.Sprintf("[14-day food tracker] Calories: %.0f avg/day", food.Calories))
	}
	return item
}

func scoreSleepQuality(inputs AwarenessInputs) (int, AwarenessItem) {
	score := 50
	hours := inputs.WearableSleep
	if hours <= 0 {
		hours = inputs.ProfileSleepHours
	}
	if hours <= 0 {
		hours = defaultSleepHours
	}
	switch {
	case hours >= 7 && hours <= 9:
		score += 25
	case (hours >= 6 && hours < 7) || (hours > 9 && hours <= 10):
		score += 10
	case hours < 6:
		score -= 20
	}

	if rhr := inputs.RestingHeartRate; rhr > 0 {
		switch {
		case rhr < 60:
			score += 15
		case rhr < 70:
			score += 5
		case rhr > 80:
			score -= 10
		}
	}
	if inputs.WeeklyCardioMinutes > 180 {
		score -= 10
	}
	switch {
	case inputs.LateMeals > 2:
		score -= 15
	case inputs.LateMeals > 0:
		score -= 5
	}
	score = clampScore(score)

	reasons := []string{fmt.Sprintf("[14-day average food data] %d days logged", inputs.Food.Days)}
	if inputs.WearableSleep > 0 {
		reasons = append(reasons, fmt.Sprintf("[7-day wearable average] %.1f hours/night sleep (actual measured)", inputs.WearableSleep))
	}
	if inputs.ProfileSleepHours > 0 {
		reasons = append(reasons, fmt.Sprintf("[Health Profile] %.1f hours/night stated goal", inputs.ProfileSleepHours))
	}
	if inputs.RestingHeartRate > 0 {
		reasons = append(reasons, fmt.Sprintf("[7-day wearable average] Resting HR: %.0f bpm", inputs.RestingHeartRate))
	}
	if inputs.WeeklyCardioMinutes > 0 {
		reasons = append(reasons, fmt.Sprintf("[7-day aggregation] Weekly cardio: %.0f min from workout tracker", inputs.WeeklyCardioMinutes))
	}
	if inputs.LateMeals > 0 {
		reasons = append(reasons, fmt.Sprintf("[14-day aggregation] %d late meals detected from food logs", inputs.LateMeals))
	}

	// Same 70/35 cut points as the risk indicators, labels reversed.
	return score, AwarenessItem{
		Name:            "Sleep Quality Index",
		RiskLevel:       tier(score, "Good", "Fair", "Poor"),
		NumericScore:    score,
		Reasons:         reasons,
		ImprovementHint: "Aim for 7-9 hours sleep; avoid screens 1 hour before bed; no late meals.",
	}
}

func scoreBloodPressure(inputs AwarenessInputs) (int, AwarenessItem) {
	score := 0
	sodium := inputs.Food.Sodium
	switch {
	case sodium > 3000:
		score += 40
	case sodium > 2300:
		score += 20
	case sodium < 1500:
		score += 5
	}
	switch rhr := inputs.RestingHeartRate; {
	case rhr > 80:
		score += 30
	case rhr > 70:
		score += 15
	}
	switch cardio := inputs.WeeklyCardioMinutes; {
	case cardio < 75:
		score += 20
	case cardio < 150:
		score += 10
	}
	// Missing wearable sleep counts as 0 hours.
	switch sleep := inputs.WearableSleep; {
	case sleep < 6:
		score += 25
	case sleep < 7:
		score += 15
	}
	score = clampScore(score)

	var reasons []string
	if sodium > 0 {
		reasons = append(reasons, fmt.Sprintf("[14-day average from food tracker] Sodium: %.0fmg/day", sodium))
	}
	if inputs.RestingHeartRate > 0 {
		reasons = append(reasons, fmt.Sprintf("[7-day wearable average] Resting heart rate: %.0f bpm", inputs.RestingHeartRate))
	}
	if inputs.WeeklyCardioMinutes > 0 {
		reasons = append(reasons, fmt.Sprintf("[7-day aggregation from workout tracker] Weekly cardio: %.0f min", inputs.WeeklyCardioMinutes))
	}
	if inputs.WearableSleep > 0 {
		reasons = append(reasons, fmt.Sprintf("[7-day wearable average] Average sleep: %.1f hours/night", inputs.WearableSleep))
	}

	return score, AwarenessItem{
		Name:            "Blood Pressure Risk",
		RiskLevel:       tier(score, "High Risk", "Elevated", "Normal"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient blood pressure data from wearable/sync sources"),
		ImprovementHint: "Reduce sodium intake; maintain regular cardio exercise; ensure adequate sleep.",
	}
}

func scoreDiabetes(inputs AwarenessInputs) (int, AwarenessItem) {
	score := 0
	var reasons []string
	if bmi, ok := bmiAtLeast(inputs, 25); ok {
		score += 30
		reasons = append(reasons, fmt.Sprintf("[Health Profile] BMI %s (%s)", formatBMI(bmi), inputs.BMICategory))
	}
	if inputs.HighCaloriePercent > 30 {
		score += 30
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] %d/%d high-calorie days (%.0f%%)", inputs.HighCalorieDays, inputs.Food.Days, inputs.HighCaloriePercent))
	}
	if inputs.LowProteinPercent > 50 {
		score += 10
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Protein low on %d/%d days", inputs.LowProteinDays, inputs.Food.Days))
	}
	if inputs.Food.Sugar > 50 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Average sugar: %.0fg/day", inputs.Food.Sugar))
	}
	if inputs.LowActivityPercent > 50 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[4-week workout tracker] Low activity in %d/%d weeks (%.0f%%)", inputs.LowActivityWeeks, inputs.TotalActivityWeeks, inputs.LowActivityPercent))
	}
	if inputs.AdherenceScore < 50 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("[7-day analytics] Low adherence to goals: %d%%", inputs.AdherenceScore))
	}
	score = clampScore(score)

	return score, AwarenessItem{
		Name:            "Diabetes Risk",
		RiskLevel:       tier(score, "High", "Moderate", "Low"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from food tracker, workout tracker, and health profile"),
		ImprovementHint: "Reduce high-calorie days and added sugars; increase protein and regular brisk activity.",
	}
}

func scoreCardiovascular(inputs AwarenessInputs) AwarenessItem {
	score := 0
	var reasons []string
	if bmi, ok := bmiAtLeast(inputs, 27); ok {
		score += 25
		reasons = append(reasons, fmt.Sprintf("[Health Profile] BMI %s", formatBMI(bmi)))
	}
	if inputs.HighCaloriePercent > 40 {
		score += 25
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Frequent high-calorie days (%.0f%%)", inputs.HighCaloriePercent))
	}
	if inputs.LowActivityPercent > 0 {
		score += min(30, int(inputs.LowActivityPercent/2))
		reasons = append(reasons, fmt.Sprintf("[4-week workout tracker] Low activity: %.0f%%", inputs.LowActivityPercent))
	}
	if inputs.Food.Fat > 100 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Average fat intake: %.0fg/day", inputs.Food.Fat))
	}
	if inputs.SedentaryDays > 4 {
		score += 20
		reasons = append(reasons, sedentaryReason(inputs.SedentaryDays))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Cardiovascular Health",
		RiskLevel:       tier(score, "High Risk", "Moderate Risk", "Low Risk"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from food tracker, workout tracker, and health profile"),
		ImprovementHint: "Increase weekly aerobic minutes and reduce high-calorie/fat intake frequency.",
	}
}

func scoreObesity(inputs AwarenessInputs) AwarenessItem {
	score := 0
	var reasons []string
	if bmi, ok := bmiAtLeast(inputs, 30); ok {
		score += 60
		reasons = append(reasons, fmt.Sprintf("[Health Profile] BMI %s (Obese)", formatBMI(bmi)))
	} else if bmi, ok := bmiAtLeast(inputs, 25); ok {
		score += 30
		reasons = append(reasons, fmt.Sprintf("[Health Profile] BMI %s (Overweight)", formatBMI(bmi)))
	}
	if inputs.HighCaloriePercent > 0 {
		score += min(30, int(inputs.HighCaloriePercent/4))
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] %.0f%% high-calorie days", inputs.HighCaloriePercent))
	}
	if inputs.WeeklyCardioMinutes < 90 {
		score += 10
		reasons = append(reasons, fmt.Sprintf("[7-day workout tracker] Low activity: %.0f min/week", inputs.WeeklyCardioMinutes))
	}
	if inputs.AdherenceScore < 60 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("[7-day analytics] Low adherence: %d%%", inputs.AdherenceScore))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Obesity Risk",
		RiskLevel:       tier(score, "High", "Moderate", "Low"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from food tracker, workout tracker, and health profile"),
		ImprovementHint: "Aim for consistent moderate activity and reduce high-calorie intake frequency.",
	}
}

func scoreCholesterol(inputs AwarenessInputs) AwarenessItem {
	score := 0
	var reasons []string
	if inputs.Food.Fat > 80 {
		score += 40
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] High fat intake: %.0fg/day", inputs.Food.Fat))
	}
	if bmi, ok := bmiAtLeast(inputs, 25); ok {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[Health Profile] BMI %s (%s)", formatBMI(bmi), inputs.BMICategory))
	}
	if inputs.SedentaryDays > 4 {
		score += 20
		reasons = append(reasons, sedentaryReason(inputs.SedentaryDays))
	}
	if inputs.Food.Fiber < 25 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Low fiber: %.0fg/day", inputs.Food.Fiber))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Cholesterol Risk",
		RiskLevel:       tier(score, "High", "Moderate", "Low"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from food tracker, workout tracker, and health profile"),
		ImprovementHint: "Reduce saturated fat intake; increase fiber-rich foods; maintain regular activity.",
	}
}

func scoreGutHealth(inputs AwarenessInputs) AwarenessItem {
	score := 0
	var reasons []string
	if inputs.Food.Fiber < 25 {
		score += 40
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Low fiber: %.0fg/day (goal: 25-30g)", inputs.Food.Fiber))
	}
	if inputs.SedentaryDays > 4 {
		score += 20
		reasons = append(reasons, sedentaryReason(inputs.SedentaryDays))
	}
	if inputs.LateMeals > 3 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Irregular eating: %d late meals", inputs.LateMeals))
	}
	if inputs.Food.Sugar > 50 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] High sugar: %.0fg/day", inputs.Food.Sugar))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Gut Health Score",
		RiskLevel:       tier(score, "Poor", "Fair", "Good"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from food tracker and workout tracker"),
		ImprovementHint: "Increase fiber intake through vegetables/fruits; reduce sugar; eat regular meals.",
	}
}

func scoreNutrientDeficiency(inputs AwarenessInputs) AwarenessItem {
	score := 0
	var reasons []string
	if inputs.LowProteinPercent > 40 {
		score += 30
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Protein deficiency: %.0f%% of days", inputs.LowProteinPercent))
	}
	if inputs.Food.Fiber < 20 {
		score += 25
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Low fiber: %.0fg/day", inputs.Food.Fiber))
	}
	if inputs.HighCaloriePercent > 0 {
		score += min(25, int(inputs.HighCaloriePercent/4))
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] %.0f%% high-calorie days", inputs.HighCaloriePercent))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Nutrient Deficiency Risk",
		RiskLevel:       tier(score, "High", "Moderate", "Low"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from food tracker"),
		ImprovementHint: "Ensure balanced meals with adequate protein and fiber; consider nutrient-dense foods.",
	}
}

func scoreStress(inputs AwarenessInputs, sleepScore int) AwarenessItem {
	score := 0
	var reasons []string
	if sleepScore < 60 {
		score += 30
		reasons = append(reasons, fmt.Sprintf("[7-day wearable] Sleep quality score: %d/100", sleepScore))
	}
	if inputs.SedentaryDays > 5 {
		score += 25
		reasons = append(reasons, fmt.Sprintf("[7-day workout tracker] Very sedentary: %d days/week", inputs.SedentaryDays))
	}
	if inputs.StreakInstability > 50 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[30-day analytics] Inconsistent activity patterns: %d%%", inputs.StreakInstability))
	}
	if inputs.LateMeals > 4 {
		score += 15
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] Irregular eating: %d late meals", inputs.LateMeals))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Stress & Mental Wellness",
		RiskLevel:       tier(score, "High Stress", "Moderate Stress", "Low Stress"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from wearable/sync data, workout tracker, and food tracker"),
		ImprovementHint: "Establish consistent sleep and activity routines; practice stress management techniques.",
	}
}

func scoreMetabolicSyndrome(inputs AwarenessInputs, bpScore int, diabetesScore int) AwarenessItem {
	score := 0
	var reasons []string
	if bmi, ok := bmiAtLeast(inputs, 25); ok {
		score += 25
		reasons = append(reasons, fmt.Sprintf("[Health Profile] BMI %s (%s)", formatBMI(bmi), inputs.BMICategory))
	}
	if bpScore >= 35 {
		score += 25
		reasons = append(reasons, fmt.Sprintf("[7-day wearable+sync] Blood pressure risk score: %d/100", bpScore))
	}
	if inputs.Food.Fat > 90 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[14-day food tracker] High fat intake: %.0fg/day", inputs.Food.Fat))
	}
	if diabetesScore >= 35 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[14-day aggregation] Diabetes risk score: %d/100", diabetesScore))
	}
	if inputs.SedentaryDays > 4 {
		score += 10
		reasons = append(reasons, sedentaryReason(inputs.SedentaryDays))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Metabolic Syndrome Risk",
		RiskLevel:       tier(score, "High", "Moderate", "Low"),
		NumericScore:    score,
		Reasons:         orInsufficient(reasons, "Insufficient data from health profile, wearable/sync data, food tracker, and workout tracker"),
		ImprovementHint: "Maintain healthy weight; control blood pressure; reduce fat intake; stay active.",
	}
}

func scoreConsistency(inputs AwarenessInputs) AwarenessItem {
	adherence := inputs.AdherenceScore
	score := 100 - adherence

	var reasons []string
	switch {
	case adherence < 50:
		reasons = append(reasons, fmt.Sprintf("[7-day analytics] Low adherence: %d%%", adherence))
	case adherence < 75:
		reasons = append(reasons, fmt.Sprintf("[7-day analytics] Moderate adherence: %d%%", adherence))
	default:
		reasons = append(reasons, fmt.Sprintf("[7-day analytics] Good adherence: %d%%", adherence))
	}
	if inputs.DietStreak > 0 {
		reasons = append(reasons, fmt.Sprintf("[Food tracker] Diet streak: %d days", inputs.DietStreak))
	}
	if inputs.WorkoutStreak > 0 {
		reasons = append(reasons, fmt.Sprintf("[Workout tracker] Workout streak: %d days", inputs.WorkoutStreak))
	}
	if inputs.StreakInstability > 50 {
		score += 20
		reasons = append(reasons, fmt.Sprintf("[30-day analytics] Inconsistent patterns: %d%%", inputs.StreakInstability))
	}
	score = clampScore(score)

	return AwarenessItem{
		Name:            "Consistency & Adherence",
		RiskLevel:       tier(score, "Poor", "Fair", "Good"),
		NumericScore:    score,
		Reasons:         reasons,
		ImprovementHint: "Build consistent habits; track progress regularly; set achievable goals; maintain streaks.",
	}
}

// tier maps >=70 to high and >=35 to moderate. Sleep passes its labels in
// reverse because a higher sleep score is better.
func tier(score int, high string, moderate string, low string) string {
	switch {
	case score >= 70:
		return high
	case score >= 35:
		return moderate
	default:
		return low
	}
}

func orInsufficient(reasons []string, placeholder string) []string {
	if len(reasons) == 0 {
		return []string{placeholder}
	}
	return reasons
}

func bmiAtLeast(inputs AwarenessInputs, threshold float64) (float64, bool) {
	if inputs.BMI == nil || *inputs.BMI <= 0 {
		return 0, false
	}
	return *inputs.BMI, *inputs.BMI >= threshold
}

func sedentaryReason(days int) string {
	return fmt.Sprintf("[7-day workout tracker] Sedentary days: %d/week", days)
}

// formatBMI keeps one decimal for whole values (31 -> "31.0").
func formatBMI(bmi float64) string {
	if bmi == math.Trunc(bmi) {
		return strconv.FormatFloat(bmi, 'f', 1, 64)
	}
	return strconv.FormatFloat(bmi, 'f', -1, 64)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return "unknown"
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func ActivityLevelFromMinutes(weeklyMinutes float64) string {
	switch {
	case weeklyMinutes < 90:
		return "Sedentary"
	case weeklyMinutes < 225:
		return "Moderate"
	default:
		return "Active"
	}
}

// ComputeBMI is weight/height² with height in centimetres, rounded to two
// decimals. A non-positive height yields 0.
func ComputeBMI(weightKg float64, heightCm float64) float64 {
	heightM := heightCm / 100
	if heightM <= 0 {
		return 0
	}
	return roundTo(weightKg/(heightM*heightM), 2)
}
