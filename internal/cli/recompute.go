package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/terraincognita07/fitsense/internal/db"
	"github.com/terraincognita07/fitsense/internal/models"
)

const recomputeBatchSize = 200

// RunRecomputeTotalsCommand rebuilds the stored daily totals of every food and
// workout log from their entries. Logs whose totals already match are left
// untouched.
func RunRecomputeTotalsCommand(dbPath string, out io.Writer) error {
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	ctx := context.Background()
	repositories := db.NewRepositories(database)

	foodFixed := 0
	err = repositories.FoodLogs.EachBatch(ctx, recomputeBatchSize, func(batch []models.DailyFoodLog) error {
		for index := range batch {
			entry := &batch[index]
			before := entry.TotalMacros
			entry.RecomputeTotals()
			if entry.TotalMacros == before {
				continue
			}
			if err := repositories.FoodLogs.Save(ctx, entry); err != nil {
				return fmt.Errorf("save food log %d: %w", entry.ID, err)
			}
			foodFixed++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("recompute food totals: %w", err)
	}

	workoutsFixed := 0
	err = repositories.WorkoutLogs.EachBatch(ctx, recomputeBatchSize, func(batch []models.DailyWorkoutLog) error {
		for index := range batch {
			entry := &batch[index]
			before := workoutTotals(*entry)
			entry.RecomputeTotals()
			if workoutTotals(*entry) == before {
				continue
			}
			if err := repositories.WorkoutLogs.Save(ctx, entry); err != nil {
				return fmt.Errorf("save workout log %d: %w", entry.ID, err)
			}
			workoutsFixed++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("recompute workout totals: %w", err)
	}

	fmt.Fprintf(out, "Recomputed totals: %d food logs, %d workout logs updated\n", foodFixed, workoutsFixed)
	return nil
}

type workoutTotalSet struct {
	sets     int
	reps     int
	weight   float64
	duration int
}

func workoutTotals(entry models.DailyWorkoutLog) workoutTotalSet {
	return workoutTotalSet{sets: entry.TotalSets, reps: entry.TotalReps, weight: entry.TotalWeight, duration: entry.TotalDuration}
}
