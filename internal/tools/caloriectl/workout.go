package caloriectl

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	workoutv1 "github.com/louisbranch/calorie.space/api/gen/go/workout/v1"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/louisbranch/calorie.space/internal/services/workout/catalog"
)

func runWorkout(ctx context.Context, client workoutv1.WorkoutRecommendationServiceClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(CommandWorkout, flag.ContinueOnError)
	fs.SetOutput(out)
	target := fs.String("target", catalog.TargetUpperBody, "UPPER_BODY, LOWER_BODY or CORE")
	level := fs.String("level", catalog.LevelBeginner, "BEGINNER, INTERMEDIATE or ADVANCED")
	if err := fs.Parse(args); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	stream, err := client.GetWorkoutRecommendations(callCtx, &workoutv1.WorkoutRequest{TargetArea: *target, FitnessLevel: *level})
	if err != nil {
		return fmt.Errorf("get workout recommendations: %w", err)
	}

	count := 0
	for {
		rec, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("get workout recommendations: %w", err)
		}
		count++
		fmt.Fprintf(out, "\n%s (%s)\n", rec.GetExerciseName(), rec.GetFitnessLevel())
		fmt.Fprintf(out, "  Sets x Reps: %d x %d\n", rec.GetSets(), rec.GetReps())
		fmt.Fprintf(out, "  Equipment: %s\n", rec.GetEquipment())
		fmt.Fprintf(out, "  Description: %s\n", rec.GetDescription())
		fmt.Fprintf(out, "  Tips: %s\n", rec.GetTips())
	}
	if count == 0 {
		fmt.Fprintln(out, "No workouts found.")
	}
	return nil
}
