package caloriectl

import (
	"context"
	"flag"
	"fmt"
	"io"

	caloriev1 "github.com/louisbranch/calorie.space/api/gen/go/calorie/v1"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/louisbranch/calorie.space/internal/services/calorie/estimate"
)

func runEstimate(ctx context.Context, client caloriev1.CalorieServiceClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(CommandEstimate, flag.ContinueOnError)
	fs.SetOutput(out)
	age := fs.Int("age", 0, "age in years")
	gender := fs.String("gender", "", "MALE or FEMALE")
	weight := fs.Float64("weight", 0, "weight in kilograms")
	height := fs.Float64("height", 0, "height in centimeters")
	activity := fs.String("activity", estimate.ActivityModerate, "SEDENTARY, LIGHT, MODERATE, VERY_ACTIVE or EXTRA_ACTIVE")
	if err := fs.Parse(args); err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
	defer cancel()
	result, err := client.CalculateDailyCalories(callCtx, &caloriev1.UserInfo{
		Age:           int32(*age),
		Gender:        *gender,
		Weight:        *weight,
		Height:        *height,
		ActivityLevel: *activity,
	})
	if err != nil {
		return fmt.Errorf("calculate daily calories: %w", err)
	}

	fmt.Fprintln(out, "=== Daily Calorie Estimate ===")
	fmt.Fprintf(out, "BMR: %.2f kcal\n", result.GetBmr())
	fmt.Fprintf(out, "TDEE: %.2f kcal\n", result.GetTdee())
	fmt.Fprintf(out, "Weight loss target: %.2f kcal\n", result.GetWeightLossCalories())
	fmt.Fprintf(out, "Weight gain target: %.2f kcal\n", result.GetWeightGainCalories())
	return nil
}
