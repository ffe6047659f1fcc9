package tools

import (
	"context"
	"fmt"

	caloriev1 "github.com/louisbranch/calorie.space/api/gen/go/calorie/v1"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EstimateInput is the profile accepted by estimate_daily_calories.
type EstimateInput struct {
	Age           int     `json:"age" jsonschema:"age in years"`
	Gender        string  `json:"gender" jsonschema:"MALE or FEMALE"`
	Weight        float64 `json:"weight" jsonschema:"body weight in kilograms"`
	Height        float64 `json:"height" jsonschema:"height in centimeters"`
	ActivityLevel string  `json:"activity_level" jsonschema:"SEDENTARY, LIGHT, MODERATE, VERY_ACTIVE or EXTRA_ACTIVE"`
}

// EstimateResult carries the daily calorie targets.
type EstimateResult struct {
	BMR                float64 `json:"bmr" jsonschema:"basal metabolic rate in kcal"`
	TDEE               float64 `json:"tdee" jsonschema:"total daily energy expenditure in kcal"`
	WeightLossCalories float64 `json:"weight_loss_calories" jsonschema:"daily kcal target for weight loss"`
	WeightGainCalories float64 `json:"weight_gain_calories" jsonschema:"daily kcal target for weight gain"`
}

// EstimateTool defines the MCP tool schema for daily calorie estimates.
func EstimateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "estimate_daily_calories",
		Description: "Estimates BMR, TDEE and weight loss/gain calorie targets for a profile",
	}
}

// EstimateHandler calls CalorieService.CalculateDailyCalories.
func EstimateHandler(client caloriev1.CalorieServiceClient) mcp.ToolHandlerFor[EstimateInput, EstimateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EstimateInput) (*mcp.CallToolResult, EstimateResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		response, err := client.CalculateDailyCalories(callCtx, &caloriev1.UserInfo{
			Age:           int32(input.Age),
			Gender:        input.Gender,
			Weight:        input.Weight,
			Height:        input.Height,
			ActivityLevel: input.ActivityLevel,
		})
		if err != nil {
			return nil, EstimateResult{}, fmt.Errorf("estimate daily calories failed: %w", err)
		}
		return nil, EstimateResult{
			BMR:                response.GetBmr(),
			TDEE:               response.GetTdee(),
			WeightLossCalories: response.GetWeightLossCalories(),
			WeightGainCalories: response.GetWeightGainCalories(),
		}, nil
	}
}
