package tools

import (
	"context"
	"errors"
	"fmt"
	"io"

	workoutv1 "github.com/louisbranch/calorie.space/api/gen/go/workout/v1"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WorkoutInput selects recommendations.
type WorkoutInput struct {
	TargetArea   string `json:"target_area" jsonschema:"UPPER_BODY, LOWER_BODY or CORE"`
	FitnessLevel string `json:"fitness_level" jsonschema:"BEGINNER, INTERMEDIATE or ADVANCED"`
}

// Workout is one recommended exercise.
type Workout struct {
	ExerciseName string `json:"exercise_name" jsonschema:"exercise name"`
	Sets         int    `json:"sets" jsonschema:"number of sets"`
	Reps         int    `json:"reps" jsonschema:"repetitions per set"`
	Equipment    string `json:"equipment" jsonschema:"equipment needed"`
	Description  string `json:"description" jsonschema:"what the exercise trains"`
	Tips         string `json:"tips" jsonschema:"form tips"`
	FitnessLevel string `json:"fitness_level" jsonschema:"fitness level tag"`
}

// WorkoutResult lists the matching exercises in catalog order.
type WorkoutResult struct {
	Recommendations []Workout `json:"recommendations" jsonschema:"matching exercises; may be empty"`
}

// RecommendTool defines the MCP tool schema for workout recommendations.
func RecommendTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "recommend_workouts",
		Description: "Lists bodyweight exercises for a target area and fitness level",
	}
}

// RecommendHandler collects WorkoutRecommendationService.GetWorkoutRecommendations.
func RecommendHandler(client workoutv1.WorkoutRecommendationServiceClient) mcp.ToolHandlerFor[WorkoutInput, WorkoutResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorkoutInput) (*mcp.CallToolResult, WorkoutResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		stream, err := client.GetWorkoutRecommendations(callCtx, &workoutv1.WorkoutRequest{
			TargetArea:   input.TargetArea,
			FitnessLevel: input.FitnessLevel,
		})
		if err != nil {
			return nil, WorkoutResult{}, fmt.Errorf("recommend workouts failed: %w", err)
		}
		result := WorkoutResult{Recommendations: []Workout{}}
		for {
			rec, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return nil, result, nil
			}
			if err != nil {
				return nil, WorkoutResult{}, fmt.Errorf("recommend workouts failed: %w", err)
			}
			result.Recommendations = append(result.Recommendations, Workout{
				ExerciseName: rec.GetExerciseName(),
				Sets:         int(rec.GetSets()),
				Reps:         int(rec.GetReps()),
				Equipment:    rec.GetEquipment(),
				Description:  rec.GetDescription(),
				Tips:         rec.GetTips(),
				FitnessLevel: rec.GetFitnessLevel(),
			})
		}
	}
}
