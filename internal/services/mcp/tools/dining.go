package tools

import (
	"context"
	"errors"
	"fmt"
	"io"

	diningv1 "github.com/louisbranch/calorie.space/api/gen/go/dining/v1"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MealItem is one ordered food.
type MealItem struct {
	Name     string `json:"name" jsonschema:"menu item name, matched case-insensitively"`
	Quantity int    `json:"quantity,omitempty" jsonschema:"servings; 0 counts as one"`
}

// MealInput is the order accepted by the meal tools.
type MealInput struct {
	Items []MealItem `json:"items" jsonschema:"ordered food items"`
}

// FoodReport is one per-item result.
type FoodReport struct {
	Name     string `json:"name" jsonschema:"normalized food name"`
	Calories int    `json:"calories" jsonschema:"calories for this line item; 0 when unknown"`
	Message  string `json:"message" jsonschema:"human readable summary including the running total"`
}

// TallyMealResult carries every per-item report in order.
type TallyMealResult struct {
	Reports []FoodReport `json:"reports" jsonschema:"one report per ordered item in order"`
}

// MealTotalResult carries the aggregate for an order.
type MealTotalResult struct {
	TotalCalories int    `json:"total_calories" jsonschema:"sum of recognized item calories"`
	ItemCount     int    `json:"item_count" jsonschema:"number of recognized items"`
	Message       string `json:"message" jsonschema:"summary message"`
}

// TallyMealTool defines the MCP tool schema for per-item meal reports.
func TallyMealTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "tally_meal",
		Description: "Streams an order item by item and returns a calorie report for each",
	}
}

// MealTotalTool defines the MCP tool schema for meal totals.
func MealTotalTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "meal_total",
		Description: "Streams an order and returns only its calorie total",
	}
}

// TallyMealHandler runs one DiningCalorieService.StreamFoodCalories session.
func TallyMealHandler(client diningv1.DiningCalorieServiceClient) mcp.ToolHandlerFor[MealInput, TallyMealResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MealInput) (*mcp.CallToolResult, TallyMealResult, error) {
		sessionCtx, cancel := context.WithTimeout(ctx, timeouts.MealSession)
		defer cancel()

		stream, err := client.StreamFoodCalories(sessionCtx)
		if err != nil {
			return nil, TallyMealResult{}, fmt.Errorf("open meal stream failed: %w", err)
		}
		result := TallyMealResult{Reports: make([]FoodReport, 0, len(input.Items))}
		for _, item := range input.Items {
			if err := stream.Send(&diningv1.FoodItem{Name: item.Name, Quantity: int32(item.Quantity)}); err != nil {
				return nil, TallyMealResult{}, fmt.Errorf("send food item failed: %w", recvCause(stream, err))
			}
			info, err := stream.Recv()
			if err != nil {
				return nil, TallyMealResult{}, fmt.Errorf("receive food report failed: %w", err)
			}
			result.Reports = append(result.Reports, FoodReport{
				Name:     info.GetName(),
				Calories: int(info.GetCalories()),
				Message:  info.GetMessage(),
			})
		}
		if err := stream.CloseSend(); err != nil {
			return nil, TallyMealResult{}, fmt.Errorf("close meal stream failed: %w", err)
		}
		if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
			return nil, TallyMealResult{}, fmt.Errorf("finish meal stream failed: %w", err)
		}
		return nil, result, nil
	}
}

// MealTotalHandler runs one DiningCalorieService.CalculateTotalCalories session.
func MealTotalHandler(client diningv1.DiningCalorieServiceClient) mcp.ToolHandlerFor[MealInput, MealTotalResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MealInput) (*mcp.CallToolResult, MealTotalResult, error) {
		sessionCtx, cancel := context.WithTimeout(ctx, timeouts.MealSession)
		defer cancel()

		stream, err := client.CalculateTotalCalories(sessionCtx)
		if err != nil {
			return nil, MealTotalResult{}, fmt.Errorf("open meal total stream failed: %w", err)
		}
		for _, item := range input.Items {
			if err := stream.Send(&diningv1.FoodItem{Name: item.Name, Quantity: int32(item.Quantity)}); err != nil {
				_, recvErr := stream.CloseAndRecv()
				return nil, MealTotalResult{}, fmt.Errorf("send food item failed: %w", errors.Join(err, recvErr))
			}
		}
		total, err := stream.CloseAndRecv()
		if err != nil {
			return nil, MealTotalResult{}, fmt.Errorf("meal total failed: %w", err)
		}
		return nil, MealTotalResult{
			TotalCalories: int(total.GetTotalCalories()),
			ItemCount:     int(total.GetItemCount()),
			Message:       total.GetMessage(),
		}, nil
	}
}

// recvCause returns the stream status behind an io.EOF from Send. Send
// reports io.EOF once the server has ended the stream; the real status is
// only visible through Recv.
func recvCause(stream interface{ Recv() (*diningv1.FoodCalorieInfo, error) }, sendErr error) error {
	if !errors.Is(sendErr, io.EOF) {
		return sendErr
	}
	if _, err := stream.Recv(); err != nil {
		return err
	}
	return sendErr
}
