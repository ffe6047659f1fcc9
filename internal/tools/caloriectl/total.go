package caloriectl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	diningv1 "github.com/louisbranch/calorie.space/api/gen/go/dining/v1"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
)

// parseOrderItem reads "name" or "name:qty".
func parseOrderItem(raw string) (*diningv1.FoodItem, error) {
	name, qty, hasQty := strings.Cut(raw, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("order item %q has no name", raw)
	}
	item := &diningv1.FoodItem{Name: name, Quantity: 1}
	if hasQty {
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return nil, fmt.Errorf("order item %q has invalid quantity", raw)
		}
		item.Quantity = int32(n)
	}
	return item, nil
}

func runTotal(ctx context.Context, client diningv1.DiningCalorieServiceClient, args []string, out io.Writer) error {
	items := make([]*diningv1.FoodItem, 0, len(args))
	for _, arg := range args {
		item, err := parseOrderItem(arg)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	sessionCtx, cancel := context.WithTimeout(ctx, timeouts.MealSession)
	defer cancel()
	stream, err := client.CalculateTotalCalories(sessionCtx)
	if err != nil {
		return fmt.Errorf("open total stream: %w", err)
	}
	for _, item := range items {
		if err := stream.Send(item); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("send food item: %w", err)
		}
	}
	result, err := stream.CloseAndRecv()
	if err != nil {
		return fmt.Errorf("calculate total calories: %w", err)
	}
	fmt.Fprintln(out, result.GetMessage())
	return nil
}
