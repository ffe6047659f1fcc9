package caloriectl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	diningv1 "github.com/louisbranch/calorie.space/api/gen/go/dining/v1"
	"github.com/louisbranch/calorie.space/internal/platform/timeouts"
	"github.com/louisbranch/calorie.space/internal/services/dining/menu"
)

const quitCommand = "quit"

// runMeal reads food names and quantities from in, streams each one and
// prints the server's report, then an order summary once the user quits or
// input ends.
func runMeal(ctx context.Context, client diningv1.DiningCalorieServiceClient, in io.Reader, out io.Writer) error {
	sessionCtx, cancel := context.WithTimeout(ctx, timeouts.MealSession)
	defer cancel()

	stream, err := client.StreamFoodCalories(sessionCtx)
	if err != nil {
		return fmt.Errorf("open meal stream: %w", err)
	}
	printMenu(out)

	scanner := bufio.NewScanner(in)
	var reports []*diningv1.FoodCalorieInfo
	for {
		fmt.Fprint(out, "\nEnter food name (or 'quit' to finish): ")
		if !scanner.Scan() {
			break
		}
		name := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if name == quitCommand {
			break
		}
		if name == "" {
			continue
		}

		fmt.Fprint(out, "Enter quantity (default: 1): ")
		quantity := 1
		if scanner.Scan() {
			if raw := strings.TrimSpace(scanner.Text()); raw != "" {
				n, convErr := strconv.Atoi(raw)
				if convErr != nil {
					fmt.Fprintln(out, "Invalid quantity. Please enter numbers only.")
					continue
				}
				quantity = n
			}
		}

		if err := stream.Send(&diningv1.FoodItem{Name: name, Quantity: int32(quantity)}); err != nil {
			return fmt.Errorf("send food item: %w", err)
		}
		info, err := stream.Recv()
		if err != nil {
			return fmt.Errorf("receive food report: %w", err)
		}
		reports = append(reports, info)
		fmt.Fprintln(out, "\nFood Information:")
		fmt.Fprintf(out, "Name: %s\n", info.GetName())
		fmt.Fprintf(out, "Calories: %d\n", info.GetCalories())
		fmt.Fprintf(out, "Message: %s\n", info.GetMessage())
		fmt.Fprintln(out, "------------------------")
	}
	if err := scanner.Err(); err != nil {
		_ = stream.CloseSend()
		return fmt.Errorf("read input: %w", err)
	}

	if err := stream.CloseSend(); err != nil {
		return fmt.Errorf("close meal stream: %w", err)
	}
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("finish meal stream: %w", err)
	}

	fmt.Fprintln(out, "\n=== Order Summary and Total Calories ===")
	total := 0
	for _, r := range reports {
		fmt.Fprintf(out, "%s: %d calories\n", r.GetName(), r.GetCalories())
		total += int(r.GetCalories())
	}
	fmt.Fprintln(out, "----------------------------------------")
	fmt.Fprintf(out, "Total Calories: %d calories\n", total)
	return nil
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "\n=== Calorie Calculator Service ===")
	fmt.Fprintln(out, "Please select from the following foods:")
	for _, item := range menu.Default().Items() {
		fmt.Fprintf(out, "- %s (%d calories)\n", item.Name, item.Calories)
	}
	fmt.Fprintln(out, "Enter 'quit' to finish and see total calories")
	fmt.Fprintln(out, "----------------------------------------")
}
