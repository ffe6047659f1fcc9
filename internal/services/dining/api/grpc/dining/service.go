package dining

import (
	"math"

	diningv1 "github.com/louisbranch/calorie.space/api/gen/go/dining/v1"
	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	apperrors "github.com/louisbranch/calorie.space/internal/platform/errors"
	"github.com/louisbranch/calorie.space/internal/services/dining/meal"
	"github.com/louisbranch/calorie.space/internal/services/dining/menu"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcmeta"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service exposes dining.v1 gRPC operations.
type Service struct {
	diningv1.UnimplementedDiningCalorieServiceServer
	tally    *meal.Tally
	activity *activitylog.Logger
}

// NewService creates a dining service over a read-only menu.
func NewService(m *menu.Menu, activity *activitylog.Logger) *Service {
	return &Service{
		tally:    meal.NewTally(m, activity),
		activity: activity,
	}
}

// StreamFoodCalories reports calories for each streamed food item in order.
func (s *Service) StreamFoodCalories(stream grpc.BidiStreamingServer[diningv1.FoodItem, diningv1.FoodCalorieInfo]) error {
	if s == nil || s.tally == nil {
		return status.Error(codes.Internal, "meal tally is not configured")
	}
	ctx := stream.Context()
	s.activity.Printf("DiningCalorieServer: New streaming food calories request received %s", grpcmeta.RequestIDFromContext(ctx))

	sink := meal.SinkFunc(func(r meal.Report) error {
		return stream.Send(&diningv1.FoodCalorieInfo{
			Name:     r.Name,
			Calories: clampInt32(r.Calories),
			Message:  r.Message,
		})
	})
	if _, err := s.tally.Run(ctx, recvSource(stream.Recv), sink); err != nil {
		return apperrors.ToGRPC(err)
	}
	return nil
}

// CalculateTotalCalories returns one aggregate once the client finishes
// streaming food items.
func (s *Service) CalculateTotalCalories(stream grpc.ClientStreamingServer[diningv1.FoodItem, diningv1.TotalCalorieResult]) error {
	if s == nil || s.tally == nil {
		return status.Error(codes.Internal, "meal tally is not configured")
	}
	ctx := stream.Context()
	s.activity.Printf("DiningCalorieServer: New total calories calculation request received %s", grpcmeta.RequestIDFromContext(ctx))

	total, err := s.tally.Aggregate(ctx, recvSource(stream.Recv))
	if err != nil {
		return apperrors.ToGRPC(err)
	}
	return stream.SendAndClose(&diningv1.TotalCalorieResult{
		TotalCalories: clampInt32(total.TotalCalories),
		ItemCount:     clampInt32(total.ItemCount),
		Message:       total.Message,
	})
}

// recvSource adapts a stream Recv func to meal.Source. Recv already returns
// io.EOF when the client closes its send side.
func recvSource(recv func() (*diningv1.FoodItem, error)) meal.Source {
	return meal.SourceFunc(func() (meal.Entry, error) {
		item, err := recv()
		if err != nil {
			return meal.Entry{}, err
		}
		return meal.Entry{Name: item.GetName(), Quantity: int(item.GetQuantity())}, nil
	})
}

func clampInt32(v int) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
