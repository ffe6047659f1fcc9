package calorie

import (
	"context"
	"errors"
	"fmt"

	caloriev1 "github.com/louisbranch/calorie.space/api/gen/go/calorie/v1"
	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	apperrors "github.com/louisbranch/calorie.space/internal/platform/errors"
	"github.com/louisbranch/calorie.space/internal/services/calorie/estimate"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcmeta"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service exposes calorie.v1 gRPC operations.
type Service struct {
	caloriev1.UnimplementedCalorieServiceServer
	activity *activitylog.Logger
	compute  func(estimate.Profile) (estimate.Result, error)
}

// NewService creates a calorie service that records requests to activity.
func NewService(activity *activitylog.Logger) *Service {
	return &Service{
		activity: activity,
		compute:  estimate.Compute,
	}
}

// CalculateDailyCalories estimates BMR, TDEE and daily targets for one profile.
func (s *Service) CalculateDailyCalories(ctx context.Context, in *caloriev1.UserInfo) (_ *caloriev1.CalorieResult, err error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "user info is required")
	}
	if s == nil || s.compute == nil {
		return nil, status.Error(codes.Internal, "calorie estimator is not configured")
	}
	requestID := grpcmeta.RequestIDFromContext(ctx)
	s.activity.Printf("CalorieServer: Received request %s - Age: %d, Gender: %s, Weight: %.1f, Height: %.1f, Activity: %s",
		requestID, in.GetAge(), in.GetGender(), in.GetWeight(), in.GetHeight(), in.GetActivityLevel())

	defer func() {
		if r := recover(); r != nil {
			s.activity.Printf("CalorieServer: Request %s failed - %v", requestID, r)
			err = apperrors.ToGRPC(apperrors.Internalf(fmt.Errorf("%v", r), "Error calculating calories"))
		}
	}()

	result, err := s.compute(estimate.Profile{
		Age:           int(in.GetAge()),
		Gender:        in.GetGender(),
		Weight:        in.GetWeight(),
		Height:        in.GetHeight(),
		ActivityLevel: in.GetActivityLevel(),
	})
	if err != nil {
		s.activity.Printf("CalorieServer: Request %s rejected - %v", requestID, err)
		var domainErr *apperrors.Error
		if errors.As(err, &domainErr) {
			return nil, apperrors.ToGRPC(err)
		}
		return nil, apperrors.ToGRPC(apperrors.Internalf(err, "Error calculating calories"))
	}

	s.activity.Printf("CalorieServer: Request %s completed - BMR: %.2f, TDEE: %.2f", requestID, result.BMR, result.TDEE)
	return &caloriev1.CalorieResult{
		Bmr:                result.BMR,
		Tdee:               result.TDEE,
		WeightLossCalories: result.LossTarget,
		WeightGainCalories: result.GainTarget,
	}, nil
}
