package workout

import (
	workoutv1 "github.com/louisbranch/calorie.space/api/gen/go/workout/v1"
	"github.com/louisbranch/calorie.space/internal/platform/activitylog"
	apperrors "github.com/louisbranch/calorie.space/internal/platform/errors"
	"github.com/louisbranch/calorie.space/internal/services/shared/grpcmeta"
	"github.com/louisbranch/calorie.space/internal/services/workout/catalog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Service exposes workout.v1 gRPC operations.
type Service struct {
	workoutv1.UnimplementedWorkoutRecommendationServiceServer
	catalog  *catalog.Catalog
	activity *activitylog.Logger
}

// NewService creates a workout service over a read-only catalog.
func NewService(c *catalog.Catalog, activity *activitylog.Logger) *Service {
	return &Service{catalog: c, activity: activity}
}

// GetWorkoutRecommendations streams every exercise matching the requested
// target area and fitness level. No matches completes the stream empty.
func (s *Service) GetWorkoutRecommendations(in *workoutv1.WorkoutRequest, stream grpc.ServerStreamingServer[workoutv1.WorkoutRecommendation]) error {
	if in == nil {
		return status.Error(codes.InvalidArgument, "workout request is required")
	}
	if s == nil || s.catalog == nil {
		return status.Error(codes.Internal, "workout catalog is not configured")
	}
	requestID := grpcmeta.RequestIDFromContext(stream.Context())
	s.activity.Printf("WorkoutRecommendationServer: Received request %s - Target Area: %s, Fitness Level: %s",
		requestID, in.GetTargetArea(), in.GetFitnessLevel())

	seq, err := s.catalog.Recommend(catalog.Query{
		TargetArea:   in.GetTargetArea(),
		FitnessLevel: in.GetFitnessLevel(),
	})
	if err != nil {
		s.activity.Printf("WorkoutRecommendationServer: Request %s rejected - %v", requestID, err)
		return apperrors.ToGRPC(err)
	}

	sent := 0
	for rec := range seq {
		s.activity.Printf("WorkoutRecommendationServer: Recommending - Exercise: %s, Sets: %d, Reps: %d, Level: %s",
			rec.ExerciseName, rec.Sets, rec.Reps, rec.FitnessLevel)
		if err := stream.Send(toProto(rec)); err != nil {
			s.activity.Printf("WorkoutRecommendationServer: Request %s stream error - %v", requestID, err)
			return err
		}
		sent++
	}
	if sent == 0 {
		s.activity.Printf("WorkoutRecommendationServer: No workouts found for target area: %s with fitness level: %s",
			in.GetTargetArea(), in.GetFitnessLevel())
	}
	s.activity.Printf("WorkoutRecommendationServer: Request %s completed - %d recommendations", requestID, sent)
	return nil
}

func toProto(rec catalog.Recommendation) *workoutv1.WorkoutRecommendation {
	return &workoutv1.WorkoutRecommendation{
		ExerciseName: rec.ExerciseName,
		Sets:         int32(rec.Sets),
		Reps:         int32(rec.Reps),
		Equipment:    rec.Equipment,
		Description:  rec.Description,
		Tips:         rec.Tips,
		FitnessLevel: rec.FitnessLevel,
	}
}
