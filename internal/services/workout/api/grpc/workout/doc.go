// Package workout implements the workout.v1 WorkoutRecommendationService
// gRPC handlers.
package workout
