// Package calorie implements the calorie.v1 CalorieService gRPC handlers.
package calorie
