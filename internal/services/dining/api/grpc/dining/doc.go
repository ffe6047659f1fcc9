// Package dining implements the dining.v1 DiningCalorieService gRPC
// handlers on top of meal sessions.
package dining
