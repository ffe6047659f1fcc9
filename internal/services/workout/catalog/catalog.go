// Package catalog holds the read-only workout table and filters it by
// target area and fitness level.
package catalog

import (
	"iter"
	"strings"

	apperrors "github.com/louisbranch/calorie.space/internal/platform/errors"
)

// Target areas accepted by Recommend.
const (
	TargetUpperBody = "UPPER_BODY"
	TargetLowerBody = "LOWER_BODY"
	TargetCore      = "CORE"
)

// Fitness levels accepted by Recommend.
const (
	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

// Recommendation is one exercise suggestion.
type Recommendation struct {
	ExerciseName string
	Sets         int
	Reps         int
	Equipment    string
	Description  string
	Tips         string
	FitnessLevel string
}

// Query selects recommendations. Both fields are matched case-insensitively.
type Query struct {
	TargetArea   string
	FitnessLevel string
}

// Catalog maps bucket keys to their ordered exercises. It is never mutated
// after construction and is safe for concurrent use.
type Catalog struct {
	buckets map[string][]Recommendation
}

// targetBuckets maps accepted target areas onto their internal bucket.
var targetBuckets = map[string]string{
	TargetUpperBody: "chest",
	TargetLowerBody: "legs",
	TargetCore:      "core",
}

var fitnessLevels = map[string]bool{
	LevelBeginner:     true,
	LevelIntermediate: true,
	LevelAdvanced:     true,
}

// Default returns the standard bodyweight workout catalog.
func Default() *Catalog {
	return &Catalog{buckets: map[string][]Recommendation{
		"chest": {
			{ExerciseName: "Push-ups", Sets: 3, Reps: 10, Equipment: "None",
				Description: "Basic bodyweight exercise for chest",
				Tips:        "Keep your body straight and elbows close to body", FitnessLevel: LevelBeginner},
			{ExerciseName: "Diamond Push-ups", Sets: 4, Reps: 12, Equipment: "None",
				Description: "Advanced variation of push-ups targeting inner chest",
				Tips:        "Form a diamond shape with your hands", FitnessLevel: LevelIntermediate},
			{ExerciseName: "Plyometric Push-ups", Sets: 5, Reps: 15, Equipment: "None",
				Description: "Explosive push-up variation for advanced users",
				Tips:        "Push with enough force to lift hands off the ground", FitnessLevel: LevelAdvanced},
		},
		"legs": {
			{ExerciseName: "Bodyweight Squats", Sets: 3, Reps: 12, Equipment: "None",
				Description: "Basic lower body exercise",
				Tips:        "Keep your back straight and knees aligned with toes", FitnessLevel: LevelBeginner},
			{ExerciseName: "Jump Squats", Sets: 4, Reps: 15, Equipment: "None",
				Description: "Dynamic squat variation with jump",
				Tips:        "Land softly and maintain proper form", FitnessLevel: LevelIntermediate},
			{ExerciseName: "Pistol Squats", Sets: 5, Reps: 8, Equipment: "None",
				Description: "Single-leg squat variation for advanced users",
				Tips:        "Keep the non-working leg extended forward", FitnessLevel: LevelAdvanced},
		},
		"core": {
			{ExerciseName: "Plank", Sets: 3, Reps: 30, Equipment: "None",
				Description: "Basic core stabilization exercise",
				Tips:        "Hold the position with a straight body", FitnessLevel: LevelBeginner},
			{ExerciseName: "Russian Twists", Sets: 4, Reps: 20, Equipment: "None",
				Description: "Rotational core exercise",
				Tips:        "Keep your feet off the ground and rotate slowly", FitnessLevel: LevelIntermediate},
			{ExerciseName: "Dragon Flags", Sets: 5, Reps: 8, Equipment: "Bench or bar",
				Description: "Advanced core strength exercise",
				Tips:        "Control the movement and maintain straight body", FitnessLevel: LevelAdvanced},
		},
	}}
}

// NormalizeTarget upper-cases a target area and folds spaces and hyphens
// into underscores, so "upper body" and "Upper-Body" both read UPPER_BODY.
func NormalizeTarget(raw string) string {
	target := strings.ToUpper(strings.TrimSpace(raw))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(target)
}

// NormalizeLevel upper-cases a fitness level.
func NormalizeLevel(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Recommend validates q and returns the matching exercises in table order.
// The sequence is computed lazily and may be empty.
func (c *Catalog) Recommend(q Query) (iter.Seq[Recommendation], error) {
	bucket, ok := targetBuckets[NormalizeTarget(q.TargetArea)]
	if !ok {
		return nil, apperrors.InvalidField(apperrors.CodeWorkoutInvalidTargetArea, "target_area",
			"Invalid target area. Must be one of: UPPER_BODY, LOWER_BODY, CORE")
	}
	level := NormalizeLevel(q.FitnessLevel)
	if !fitnessLevels[level] {
		return nil, apperrors.InvalidField(apperrors.CodeWorkoutInvalidFitnessLevel, "fitness_level",
			"Invalid fitness level. Must be one of: BEGINNER, INTERMEDIATE, ADVANCED")
	}

	var exercises []Recommendation
	if c != nil {
		exercises = c.buckets[bucket]
	}
	return func(yield func(Recommendation) bool) {
		for _, rec := range exercises {
			if rec.FitnessLevel != level {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}, nil
}
