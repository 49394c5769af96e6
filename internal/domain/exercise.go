package domain

// Exercise is a single line item inside a Workout.
//
// Sets, MinReps, MaxReps and Weight are deliberately strings: the planner
// accepts free-form values such as a weight of "body". Range rules (clamp to
// a minimum of 1, min/max reps ordering) are enforced at edit time by the
// store, never at rest.
type Exercise struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	Sets    string `bson:"sets" json:"sets"`
	MinReps string `bson:"minReps" json:"minReps"`
	MaxReps string `bson:"maxReps" json:"maxReps"`
	Weight  string `bson:"weight" json:"weight"`
}
