package domain

// WorkoutAssignment binds exactly one workout to exactly one calendar date.
// Date is an ISO calendar date (YYYY-MM-DD) and is the key: the assignment
// set never holds two entries for the same date.
//
// Done marks the workout as completed. A done assignment is protected from
// deletion; it has to be flipped back to not-done first.
type WorkoutAssignment struct {
	Date      string `bson:"_id" json:"date"`
	WorkoutID string `bson:"workoutId" json:"workoutId"`
	Done      bool   `bson:"done" json:"done"`
}
