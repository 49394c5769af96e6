package domain

// Workout is a named, ordered collection of exercises.
// ID is unique across all workouts and stable for the workout's lifetime;
// edits replace the whole exercise slice rather than patching entries.
type Workout struct {
	ID        string     `bson:"_id" json:"id"`
	Name      string     `bson:"name" json:"name"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// FindExercise returns the exercise with the given id, or nil.
func (w *Workout) FindExercise(exerciseID string) *Exercise {
	for i := range w.Exercises {
		if w.Exercises[i].ID == exerciseID {
			return &w.Exercises[i]
		}
	}
	return nil
}
