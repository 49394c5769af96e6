package domain

// DefaultWorkouts returns the built-in workout set used when persistence
// holds no workouts yet (first run, or an emptied backend). Callers get a
// fresh copy each time; mutating the result never touches the seed data.
func DefaultWorkouts() []Workout {
	return []Workout{
		{
			ID:   "chest-back",
			Name: "Chest & Back",
			Exercises: []Exercise{
				{ID: "13", Name: "Pec Deck", Sets: "1", Weight: "4", MaxReps: "10", MinReps: "6"},
				{ID: "14", Name: "Incline Press", Sets: "1", Weight: "5", MaxReps: "3", MinReps: "1"},
				{ID: "15", Name: "Close Grip Pulldowns", Sets: "1", Weight: "100", MaxReps: "10", MinReps: "6"},
				{ID: "16", Name: "Deadlift", Sets: "1", Weight: "100", MaxReps: "8", MinReps: "5"},
			},
		},
		{
			ID:   "legs-one",
			Name: "Legs Day One",
			Exercises: []Exercise{
				{ID: "10", Name: "Legs Extension", Sets: "1", Weight: "100", MaxReps: "15", MinReps: "8"},
				{ID: "11", Name: "Leg Press", Sets: "1", Weight: "150", MaxReps: "15", MinReps: "8"},
				{ID: "12", Name: "Standing Calf Raises", Sets: "1", Weight: "50", MaxReps: "20", MinReps: "12"},
			},
		},
		{
			ID:   "legs-two",
			Name: "Legs Day Two",
			Exercises: []Exercise{
				{ID: "1", Name: "Legs Extension Hold 20sec", Sets: "1", Weight: "50", MaxReps: "1", MinReps: "1"},
				{ID: "2", Name: "Squat", Sets: "1", Weight: "12", MaxReps: "15", MinReps: "8"},
				{ID: "3", Name: "Calf Raises", Sets: "1", Weight: "100", MaxReps: "20", MinReps: "12"},
			},
		},
		{
			ID:   "shoulders-arms",
			Name: "Shoulders & Arms",
			Exercises: []Exercise{
				{ID: "5", Name: "Lateral Raises", Sets: "1", Weight: "10", MaxReps: "10", MinReps: "6"},
				{ID: "6", Name: "Bentover Lateral Raises", Sets: "1", Weight: "10", MaxReps: "10", MinReps: "6"},
				{ID: "7", Name: "Barbell Curls", Sets: "1", Weight: "50", MaxReps: "10", MinReps: "6"},
				{ID: "8", Name: "Triceps Pressdowns", Sets: "1", Weight: "10", MaxReps: "10", MinReps: "6"},
				{ID: "9", Name: "Dips", Sets: "1", Weight: "body", MaxReps: "5", MinReps: "3"},
			},
		},
	}
}
