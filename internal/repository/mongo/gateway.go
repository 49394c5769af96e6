package mongo

import (
	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	workoutCollectionName    = "workouts"
	assignmentCollectionName = "workout_assignments"
)

// mongoGateway implements repository.Gateway on MongoDB. Workouts are keyed
// by their id and assignments by their date (both stored as _id), which
// makes every save a natural upsert.
type mongoGateway struct {
	workouts    *mongo.Collection
	assignments *mongo.Collection
}

// NewGateway creates a MongoDB-backed gateway.
func NewGateway(db *mongo.Database) repository.Gateway {
	return &mongoGateway{
		workouts:    db.Collection(workoutCollectionName),
		assignments: db.Collection(assignmentCollectionName),
	}
}

func (g *mongoGateway) LoadWorkouts(ctx context.Context) ([]domain.Workout, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := g.workouts.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, repository.WrapErr("load workouts", err)
	}
	defer cursor.Close(ctx)

	var workouts []domain.Workout
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, repository.WrapErr("load workouts", err)
	}
	return workouts, nil
}

func (g *mongoGateway) SaveWorkouts(ctx context.Context, workouts []domain.Workout) error {
	for _, workout := range workouts {
		if err := g.SaveWorkout(ctx, workout); err != nil {
			return err
		}
	}
	return nil
}

func (g *mongoGateway) SaveWorkout(ctx context.Context, workout domain.Workout) error {
	filter := bson.M{"_id": workout.ID}
	_, err := g.workouts.ReplaceOne(ctx, filter, workout, options.Replace().SetUpsert(true))
	return repository.WrapErr("save workout", err)
}

func (g *mongoGateway) DeleteWorkout(ctx context.Context, workoutID string) error {
	_, err := g.workouts.DeleteOne(ctx, bson.M{"_id": workoutID})
	return repository.WrapErr("delete workout", err)
}

func (g *mongoGateway) LoadAssignments(ctx context.Context) ([]domain.WorkoutAssignment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := g.assignments.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, repository.WrapErr("load assignments", err)
	}
	defer cursor.Close(ctx)

	var assignments []domain.WorkoutAssignment
	if err = cursor.All(ctx, &assignments); err != nil {
		return nil, repository.WrapErr("load assignments", err)
	}
	return assignments, nil
}

func (g *mongoGateway) SaveAssignments(ctx context.Context, assignments []domain.WorkoutAssignment) error {
	for _, assignment := range assignments {
		if err := g.SaveAssignment(ctx, assignment); err != nil {
			return err
		}
	}
	return nil
}

func (g *mongoGateway) SaveAssignment(ctx context.Context, assignment domain.WorkoutAssignment) error {
	filter := bson.M{"_id": assignment.Date}
	_, err := g.assignments.ReplaceOne(ctx, filter, assignment, options.Replace().SetUpsert(true))
	return repository.WrapErr("save assignment", err)
}

func (g *mongoGateway) UpdateAssignmentDone(ctx context.Context, date string, done bool) error {
	filter := bson.M{"_id": date}
	update := bson.M{"$set": bson.M{"done": done}}
	// A missing date matches nothing, which is the contract's no-op.
	_, err := g.assignments.UpdateOne(ctx, filter, update)
	return repository.WrapErr("update assignment", err)
}

func (g *mongoGateway) DeleteAssignment(ctx context.Context, date string) error {
	_, err := g.assignments.DeleteOne(ctx, bson.M{"_id": date})
	return repository.WrapErr("delete assignment", err)
}

func (g *mongoGateway) DeleteAssignmentsByMonth(ctx context.Context, year int, month int) error {
	lower, upper := repository.MonthBounds(year, month)
	filter := bson.M{"_id": bson.M{"$gte": lower, "$lt": upper}}
	_, err := g.assignments.DeleteMany(ctx, filter)
	return repository.WrapErr("delete assignments for month", err)
}
