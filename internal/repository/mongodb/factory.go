// Package mongodb stores users and exercises as MongoDB documents in the
// "users" and "exercises" collections.
package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repo "github.com/baharkarakas/exercise-tracker/internal/repository"
)

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

func NewRepositories(db *mongo.Database) repo.Repositories {
	return repo.Repositories{
		Users:     &usersRepo{db.Collection(usersCollection)},
		Exercises: &exercisesRepo{db.Collection(exercisesCollection)},
	}
}

// EnsureIndexes creates the unique username index and the log lookup index.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(exercisesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}
