package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/baharkarakas/exercise-tracker/internal/models"
	"github.com/baharkarakas/exercise-tracker/internal/repository"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	V        int                `bson:"__v"`
}

type usersRepo struct{ c *mongo.Collection }

func (r *usersRepo) Create(ctx context.Context, u *models.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	doc := userDoc{ID: primitive.NewObjectID(), Username: u.Username}
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return err
	}
	u.ID = doc.ID.Hex()
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := objectID(id, "User")
	if err != nil {
		return models.User{}, err
	}
	var doc userDoc
	err = r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, repository.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return models.User{ID: doc.ID.Hex(), Username: doc.Username}, nil
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.User{ID: d.ID.Hex(), Username: d.Username})
	}
	return out, nil
}

func objectID(id, model string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.NewValidation(fmt.Sprintf(
			`Cast to ObjectId failed for value %q (type string) at path "_id" for model %q`, id, model))
	}
	return oid, nil
}
