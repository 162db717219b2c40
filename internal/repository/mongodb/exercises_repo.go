package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baharkarakas/exercise-tracker/internal/models"
)

type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	User        primitive.ObjectID `bson:"user,omitempty"`
	Description string             `bson:"description"`
	Duration    int                `bson:"duration"`
	Date        time.Time          `bson:"date"`
	V           int                `bson:"__v"`
}

type exercisesRepo struct{ c *mongo.Collection }

func (r *exercisesRepo) Create(ctx context.Context, e *models.Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}
	user, err := objectID(e.UserID, "Exercise")
	if err != nil {
		return err
	}
	doc := exerciseDoc{
		ID:          primitive.NewObjectID(),
		User:        user,
		Description: e.Description,
		Duration:    e.Duration.Minutes,
		Date:        e.Date,
	}
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return err
	}
	e.ID = doc.ID.Hex()
	return nil
}

func (r *exercisesRepo) Find(ctx context.Context, f models.LogFilter) ([]models.Exercise, error) {
	user, err := objectID(f.UserID, "Exercise")
	if err != nil {
		return nil, err
	}
	filter := bson.M{"user": user}
	if f.From != nil || f.To != nil {
		date := bson.M{}
		if f.From != nil {
			date["$gte"] = *f.From
		}
		if f.To != nil {
			date["$lte"] = *f.To
		}
		filter["date"] = date
	}

	opts := options.Find().SetProjection(bson.D{{Key: "__v", Value: 0}, {Key: "user", Value: 0}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []exerciseDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]models.Exercise, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Exercise{
			ID:          d.ID.Hex(),
			Description: d.Description,
			Duration:    models.Minutes(d.Duration),
			Date:        d.Date.UTC(),
		})
	}
	return out, nil
}
