package mongodb

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type coachRepository struct{ col *mongo.Collection }

func NewCoachRepository(s *Store) repository.CoachRepository {
	return &coachRepository{col: s.db.Collection(coachesCollection)}
}

func (r *coachRepository) Create(ctx context.Context, c model.Coach) (model.Coach, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return model.Coach{}, repository.MapMongoError(err)
	}
	return c, nil
}

func (r *coachRepository) GetByID(ctx context.Context, id string) (model.Coach, error) {
	var out model.Coach
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return model.Coach{}, repository.MapMongoError(err)
	}
	return out, nil
}

func (r *coachRepository) List(ctx context.Context) ([]model.Coach, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, repository.MapMongoError(err)
	}
	coaches := make([]model.Coach, 0)
	if err := cur.All(ctx, &coaches); err != nil {
		return nil, repository.MapMongoError(err)
	}
	return coaches, nil
}

func (r *coachRepository) Update(ctx context.Context, c model.Coach) (model.Coach, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return model.Coach{}, repository.MapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return model.Coach{}, repository.ErrNotFound
	}
	return c, nil
}
