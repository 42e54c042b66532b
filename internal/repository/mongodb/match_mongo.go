package mongodb

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type matchRepository struct{ col *mongo.Collection }

func NewMatchRepository(s *Store) repository.MatchRepository {
	return &matchRepository{col: s.db.Collection(matchesCollection)}
}

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return model.Match{}, repository.MapMongoError(err)
	}
	return m, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (model.Match, error) {
	var out model.Match
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return model.Match{}, repository.MapMongoError(err)
	}
	return out, nil
}

func (r *matchRepository) List(ctx context.Context) ([]model.Match, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, repository.MapMongoError(err)
	}
	matches := make([]model.Match, 0)
	if err := cur.All(ctx, &matches); err != nil {
		return nil, repository.MapMongoError(err)
	}
	return matches, nil
}

func (r *matchRepository) Update(ctx context.Context, m model.Match) (model.Match, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return model.Match{}, repository.MapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return model.Match{}, repository.ErrNotFound
	}
	return m, nil
}

func (r *matchRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.MapMongoError(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
