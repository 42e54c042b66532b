package mongodb

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type playerRepository struct{ col *mongo.Collection }

func NewPlayerRepository(s *Store) repository.PlayerRepository {
	return &playerRepository{col: s.db.Collection(playersCollection)}
}

func (r *playerRepository) Create(ctx context.Context, p model.Player) (model.Player, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return model.Player{}, repository.MapMongoError(err)
	}
	return p, nil
}

func (r *playerRepository) GetByID(ctx context.Context, id string) (model.Player, error) {
	var out model.Player
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return model.Player{}, repository.MapMongoError(err)
	}
	return out, nil
}

func (r *playerRepository) List(ctx context.Context) ([]model.Player, error) {
	return r.find(ctx, bson.D{})
}

func (r *playerRepository) ListByApproval(ctx context.Context, approved bool) ([]model.Player, error) {
	return r.find(ctx, bson.D{{Key: "approved", Value: approved}})
}

func (r *playerRepository) find(ctx context.Context, filter bson.D) ([]model.Player, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, repository.MapMongoError(err)
	}
	players := make([]model.Player, 0)
	if err := cur.All(ctx, &players); err != nil {
		return nil, repository.MapMongoError(err)
	}
	return players, nil
}

func (r *playerRepository) Update(ctx context.Context, p model.Player) (model.Player, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return model.Player{}, repository.MapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}
