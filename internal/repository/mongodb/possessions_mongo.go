package mongodb

import (
	"context"

	"github.com/google/uuid"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type possessionRepository struct{ col *mongo.Collection }

func NewPossessionRepository(s *Store) repository.PossessionRepository {
	return &possessionRepository{col: s.db.Collection(possessionsCollection)}
}

func (r *possessionRepository) Create(ctx context.Context, events []model.Possession) (model.PossessionLog, error) {
	log := model.PossessionLog{ID: uuid.NewString(), Events: events}
	if _, err := r.col.InsertOne(ctx, log); err != nil {
		return model.PossessionLog{}, repository.MapMongoError(err)
	}
	return log, nil
}

func (r *possessionRepository) GetByID(ctx context.Context, id string) (model.PossessionLog, error) {
	var out model.PossessionLog
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return model.PossessionLog{}, repository.MapMongoError(err)
	}
	return out, nil
}
