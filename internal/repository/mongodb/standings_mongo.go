package mongodb

import (
	"context"

	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type standingsRepository struct{ col *mongo.Collection }

func NewStandingsRepository(s *Store) repository.StandingsRepository {
	return &standingsRepository{col: s.db.Collection(standingsCollection)}
}

// Create inserts under the season key. The unique _id makes "one standings
// document per season" a store-level guarantee: a concurrent create loses
// with ErrAlreadyExists instead of writing a duplicate.
func (r *standingsRepository) Create(ctx context.Context, s model.LeagueStandings) (model.LeagueStandings, error) {
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return model.LeagueStandings{}, repository.MapMongoError(err)
	}
	return s, nil
}

func (r *standingsRepository) GetBySeason(ctx context.Context, season string) (model.LeagueStandings, error) {
	var out model.LeagueStandings
	if err := r.col.FindOne(ctx, bson.M{"_id": season}).Decode(&out); err != nil {
		return model.LeagueStandings{}, repository.MapMongoError(err)
	}
	return out, nil
}

func (r *standingsRepository) List(ctx context.Context) ([]model.LeagueStandings, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, repository.MapMongoError(err)
	}
	standings := make([]model.LeagueStandings, 0)
	if err := cur.All(ctx, &standings); err != nil {
		return nil, repository.MapMongoError(err)
	}
	return standings, nil
}

func (r *standingsRepository) Update(ctx context.Context, s model.LeagueStandings) (model.LeagueStandings, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.Season}, s)
	if err != nil {
		return model.LeagueStandings{}, repository.MapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return model.LeagueStandings{}, repository.ErrNotFound
	}
	return s, nil
}
