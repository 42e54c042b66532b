package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type teamRepository struct{ col *mongo.Collection }

func NewTeamRepository(s *Store) repository.TeamRepository {
	return &teamRepository{col: s.db.Collection(teamsCollection)}
}

func (r *teamRepository) Create(ctx context.Context, t model.Team) (model.Team, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return model.Team{}, repository.MapMongoError(err)
	}
	return t, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (model.Team, error) {
	var out model.Team
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return model.Team{}, repository.MapMongoError(err)
	}
	return out, nil
}

func (r *teamRepository) List(ctx context.Context) ([]model.Team, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, repository.MapMongoError(err)
	}
	teams := make([]model.Team, 0)
	if err := cur.All(ctx, &teams); err != nil {
		return nil, repository.MapMongoError(err)
	}
	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, t model.Team) (model.Team, error) {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return model.Team{}, repository.MapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return model.Team{}, repository.ErrNotFound
	}
	return t, nil
}

// IncrementRecord bumps one counter with $inc so concurrent approvals cannot
// lose updates. Returns the post-increment document.
func (r *teamRepository) IncrementRecord(ctx context.Context, id string, win bool, at time.Time) (model.Team, error) {
	field := "record.losses"
	if win {
		field = "record.wins"
	}
	update := bson.M{
		"$inc": bson.M{field: 1},
		"$set": bson.M{"updated_at": at},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var out model.Team
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&out); err != nil {
		return model.Team{}, repository.MapMongoError(err)
	}
	return out, nil
}
