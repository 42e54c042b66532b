package mongodb

import (
	"context"

	"github.com/hoopsim/league-service/internal/model"
	"github.com/hoopsim/league-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type archiveRepository struct{ col *mongo.Collection }

func NewArchiveRepository(s *Store) repository.ArchiveRepository {
	return &archiveRepository{col: s.db.Collection(archivedCollection)}
}

// Create inserts under the archived match's existing id (the id of the
// pending match it replaces). A duplicate id means the match was already
// archived and surfaces as ErrAlreadyExists.
func (r *archiveRepository) Create(ctx context.Context, m model.ArchivedMatch) (model.ArchivedMatch, error) {
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return model.ArchivedMatch{}, repository.MapMongoError(err)
	}
	return m, nil
}

func (r *archiveRepository) GetByID(ctx context.Context, id string) (model.ArchivedMatch, error) {
	var out model.ArchivedMatch
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		return model.ArchivedMatch{}, repository.MapMongoError(err)
	}
	return out, nil
}

func (r *archiveRepository) List(ctx context.Context) ([]model.ArchivedMatch, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, repository.MapMongoError(err)
	}
	games := make([]model.ArchivedMatch, 0)
	if err := cur.All(ctx, &games); err != nil {
		return nil, repository.MapMongoError(err)
	}
	return games, nil
}
