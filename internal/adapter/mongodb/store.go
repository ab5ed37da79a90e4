package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"projecthub/internal/core/ports"
)

type Store struct {
	users    *mongo.Collection
	projects *mongo.Collection
	tasks    *mongo.Collection
}

var (
	_ ports.UserRepository    = (*Store)(nil)
	_ ports.ProjectRepository = (*Store)(nil)
	_ ports.TaskRepository    = (*Store)(nil)
	_ ports.Transactor        = (*Store)(nil)
)

func NewStore(db *mongo.Database) *Store {
	return &Store{
		users:    db.Collection(usersCollection),
		projects: db.Collection(projectsCollection),
		tasks:    db.Collection(tasksCollection),
	}
}

// WithinTransaction runs fn without a session. Multi-document transactions need
// a replica set, which a standalone deployment does not provide, so a failure
// after the first write is reported but not rolled back.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
