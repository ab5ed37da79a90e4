package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"projecthub/internal/core/domain"
)

func (s *Store) CreateUser(ctx context.Context, user domain.User) error {
	_, err := s.users.InsertOne(ctx, toUserDocument(user))
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (s *Store) GetUserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	return s.findUser(ctx, bson.M{"_id": string(id)})
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *Store) GetUsersByIDs(ctx context.Context, ids []domain.UserID) ([]domain.User, error) {
	users := make([]domain.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": fromUserIDs(ids)}})
	if err != nil {
		return nil, err
	}
	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}
	return users, nil
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (domain.User, error) {
	var doc userDocument
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return doc.toDomain(), nil
}
