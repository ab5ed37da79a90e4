package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"projecthub/internal/core/domain"
)

func (s *Store) CreateProject(ctx context.Context, project domain.Project) error {
	_, err := s.projects.InsertOne(ctx, toProjectDocument(project))
	return err
}

func (s *Store) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var doc projectDocument
	if err := s.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return doc.toDomain(), nil
}

func (s *Store) ListProjectsForUser(ctx context.Context, userID domain.UserID) ([]domain.Project, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"owner": string(userID)},
		bson.M{"team": string(userID)},
	}}
	cursor, err := s.projects.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []projectDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	projects := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		projects = append(projects, doc.toDomain())
	}
	return projects, nil
}

// UpdateProject leaves owner, team and createdAt untouched.
func (s *Store) UpdateProject(ctx context.Context, project domain.Project) error {
	set := bson.M{
		"name":        project.Name,
		"description": project.Description,
		"status":      string(project.Status),
		"color":       project.Color,
		"startDate":   project.StartDate,
		"tags":        nonNil(project.Tags),
		"updatedAt":   project.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if project.EndDate != nil {
		set["endDate"] = *project.EndDate
	} else {
		update["$unset"] = bson.M{"endDate": ""}
	}

	res, err := s.projects.UpdateOne(ctx, bson.M{"_id": project.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	res, err := s.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (s *Store) AddTeamMember(ctx context.Context, projectID string, memberID domain.UserID) error {
	return s.updateTeam(ctx, projectID, bson.M{"$addToSet": bson.M{"team": string(memberID)}})
}

func (s *Store) RemoveTeamMember(ctx context.Context, projectID string, memberID domain.UserID) error {
	return s.updateTeam(ctx, projectID, bson.M{"$pull": bson.M{"team": string(memberID)}})
}

func (s *Store) updateTeam(ctx context.Context, projectID string, update bson.M) error {
	res, err := s.projects.UpdateOne(ctx, bson.M{"_id": projectID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
