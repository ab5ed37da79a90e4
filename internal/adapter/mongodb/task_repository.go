package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"projecthub/internal/core/domain"
)

func (s *Store) CreateTask(ctx context.Context, task domain.Task) error {
	_, err := s.tasks.InsertOne(ctx, toTaskDocument(task))
	return err
}

func (s *Store) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var doc taskDocument
	if err := s.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return doc.toDomain(), nil
}

func (s *Store) ListProjectTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.tasks.Find(ctx, bson.M{"project": projectID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toDomain())
	}
	return tasks, nil
}

// UpdateTask rewrites every mutable field. Comments are only ever pushed by AddComment.
func (s *Store) UpdateTask(ctx context.Context, task domain.Task) error {
	set := bson.M{
		"title":       task.Title,
		"description": task.Description,
		"assignedTo":  fromUserIDs(task.AssignedTo),
		"status":      string(task.Status),
		"priority":    string(task.Priority),
		"attachments": toAttachmentDocuments(task.Attachments),
		"labels":      nonNil(task.Labels),
		"updatedAt":   task.UpdatedAt,
	}
	unset := bson.M{}
	setOrUnset(set, unset, "dueDate", task.DueDate)
	setOrUnset(set, unset, "completedAt", task.CompletedAt)
	setOrUnset(set, unset, "estimatedHours", task.EstimatedHours)
	setOrUnset(set, unset, "actualHours", task.ActualHours)

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	res, err := s.tasks.UpdateOne(ctx, bson.M{"_id": task.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res, err := s.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (s *Store) DeleteProjectTasks(ctx context.Context, projectID string) (int64, error) {
	res, err := s.tasks.DeleteMany(ctx, bson.M{"project": projectID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) AddComment(ctx context.Context, taskID string, comment domain.Comment) error {
	update := bson.M{"$push": bson.M{"comments": toCommentDocument(comment)}}
	res, err := s.tasks.UpdateOne(ctx, bson.M{"_id": taskID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (s *Store) CountTasksByStatus(ctx context.Context, projectID string) ([]domain.StatusBucket, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "project", Value: projectID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalHours", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$ifNull", Value: bson.A{"$estimatedHours", 0}},
			}}}},
		}}},
	}

	cursor, err := s.tasks.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []statusBucketDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	buckets := make([]domain.StatusBucket, 0, len(docs))
	for _, doc := range docs {
		buckets = append(buckets, domain.StatusBucket{
			Status:     domain.TaskStatus(doc.Status),
			Count:      doc.Count,
			TotalHours: doc.TotalHours,
		})
	}
	return buckets, nil
}

func setOrUnset[T any](set, unset bson.M, field string, value *T) {
	if value == nil {
		unset[field] = ""
		return
	}
	set[field] = *value
}
