package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
)

const taskColumns = `id, project_id, title, description, assigned_to, created_by, status, priority, due_date, completed_at, attachments, labels, estimated_hours, actual_hours, created_at, updated_at`

const listProjectTasksQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE project_id = ?
ORDER BY created_at DESC;
`

const countTasksByStatusQuery = `
SELECT status, COUNT(*) AS task_count, COALESCE(SUM(estimated_hours), 0) AS total_hours
FROM tasks
WHERE project_id = ?
GROUP BY status;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             string                     `db:"id"`
	ProjectID      string                     `db:"project_id"`
	Title          string                     `db:"title"`
	Description    string                     `db:"description"`
	AssignedTo     jsonList[string]           `db:"assigned_to"`
	CreatedBy      string                     `db:"created_by"`
	Status         string                     `db:"status"`
	Priority       string                     `db:"priority"`
	DueDate        sql.NullTime               `db:"due_date"`
	CompletedAt    sql.NullTime               `db:"completed_at"`
	Attachments    jsonList[attachmentRecord] `db:"attachments"`
	Labels         jsonList[string]           `db:"labels"`
	EstimatedHours sql.NullFloat64            `db:"estimated_hours"`
	ActualHours    sql.NullFloat64            `db:"actual_hours"`
	CreatedAt      time.Time                  `db:"created_at"`
	UpdatedAt      time.Time                  `db:"updated_at"`
}

type commentRow struct {
	TaskID    string    `db:"task_id"`
	AuthorID  string    `db:"author_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type statusBucketRow struct {
	Status     string  `db:"status"`
	Count      int64   `db:"task_count"`
	TotalHours float64 `db:"total_hours"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) error {
	return withinTransaction(ctx, r.db, func(ctx context.Context) error {
		_, err := conn(ctx, r.db).ExecContext(ctx,
			`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID,
			task.ProjectID,
			task.Title,
			task.Description,
			userIDList(task.AssignedTo),
			string(task.CreatedBy),
			string(task.Status),
			string(task.Priority),
			nullTime(task.DueDate),
			nullTime(task.CompletedAt),
			attachmentList(task.Attachments),
			jsonList[string](task.Labels),
			nullFloat(task.EstimatedHours),
			nullFloat(task.ActualHours),
			task.CreatedAt,
			task.UpdatedAt,
		)
		if err != nil {
			return err
		}
		for _, comment := range task.Comments {
			if err := r.AddComment(ctx, task.ID, comment); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TaskRepository) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	tasks, err := r.withComments(ctx, []taskRow{row})
	if err != nil {
		return domain.Task{}, err
	}
	return tasks[0], nil
}

func (r *TaskRepository) ListProjectTasks(ctx context.Context, projectID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, listProjectTasksQuery, projectID); err != nil {
		return nil, err
	}
	return r.withComments(ctx, rows)
}

// UpdateTask never touches project, creator or comments.
func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	return withinTransaction(ctx, r.db, func(ctx context.Context) error {
		if err := lockRow(ctx, r.db, "tasks", task.ID, domain.ErrTaskNotFound); err != nil {
			return err
		}
		_, err := conn(ctx, r.db).ExecContext(ctx, `
UPDATE tasks
SET title = ?, description = ?, assigned_to = ?, status = ?, priority = ?, due_date = ?, completed_at = ?,
    attachments = ?, labels = ?, estimated_hours = ?, actual_hours = ?, updated_at = ?
WHERE id = ?`,
			task.Title,
			task.Description,
			userIDList(task.AssignedTo),
			string(task.Status),
			string(task.Priority),
			nullTime(task.DueDate),
			nullTime(task.CompletedAt),
			attachmentList(task.Attachments),
			jsonList[string](task.Labels),
			nullFloat(task.EstimatedHours),
			nullFloat(task.ActualHours),
			task.UpdatedAt,
			task.ID,
		)
		return err
	})
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id string) error {
	return withinTransaction(ctx, r.db, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		if _, err := db.ExecContext(ctx, `DELETE FROM task_comments WHERE task_id = ?`, id); err != nil {
			return err
		}
		result, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return requireAffected(result, domain.ErrTaskNotFound)
	})
}

func (r *TaskRepository) DeleteProjectTasks(ctx context.Context, projectID string) (int64, error) {
	var removed int64
	err := withinTransaction(ctx, r.db, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		_, err := db.ExecContext(ctx,
			`DELETE FROM task_comments WHERE task_id IN (SELECT id FROM tasks WHERE project_id = ?)`,
			projectID,
		)
		if err != nil {
			return err
		}
		result, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = ?`, projectID)
		if err != nil {
			return err
		}
		removed, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (r *TaskRepository) AddComment(ctx context.Context, taskID string, comment domain.Comment) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`INSERT INTO task_comments (task_id, author_id, text, created_at) VALUES (?, ?, ?, ?)`,
		taskID, string(comment.Author), comment.Text, comment.CreatedAt,
	)
	return err
}

func (r *TaskRepository) CountTasksByStatus(ctx context.Context, projectID string) ([]domain.StatusBucket, error) {
	var rows []statusBucketRow
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, countTasksByStatusQuery, projectID); err != nil {
		return nil, err
	}

	buckets := make([]domain.StatusBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, domain.StatusBucket{
			Status:     domain.TaskStatus(row.Status),
			Count:      row.Count,
			TotalHours: row.TotalHours,
		})
	}
	return buckets, nil
}

func (r *TaskRepository) withComments(ctx context.Context, rows []taskRow) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(rows))
	if len(rows) == 0 {
		return tasks, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	query, args, err := sqlx.In(`SELECT task_id, author_id, text, created_at FROM task_comments WHERE task_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	db := conn(ctx, r.db)
	var comments []commentRow
	if err := sqlx.SelectContext(ctx, db, &comments, db.Rebind(query), args...); err != nil {
		return nil, err
	}

	byTask := make(map[string][]domain.Comment, len(rows))
	for _, comment := range comments {
		byTask[comment.TaskID] = append(byTask[comment.TaskID], domain.Comment{
			Author:    domain.UserID(comment.AuthorID),
			Text:      comment.Text,
			CreatedAt: comment.CreatedAt,
		})
	}

	for _, row := range rows {
		task := mapTaskRowToDomainTask(row)
		if list, ok := byTask[row.ID]; ok {
			task.Comments = list
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		ProjectID:   row.ProjectID,
		AssignedTo:  make([]domain.UserID, 0, len(row.AssignedTo)),
		CreatedBy:   domain.UserID(row.CreatedBy),
		Status:      domain.TaskStatus(row.Status),
		Priority:    domain.TaskPriority(row.Priority),
		Attachments: make([]domain.Attachment, 0, len(row.Attachments)),
		Comments:    []domain.Comment{},
		Labels:      []string(row.Labels),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	for _, id := range row.AssignedTo {
		task.AssignedTo = append(task.AssignedTo, domain.UserID(id))
	}
	for _, a := range row.Attachments {
		task.Attachments = append(task.Attachments, domain.Attachment{
			Filename:   a.Filename,
			Path:       a.Path,
			Size:       a.Size,
			UploadedAt: a.UploadedAt,
		})
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	if row.EstimatedHours.Valid {
		value := row.EstimatedHours.Float64
		task.EstimatedHours = &value
	}

	if row.ActualHours.Valid {
		value := row.ActualHours.Float64
		task.ActualHours = &value
	}

	return task
}

func userIDList(ids []domain.UserID) jsonList[string] {
	list := make(jsonList[string], 0, len(ids))
	for _, id := range ids {
		list = append(list, string(id))
	}
	return list
}

func attachmentList(attachments []domain.Attachment) jsonList[attachmentRecord] {
	list := make(jsonList[attachmentRecord], 0, len(attachments))
	for _, a := range attachments {
		list = append(list, attachmentRecord{
			Filename:   a.Filename,
			Path:       a.Path,
			Size:       a.Size,
			UploadedAt: a.UploadedAt,
		})
	}
	return list
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
