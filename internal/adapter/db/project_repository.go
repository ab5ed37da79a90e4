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

const projectColumns = `id, name, description, owner_id, status, color, start_date, end_date, tags, created_at, updated_at`

const listProjectsForUserQuery = `
SELECT ` + projectColumns + `
FROM projects p
WHERE p.owner_id = ?
   OR EXISTS (SELECT 1 FROM project_members m WHERE m.project_id = p.id AND m.user_id = ?)
ORDER BY p.created_at DESC;
`

const addTeamMemberQuery = `
INSERT INTO project_members (project_id, user_id)
SELECT ?, ?
FROM projects
WHERE id = ?
  AND NOT EXISTS (SELECT 1 FROM project_members WHERE project_id = ? AND user_id = ?);
`

type ProjectRepository struct {
	db *sqlx.DB
}

type projectRow struct {
	ID          string           `db:"id"`
	Name        string           `db:"name"`
	Description string           `db:"description"`
	OwnerID     string           `db:"owner_id"`
	Status      string           `db:"status"`
	Color       string           `db:"color"`
	StartDate   time.Time        `db:"start_date"`
	EndDate     sql.NullTime     `db:"end_date"`
	Tags        jsonList[string] `db:"tags"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

type memberRow struct {
	ProjectID string `db:"project_id"`
	UserID    string `db:"user_id"`
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *sqlx.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project domain.Project) error {
	return withinTransaction(ctx, r.db, func(ctx context.Context) error {
		_, err := conn(ctx, r.db).ExecContext(ctx,
			`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			project.ID,
			project.Name,
			project.Description,
			string(project.OwnerID),
			string(project.Status),
			project.Color,
			project.StartDate,
			nullTime(project.EndDate),
			jsonList[string](project.Tags),
			project.CreatedAt,
			project.UpdatedAt,
		)
		if err != nil {
			return err
		}
		for _, member := range project.Team {
			if err := r.AddTeamMember(ctx, project.ID, member); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var row projectRow
	err := sqlx.GetContext(ctx, conn(ctx, r.db), &row, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, domain.ErrProjectNotFound
		}
		return domain.Project{}, err
	}

	projects, err := r.withTeams(ctx, []projectRow{row})
	if err != nil {
		return domain.Project{}, err
	}
	return projects[0], nil
}

func (r *ProjectRepository) ListProjectsForUser(ctx context.Context, userID domain.UserID) ([]domain.Project, error) {
	var rows []projectRow
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, listProjectsForUserQuery, string(userID), string(userID)); err != nil {
		return nil, err
	}
	return r.withTeams(ctx, rows)
}

// UpdateProject leaves owner and team untouched. MySQL reports unchanged rows as
// unaffected, so existence is checked with a locking read instead of the row count.
func (r *ProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	return withinTransaction(ctx, r.db, func(ctx context.Context) error {
		if err := lockRow(ctx, r.db, "projects", project.ID, domain.ErrProjectNotFound); err != nil {
			return err
		}
		_, err := conn(ctx, r.db).ExecContext(ctx, `
UPDATE projects
SET name = ?, description = ?, status = ?, color = ?, start_date = ?, end_date = ?, tags = ?, updated_at = ?
WHERE id = ?`,
			project.Name,
			project.Description,
			string(project.Status),
			project.Color,
			project.StartDate,
			nullTime(project.EndDate),
			jsonList[string](project.Tags),
			project.UpdatedAt,
			project.ID,
		)
		return err
	})
}

// DeleteProject removes the project row and its memberships. Tasks are left to the caller.
func (r *ProjectRepository) DeleteProject(ctx context.Context, id string) error {
	return withinTransaction(ctx, r.db, func(ctx context.Context) error {
		db := conn(ctx, r.db)
		if _, err := db.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, id); err != nil {
			return err
		}
		result, err := db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return requireAffected(result, domain.ErrProjectNotFound)
	})
}

func (r *ProjectRepository) AddTeamMember(ctx context.Context, projectID string, memberID domain.UserID) error {
	_, err := conn(ctx, r.db).ExecContext(ctx, addTeamMemberQuery,
		projectID, string(memberID), projectID, projectID, string(memberID),
	)
	// A concurrent insert of the same member already produced the desired state.
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

func (r *ProjectRepository) RemoveTeamMember(ctx context.Context, projectID string, memberID domain.UserID) error {
	_, err := conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM project_members WHERE project_id = ? AND user_id = ?`,
		projectID, string(memberID),
	)
	return err
}

func (r *ProjectRepository) withTeams(ctx context.Context, rows []projectRow) ([]domain.Project, error) {
	projects := make([]domain.Project, 0, len(rows))
	if len(rows) == 0 {
		return projects, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	query, args, err := sqlx.In(`SELECT project_id, user_id FROM project_members WHERE project_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	db := conn(ctx, r.db)
	var members []memberRow
	if err := sqlx.SelectContext(ctx, db, &members, db.Rebind(query), args...); err != nil {
		return nil, err
	}

	teams := make(map[string][]domain.UserID, len(rows))
	for _, member := range members {
		teams[member.ProjectID] = append(teams[member.ProjectID], domain.UserID(member.UserID))
	}

	for _, row := range rows {
		project := domain.Project{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			OwnerID:     domain.UserID(row.OwnerID),
			Team:        teams[row.ID],
			Status:      domain.ProjectStatus(row.Status),
			Color:       row.Color,
			StartDate:   row.StartDate,
			Tags:        []string(row.Tags),
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
		if project.Team == nil {
			project.Team = []domain.UserID{}
		}
		if row.EndDate.Valid {
			value := row.EndDate.Time
			project.EndDate = &value
		}
		projects = append(projects, project)
	}
	return projects, nil
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
