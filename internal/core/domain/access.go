package domain

// CanAccessProject reports whether id may see p and collaborate on its tasks.
func CanAccessProject(id UserID, p Project) bool {
	return id != "" && (id == p.OwnerID || p.HasMember(id))
}

// CanModifyProject reports whether id may change p itself: update, delete, team changes.
func CanModifyProject(id UserID, p Project) bool {
	return id != "" && id == p.OwnerID
}

// CanDeleteTask reports whether id may delete t, which belongs to p.
func CanDeleteTask(id UserID, t Task, p Project) bool {
	return id != "" && (id == p.OwnerID || id == t.CreatedBy)
}

// Decision is the outcome of an access check over an entity that may not exist.
type Decision int

const (
	Allow Decision = iota
	DenyNotFound
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyNotFound:
		return "not_found"
	default:
		return "forbidden"
	}
}

// Err converts d into the error returned to callers. notFound is the entity
// specific sentinel used for DenyNotFound.
func (d Decision) Err(notFound error) error {
	switch d {
	case Allow:
		return nil
	case DenyNotFound:
		return notFound
	default:
		return ErrForbidden
	}
}

// DecideProjectRead hides projects the caller cannot see behind a not-found.
func DecideProjectRead(id UserID, p *Project) Decision {
	if p == nil || !CanAccessProject(id, *p) {
		return DenyNotFound
	}
	return Allow
}

// DecideProjectWrite treats non-owners like strangers: the project is reported missing.
func DecideProjectWrite(id UserID, p *Project) Decision {
	if p == nil || !CanModifyProject(id, *p) {
		return DenyNotFound
	}
	return Allow
}

// DecideTaskAccess authorizes reads and collaborative writes on t. Once the task
// is known to exist, lacking project access is reported as forbidden.
func DecideTaskAccess(id UserID, t *Task, p *Project) Decision {
	if t == nil || p == nil {
		return DenyNotFound
	}
	if !CanAccessProject(id, *p) {
		return DenyForbidden
	}
	return Allow
}

func DecideTaskDelete(id UserID, t *Task, p *Project) Decision {
	if t == nil || p == nil {
		return DenyNotFound
	}
	if !CanDeleteTask(id, *t, *p) {
		return DenyForbidden
	}
	return Allow
}
