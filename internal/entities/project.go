// Package entities contains core business entities.
package entities

import "time"

// Project belongs to exactly one team and groups tasks.
type Project struct {
	ID        int64
	Name      string
	TeamID    int64
	Team      *Team
	Tasks     []Task
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProjectPatch carries optional project fields. Team must be a resolved team.
type ProjectPatch struct {
	Name *string
	Team *Team
}

// CreateProjectParams is the input of project creation.
type CreateProjectParams struct {
	Name   string
	TeamID int64
}

// UpdateProjectParams is the input of project update.
type UpdateProjectParams struct {
	Name   *string
	TeamID *int64
}

// Merge overlays the patch on a copy of the project.
func (p Project) Merge(patch ProjectPatch) Project {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Team != nil {
		p.Team = patch.Team
		p.TeamID = patch.Team.ID
	}
	return p
}
