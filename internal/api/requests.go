package api

// CreateUserRequest defines body for POST /users.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=255"`
}

// UpdateUserRequest defines body for PATCH /users/name/{userName}.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=255"`
}

// CreateTeamRequest defines body for POST /teams.
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateTeamRequest defines body for PATCH /teams/{id}.
type UpdateTeamRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=255"`
}

// AddTeamUserRequest defines body for POST /teams/{id}/users.
type AddTeamUserRequest struct {
	UserName string `json:"userName" validate:"required,max=255"`
}

// CreateProjectRequest defines body for POST /projects.
type CreateProjectRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	TeamID ID     `json:"teamId" validate:"required,gt=0"`
}

// UpdateProjectRequest defines body for PATCH /projects/{id}.
type UpdateProjectRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=255"`
	TeamID *ID     `json:"teamId" validate:"omitempty,gt=0"`
}

// CreateTaskRequest defines body for POST /tasks.
type CreateTaskRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Description     string `json:"description"`
	Status          string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	ProjectID       ID     `json:"projectId" validate:"required,gt=0"`
	CreatorUser     string `json:"creatorUser" validate:"required,max=255"`
	ResponsibleUser string `json:"responsableUser" validate:"omitempty,max=255"`
}

// UpdateTaskRequest defines body for PATCH /tasks/{id}.
type UpdateTaskRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string `json:"description"`
	Status          *string `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
	ResponsibleUser *string `json:"responsableUser" validate:"omitempty,min=1,max=255"`
}

// CreateCommentRequest defines body for POST /comments.
type CreateCommentRequest struct {
	Content  string `json:"content" validate:"required"`
	UserName string `json:"userName" validate:"required,max=255"`
	TaskID   ID     `json:"taskId" validate:"required,gt=0"`
}

// UpdateCommentRequest defines body for PATCH /comments/{id}.
type UpdateCommentRequest struct {
	Content  *string `json:"content" validate:"omitempty,min=1"`
	UserName *string `json:"userName" validate:"omitempty,min=1,max=255"`
	TaskID   *ID     `json:"taskId" validate:"omitempty,gt=0"`
}
