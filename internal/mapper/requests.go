package mapper

import (
	"og-team-ms/internal/api"
	"og-team-ms/internal/entities"
)

// FromUpdateUserRequest builds a user patch from transport DTO.
func FromUpdateUserRequest(src api.UpdateUserRequest) entities.UserPatch {
	return entities.UserPatch{Username: src.Username}
}

// FromUpdateProjectRequest builds project update params from transport DTO.
func FromUpdateProjectRequest(src api.UpdateProjectRequest) entities.UpdateProjectParams {
	return entities.UpdateProjectParams{Name: src.Name, TeamID: src.TeamID.Int64Ptr()}
}

// FromCreateTaskRequest builds task creation params from transport DTO.
func FromCreateTaskRequest(src api.CreateTaskRequest) entities.CreateTaskParams {
	return entities.CreateTaskParams{
		Name:            src.Name,
		Description:     src.Description,
		Status:          entities.TaskStatus(src.Status),
		ProjectID:       int64(src.ProjectID),
		CreatorUser:     src.CreatorUser,
		ResponsibleUser: src.ResponsibleUser,
	}
}

// FromUpdateTaskRequest builds task update params from transport DTO.
func FromUpdateTaskRequest(src api.UpdateTaskRequest) entities.UpdateTaskParams {
	params := entities.UpdateTaskParams{
		Name:            src.Name,
		Description:     src.Description,
		ResponsibleUser: src.ResponsibleUser,
	}
	if src.Status != nil {
		status := entities.TaskStatus(*src.Status)
		params.Status = &status
	}
	return params
}

// FromCreateCommentRequest builds comment creation params from transport DTO.
func FromCreateCommentRequest(src api.CreateCommentRequest) entities.CreateCommentParams {
	return entities.CreateCommentParams{Content: src.Content, UserName: src.UserName, TaskID: int64(src.TaskID)}
}

// FromUpdateCommentRequest builds comment update params from transport DTO.
func FromUpdateCommentRequest(src api.UpdateCommentRequest) entities.UpdateCommentParams {
	return entities.UpdateCommentParams{Content: src.Content, UserName: src.UserName, TaskID: src.TaskID.Int64Ptr()}
}
