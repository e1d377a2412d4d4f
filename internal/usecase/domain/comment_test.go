package domain

import (
	"context"
	"testing"
	"time"

	"og-team-ms/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCommentLog() (*CommentLog, *commentRepoMock) {
	repo := &commentRepoMock{}
	users := usersStub{"alice": {ID: 1, Username: "alice"}, "bob": {ID: 2, Username: "bob"}}
	tasks := tasksStub{100: {ID: 100, Name: "Task1"}, 200: {ID: 200, Name: "Task2"}}
	return NewCommentLog(zap.NewNop().Sugar(), repo, &txMock{}, users, tasks, time.Second), repo
}

func TestCommentLog_CreateComment(t *testing.T) {
	l, repo := newCommentLog()
	repo.On("SaveComment", mock.Anything, entities.Comment{Content: "hi", UserID: 1, TaskID: 100}).
		Return(&entities.Comment{ID: 7, Content: "hi", UserID: 1, TaskID: 100}, nil)

	comment, err := l.CreateComment(context.Background(), entities.CreateCommentParams{Content: "hi", UserName: "alice", TaskID: 100})
	require.NoError(t, err)
	require.Equal(t, int64(7), comment.ID)
	require.Equal(t, "alice", comment.User.Username)
	require.Equal(t, "Task1", comment.Task.Name)
}

func TestCommentLog_CreateCommentUnresolved(t *testing.T) {
	l, repo := newCommentLog()

	_, err := l.CreateComment(context.Background(), entities.CreateCommentParams{Content: "hi", UserName: "ghost", TaskID: 100})
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = l.CreateComment(context.Background(), entities.CreateCommentParams{Content: "hi", UserName: "alice", TaskID: 999})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	_, err = l.CreateComment(context.Background(), entities.CreateCommentParams{UserName: "alice", TaskID: 100})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	repo.AssertNotCalled(t, "SaveComment", mock.Anything, mock.Anything)
}

func TestCommentLog_UpdateCommentMovesAuthorAndTask(t *testing.T) {
	l, repo := newCommentLog()
	repo.On("FindComment", mock.Anything, int64(7)).Return(&entities.Comment{ID: 7, Content: "hi", UserID: 1, TaskID: 100}, nil)
	repo.On("SaveComment", mock.Anything, mock.MatchedBy(func(c entities.Comment) bool {
		return c.ID == 7 && c.Content == "hi" && c.UserID == 2 && c.TaskID == 200
	})).Return(&entities.Comment{ID: 7, Content: "hi", UserID: 2, TaskID: 200}, nil)

	comment, err := l.UpdateComment(context.Background(), 7, entities.UpdateCommentParams{UserName: ptr("bob"), TaskID: ptr(int64(200))})
	require.NoError(t, err)
	require.Equal(t, "bob", comment.User.Username)
	require.Equal(t, int64(200), comment.Task.ID)
}

func TestCommentLog_UpdateCommentUnknownAuthor(t *testing.T) {
	l, repo := newCommentLog()
	repo.On("FindComment", mock.Anything, int64(7)).Return(&entities.Comment{ID: 7, Content: "hi", UserID: 1, TaskID: 100}, nil)

	_, err := l.UpdateComment(context.Background(), 7, entities.UpdateCommentParams{UserName: ptr("ghost")})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	repo.AssertNotCalled(t, "SaveComment", mock.Anything, mock.Anything)
}

func TestCommentLog_DeleteComment(t *testing.T) {
	l, repo := newCommentLog()
	stored := &entities.Comment{ID: 7, Content: "hi", UserID: 1, TaskID: 100}
	repo.On("FindComment", mock.Anything, int64(7)).Return(stored, nil)
	repo.On("DeleteComment", mock.Anything, int64(7)).Return(nil)

	comment, err := l.DeleteComment(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, stored, comment)

	repo.On("FindComment", mock.Anything, int64(8)).Return(nil, entities.ErrCommentNotFound)
	_, err = l.DeleteComment(context.Background(), 8)
	require.ErrorIs(t, err, entities.ErrCommentNotFound)
}
