package interactions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Ripple/internal/core/comments"
	"Ripple/internal/core/notifications"
	"Ripple/internal/core/posts"
	"Ripple/internal/core/users"
)

// MockUserService is a mock implementation of users.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Resolve(ctx context.Context, authID string) (*users.User, error) {
	args := m.Called(ctx, authID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockPostRepository is a mock implementation of posts.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]posts.View, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]posts.View), args.Error(1)
}

func (m *MockPostRepository) GetView(ctx context.Context, id int64) (*posts.View, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.View), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]posts.View, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]posts.View), args.Error(1)
}

func (m *MockPostRepository) AddLike(ctx context.Context, postID, userID int64) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) RemoveLike(ctx context.Context, postID, userID int64) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) AppendComment(ctx context.Context, postID, commentID int64) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

func (m *MockPostRepository) RemoveComment(ctx context.Context, postID, commentID int64) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of comments.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]comments.View, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comments.View), args.Error(1)
}

func (m *MockCommentRepository) DeleteAllForPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmitter is a mock implementation of notifications.Emitter
type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, senderID, recipientID int64, notifType string, postID int64, commentID *int64) {
	m.Called(ctx, senderID, recipientID, notifType, postID, commentID)
}

// MockImageStore is a mock implementation of ImageStore
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}

type fixture struct {
	users    *MockUserService
	posts    *MockPostRepository
	comments *MockCommentRepository
	emitter  *MockEmitter
	images   *MockImageStore
	service  Service
}

func newFixture() *fixture {
	f := &fixture{
		users:    new(MockUserService),
		posts:    new(MockPostRepository),
		comments: new(MockCommentRepository),
		emitter:  new(MockEmitter),
		images:   new(MockImageStore),
	}
	f.service = NewService(f.users, f.posts, f.comments, f.emitter, f.images, nil)
	return f
}

var testActor = &users.User{ID: 1, AuthID: "ext_abc", Username: "alice"}

func TestCreatePost_TextOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("Create", mock.Anything, mock.MatchedBy(func(p *posts.Post) bool {
		return p.AuthorID == 1 && p.Content == "hello" && p.ImageURL == ""
	})).Return(&posts.Post{ID: 10, AuthorID: 1, Content: "hello"}, nil)

	created, err := f.service.CreatePost(ctx, "ext_abc", CreatePostRequest{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)

	f.posts.AssertExpectations(t)
	f.images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_ImageOnly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	imageData := []byte{0xFF, 0xD8, 0xFF}
	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.images.On("Upload", mock.Anything, imageData, "image/jpeg").
		Return("http://img.test/ripple-images/posts/x.jpg", nil)
	f.posts.On("Create", mock.Anything, mock.MatchedBy(func(p *posts.Post) bool {
		return p.Content == "" && p.ImageURL == "http://img.test/ripple-images/posts/x.jpg"
	})).Return(&posts.Post{ID: 11, AuthorID: 1, ImageURL: "http://img.test/ripple-images/posts/x.jpg"}, nil)

	created, err := f.service.CreatePost(ctx, "ext_abc", CreatePostRequest{Image: imageData, ImageType: "image/jpeg"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)

	f.images.AssertExpectations(t)
	f.posts.AssertExpectations(t)
}

func TestCreatePost_EmptyContentAndImage(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)

	_, err := f.service.CreatePost(context.Background(), "ext_abc", CreatePostRequest{})
	require.Error(t, err)
	assert.True(t, posts.IsValidationError(err))

	f.posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.images.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreatePost_UploadFailure(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.images.On("Upload", mock.Anything, mock.Anything, "image/png").
		Return("", errors.New("bucket unreachable"))

	_, err := f.service.CreatePost(context.Background(), "ext_abc", CreatePostRequest{
		Image:     []byte{0x89, 0x50},
		ImageType: "image/png",
	})
	require.Error(t, err)
	assert.True(t, IsUploadError(err))

	// Upload failure must leave no partial state
	f.posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePost_UnknownPrincipal(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_ghost").Return(nil, users.ErrUserNotFound)

	_, err := f.service.CreatePost(context.Background(), "ext_ghost", CreatePostRequest{Content: "hi"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	f.posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeletePost_CascadesComments(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 1}, nil)
	f.comments.On("DeleteAllForPost", mock.Anything, int64(10)).Return(int64(3), nil)
	f.posts.On("Delete", mock.Anything, int64(10)).Return(nil)

	err := f.service.DeletePost(context.Background(), "ext_abc", 10)
	require.NoError(t, err)

	f.comments.AssertExpectations(t)
	f.posts.AssertExpectations(t)
}

func TestDeletePost_NotOwner(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2}, nil)

	err := f.service.DeletePost(context.Background(), "ext_abc", 10)
	assert.ErrorIs(t, err, ErrForbidden)

	f.comments.AssertNotCalled(t, "DeleteAllForPost", mock.Anything, mock.Anything)
	f.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeletePost_CascadeFailureStopsDeletion(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 1}, nil)
	f.comments.On("DeleteAllForPost", mock.Anything, int64(10)).
		Return(int64(0), errors.New("db down"))

	err := f.service.DeletePost(context.Background(), "ext_abc", 10)
	require.Error(t, err)

	f.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestToggleLike_AddsAndNotifies(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2, LikeUserIDs: []int64{}}, nil)
	f.posts.On("AddLike", mock.Anything, int64(10), int64(1)).Return(nil)
	f.emitter.On("Emit", mock.Anything, int64(1), int64(2), notifications.TypeLike, int64(10), (*int64)(nil)).Return()

	result, err := f.service.ToggleLike(context.Background(), "ext_abc", 10)
	require.NoError(t, err)
	assert.Equal(t, Liked, result)

	f.posts.AssertExpectations(t)
	f.emitter.AssertExpectations(t)
}

func TestToggleLike_RemovesWithoutNotifying(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2, LikeUserIDs: []int64{1, 5}}, nil)
	f.posts.On("RemoveLike", mock.Anything, int64(10), int64(1)).Return(nil)

	result, err := f.service.ToggleLike(context.Background(), "ext_abc", 10)
	require.NoError(t, err)
	assert.Equal(t, Unliked, result)

	f.posts.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
	f.emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLike_TwiceRestoresOriginalState(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2, LikeUserIDs: []int64{}}, nil).Once()
	f.posts.On("AddLike", mock.Anything, int64(10), int64(1)).Return(nil).Once()
	f.emitter.On("Emit", mock.Anything, int64(1), int64(2), notifications.TypeLike, int64(10), (*int64)(nil)).Return()

	first, err := f.service.ToggleLike(ctx, "ext_abc", 10)
	require.NoError(t, err)
	assert.Equal(t, Liked, first)

	// Second toggle sees the membership the first one created
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2, LikeUserIDs: []int64{1}}, nil).Once()
	f.posts.On("RemoveLike", mock.Anything, int64(10), int64(1)).Return(nil).Once()

	second, err := f.service.ToggleLike(ctx, "ext_abc", 10)
	require.NoError(t, err)
	assert.Equal(t, Unliked, second)

	f.posts.AssertExpectations(t)
}

func TestCreateComment_AppendsAndNotifies(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2}, nil)
	f.comments.On("Create", mock.Anything, mock.MatchedBy(func(c *comments.Comment) bool {
		return c.PostID == 10 && c.AuthorID == 1 && c.Content == "nice shot"
	})).Return(&comments.Comment{ID: 77, PostID: 10, AuthorID: 1, Content: "nice shot"}, nil)
	f.posts.On("AppendComment", mock.Anything, int64(10), int64(77)).Return(nil)
	f.emitter.On("Emit", mock.Anything, int64(1), int64(2), notifications.TypeComment, int64(10), mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 77
	})).Return()

	created, err := f.service.CreateComment(context.Background(), "ext_abc", 10, "nice shot")
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)

	f.posts.AssertExpectations(t)
	f.emitter.AssertExpectations(t)
}

func TestCreateComment_BlankContent(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)

	_, err := f.service.CreateComment(context.Background(), "ext_abc", 10, "   \n\t")
	require.Error(t, err)
	assert.True(t, comments.IsValidationError(err))

	f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.posts.AssertNotCalled(t, "AppendComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateComment_PostNotFound(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(404)).Return(nil, posts.ErrPostNotFound)

	_, err := f.service.CreateComment(context.Background(), "ext_abc", 404, "hello?")
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	f.comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateComment_AppendFailureCompensates(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.posts.On("GetByID", mock.Anything, int64(10)).
		Return(&posts.Post{ID: 10, AuthorID: 2}, nil)
	f.comments.On("Create", mock.Anything, mock.Anything).
		Return(&comments.Comment{ID: 77, PostID: 10, AuthorID: 1, Content: "x"}, nil)
	f.posts.On("AppendComment", mock.Anything, int64(10), int64(77)).
		Return(errors.New("db down"))
	f.comments.On("Delete", mock.Anything, int64(77)).Return(nil)

	_, err := f.service.CreateComment(context.Background(), "ext_abc", 10, "x")
	require.Error(t, err)

	// The orphaned comment must be cleaned up and no notification emitted
	f.comments.AssertCalled(t, "Delete", mock.Anything, int64(77))
	f.emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteComment_AuthorOnly(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.comments.On("GetByID", mock.Anything, int64(77)).
		Return(&comments.Comment{ID: 77, PostID: 10, AuthorID: 2}, nil)

	err := f.service.DeleteComment(context.Background(), "ext_abc", 77)
	assert.ErrorIs(t, err, ErrForbidden)

	// The comment must remain in storage
	f.comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.posts.AssertNotCalled(t, "RemoveComment", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteComment_DetachesBeforeDelete(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.comments.On("GetByID", mock.Anything, int64(77)).
		Return(&comments.Comment{ID: 77, PostID: 10, AuthorID: 1}, nil)
	f.posts.On("RemoveComment", mock.Anything, int64(10), int64(77)).Return(nil)
	f.comments.On("Delete", mock.Anything, int64(77)).Return(nil)

	err := f.service.DeleteComment(context.Background(), "ext_abc", 77)
	require.NoError(t, err)

	f.posts.AssertExpectations(t)
	f.comments.AssertExpectations(t)
}

func TestDeleteComment_DetachFailureStopsDeletion(t *testing.T) {
	f := newFixture()

	f.users.On("Resolve", mock.Anything, "ext_abc").Return(testActor, nil)
	f.comments.On("GetByID", mock.Anything, int64(77)).
		Return(&comments.Comment{ID: 77, PostID: 10, AuthorID: 1}, nil)
	f.posts.On("RemoveComment", mock.Anything, int64(10), int64(77)).
		Return(errors.New("db down"))

	err := f.service.DeleteComment(context.Background(), "ext_abc", 77)
	require.Error(t, err)

	f.comments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListUserPosts_UnknownUser(t *testing.T) {
	f := newFixture()

	f.users.On("GetByUsername", mock.Anything, "ghost").Return(nil, users.ErrUserNotFound)

	_, err := f.service.ListUserPosts(context.Background(), "ghost")
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	f.posts.AssertNotCalled(t, "ListByAuthor", mock.Anything, mock.Anything)
}
