package media

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, md *Media) error {
	args := m.Called(ctx, md)
	return args.Error(0)
}

func (m *mockRepo) GetByOwnerAndID(ctx context.Context, email, id string) (*Media, error) {
	args := m.Called(ctx, email, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Media), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, email, id string) error {
	args := m.Called(ctx, email, id)
	return args.Error(0)
}

func (m *mockRepo) ListByOwner(ctx context.Context, email string) ([]*Media, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Media), args.Error(1)
}

func (m *mockRepo) RecentByOwner(ctx context.Context, email string, limit int) ([]*Media, error) {
	args := m.Called(ctx, email, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Media), args.Error(1)
}

func (m *mockRepo) StatsByOwner(ctx context.Context, email string) (*Stats, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Stats), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Add(ctx context.Context, email, title, message string) {
	m.Called(ctx, email, title, message)
}

// fileHeader builds a real multipart.FileHeader the way gin would hand it to
// the service.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func newDiskService(t *testing.T, repo Repository, notify notifier) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)
	return NewService(repo, store, notify), dir
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return entries
}

func TestService_Upload_Success(t *testing.T) {
	repo := new(mockRepo)
	notify := new(mockNotifier)
	service, dir := newDiskService(t, repo, notify)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	notify.On("Add", mock.Anything, "user@example.com", "Upload Completed", mock.Anything).Return()

	content := bytes.Repeat([]byte("x"), 2048)
	m, err := service.Upload(context.Background(), "user@example.com", fileHeader(t, "holiday photo.jpg", content), "beach, summer, ,")

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, m.Status)
	assert.Equal(t, "jpg", m.Type)
	assert.Equal(t, "holiday photo.jpg", m.Filename)
	assert.NotEqual(t, m.Filename, m.StoredName)
	assert.True(t, strings.HasPrefix(m.StoredName, m.ID+"_"))
	assert.Equal(t, TagList{"beach", "summer"}, m.Tags)
	assert.InDelta(t, 2.0, m.SizeKB, 0.01)

	// exactly one blob, under the stored name
	entries := dirEntries(t, dir)
	require.Len(t, entries, 1)
	assert.Equal(t, m.StoredName, entries[0].Name())

	written, err := os.ReadFile(filepath.Join(dir, m.StoredName))
	require.NoError(t, err)
	assert.Equal(t, content, written)

	repo.AssertExpectations(t)
	notify.AssertExpectations(t)
}

func TestService_Upload_RejectedExtension_NoBlobWrite(t *testing.T) {
	repo := new(mockRepo)
	notify := new(mockNotifier)
	service, dir := newDiskService(t, repo, notify)

	_, err := service.Upload(context.Background(), "user@example.com", fileHeader(t, "malware.exe", []byte("nope")), "")

	assert.ErrorIs(t, err, ErrTypeNotSupported)
	assert.Empty(t, dirEntries(t, dir))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	notify.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Upload_NoExtension(t *testing.T) {
	repo := new(mockRepo)
	service, _ := newDiskService(t, repo, new(mockNotifier))

	_, err := service.Upload(context.Background(), "user@example.com", fileHeader(t, "README", []byte("text")), "")
	assert.ErrorIs(t, err, ErrTypeNotSupported)
}

func TestService_Upload_NoFile(t *testing.T) {
	service, _ := newDiskService(t, new(mockRepo), new(mockNotifier))

	_, err := service.Upload(context.Background(), "user@example.com", nil, "")
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestService_Upload_TooLarge(t *testing.T) {
	service, dir := newDiskService(t, new(mockRepo), new(mockNotifier))

	fh := fileHeader(t, "big.mp4", []byte("tiny"))
	fh.Size = MaxFileSize + 1

	_, err := service.Upload(context.Background(), "user@example.com", fh, "")
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, dirEntries(t, dir))
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"holiday photo.jpg":              "holiday_photo.jpg",
		"../../etc/evil.png":             "evil.png",
		"???.mp3":                        "___.mp3",
		strings.Repeat("a", 60) + ".wav": strings.Repeat("a", 40) + ".wav",
	}
	for in, want := range cases {
		got := sanitizeFilename(in)
		assert.Equal(t, want, got, "input %q", in)
		assert.NotContains(t, got, "/")
	}
}

func TestService_Delete_RemovesBlobAndRecord(t *testing.T) {
	repo := new(mockRepo)
	notify := new(mockNotifier)
	service, dir := newDiskService(t, repo, notify)

	// seed a blob the record points at
	storedName := "abc123_clip.mp4"
	require.NoError(t, os.WriteFile(filepath.Join(dir, storedName), []byte("data"), 0644))

	repo.On("GetByOwnerAndID", mock.Anything, "user@example.com", "abc123").Return(&Media{
		ID:         "abc123",
		Email:      "user@example.com",
		Filename:   "clip.mp4",
		StoredName: storedName,
	}, nil)
	repo.On("Delete", mock.Anything, "user@example.com", "abc123").Return(nil)
	notify.On("Add", mock.Anything, "user@example.com", "Media Deleted", mock.Anything).Return()

	err := service.Delete(context.Background(), "user@example.com", "abc123")

	require.NoError(t, err)
	assert.Empty(t, dirEntries(t, dir))
	repo.AssertExpectations(t)
	notify.AssertExpectations(t)
}

func TestService_Delete_MissingBlobStillDeletesRecord(t *testing.T) {
	repo := new(mockRepo)
	notify := new(mockNotifier)
	service, _ := newDiskService(t, repo, notify)

	repo.On("GetByOwnerAndID", mock.Anything, "user@example.com", "abc123").Return(&Media{
		ID:         "abc123",
		Email:      "user@example.com",
		Filename:   "clip.mp4",
		StoredName: "abc123_clip.mp4", // no such file on disk
	}, nil)
	repo.On("Delete", mock.Anything, "user@example.com", "abc123").Return(nil)
	notify.On("Add", mock.Anything, "user@example.com", "Media Deleted", mock.Anything).Return()

	assert.NoError(t, service.Delete(context.Background(), "user@example.com", "abc123"))
	repo.AssertExpectations(t)
}

func TestService_Delete_ForeignOwnerIndistinguishable(t *testing.T) {
	repo := new(mockRepo)
	service, _ := newDiskService(t, repo, new(mockNotifier))

	// owner-scoped lookup: someone else's id resolves exactly like a missing one
	repo.On("GetByOwnerAndID", mock.Anything, "intruder@example.com", "abc123").Return(nil, ErrMediaNotFound)

	err := service.Delete(context.Background(), "intruder@example.com", "abc123")
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestService_Detail_PlaceholderAnalysis(t *testing.T) {
	repo := new(mockRepo)
	service, _ := newDiskService(t, repo, new(mockNotifier))

	repo.On("GetByOwnerAndID", mock.Anything, "user@example.com", "abc123").Return(&Media{ID: "abc123"}, nil)

	m, analysis, err := service.Detail(context.Background(), "user@example.com", "abc123")

	require.NoError(t, err)
	assert.Equal(t, "abc123", m.ID)
	require.Len(t, analysis.Rekognition.Labels, 1)
	assert.Equal(t, "Person", analysis.Rekognition.Labels[0].Name)
	assert.Equal(t, 95, analysis.Rekognition.Labels[0].Confidence)
	assert.Equal(t, "POSITIVE", analysis.Comprehend.Sentiment)
}
