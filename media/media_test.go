package media

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	minio "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPutter struct {
	mock.Mock
}

func (m *mockPutter) PutObject(ctx context.Context, bucketName string, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(bucketName, objectName, objectSize, opts.ContentType)
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: objectSize}, args.Error(0)
}

func TestImageExtension(t *testing.T) {
	ext, ok := ImageExtension("image/PNG; charset=binary")
	assert.True(t, ok)
	assert.Equal(t, ".png", ext)

	ext, ok = ImageExtension("image/jpeg")
	assert.True(t, ok)
	assert.Equal(t, ".jpg", ext)

	_, ok = ImageExtension("text/plain")
	assert.False(t, ok)
}

func TestPut(t *testing.T) {
	putter := new(mockPutter)
	putter.On("PutObject", "bearsty", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "arts/7/") && strings.HasSuffix(name, ".png")
	}), int64(3), "image/png").Return(nil)

	uploader := New(putter, "bearsty", "http://cdn.test/")
	url, err := uploader.Put(context.Background(), "arts", 7, "image/png", []byte{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://cdn.test/bearsty/arts/7/"))
	putter.AssertExpectations(t)
}

func TestPutErrors(t *testing.T) {
	putter := new(mockPutter)
	putter.On("PutObject", "bearsty", mock.Anything, int64(1), "image/gif").Return(errors.New("unreachable"))

	uploader := New(putter, "bearsty", "http://cdn.test")
	_, err := uploader.Put(context.Background(), "users", 1, "image/gif", []byte{1})
	assert.Error(t, err)

	_, err = uploader.Put(context.Background(), "users", 1, "text/plain", []byte{1})
	assert.Error(t, err)
	putter.AssertNumberOfCalls(t, "PutObject", 1)
}
