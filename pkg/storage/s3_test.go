package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObjectAPI struct {
	mock.Mock
	body []byte
}

func (m *mockObjectAPI) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.body, _ = io.ReadAll(in.Body)
	args := m.Called(aws.ToString(in.Bucket), aws.ToString(in.Key), aws.ToString(in.ContentType))
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *mockObjectAPI) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(aws.ToString(in.Bucket), aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func (m *mockObjectAPI) ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(aws.ToString(in.Bucket))
	return &s3.ListObjectsV2Output{}, args.Error(0)
}

const base = "https://abc.supabase.co/storage/v1/object/public"

func TestStorePut(t *testing.T) {
	api := new(mockObjectAPI)
	api.On("PutObject", "evidence", "u1/g1/x.jpg", "image/jpeg").Return(nil)

	store := NewStore(api, "evidence", base+"/")
	url, err := store.Put(context.Background(), "u1/g1/x.jpg", "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, base+"/evidence/u1/g1/x.jpg", url)
	assert.Equal(t, []byte("jpeg-bytes"), api.body)
	api.AssertExpectations(t)

	key, ok := store.KeyFromURL(url)
	assert.True(t, ok)
	assert.Equal(t, "u1/g1/x.jpg", key)

	_, ok = store.KeyFromURL("https://elsewhere/x.jpg")
	assert.False(t, ok)
}

func TestStoreErrors(t *testing.T) {
	api := new(mockObjectAPI)
	api.On("PutObject", "evidence", "k", "image/jpeg").Return(errors.New("denied"))
	api.On("DeleteObject", "evidence", "k").Return(errors.New("gone"))
	api.On("ListObjectsV2", "evidence").Return(nil)

	store := NewStore(api, "evidence", base)
	_, err := store.Put(context.Background(), "k", "image/jpeg", nil)
	assert.ErrorContains(t, err, "denied")
	assert.ErrorContains(t, store.Delete(context.Background(), "k"), "gone")
	assert.NoError(t, store.Ping(context.Background()))
}

func TestNewS3ClientRequiresConfig(t *testing.T) {
	_, err := NewS3Client(context.Background(), Config{Endpoint: "https://x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
