package source_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"csv-differ/core/source"
	"csv-differ/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpener_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,foo\n"), 0o644))

	rc, err := source.NewOpener(nil).Open(context.Background(), path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1,foo\n", string(data))
}

func TestOpener_MissingFile(t *testing.T) {
	_, err := source.NewOpener(nil).Open(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpener_Storage(t *testing.T) {
	client := new(mocks.Client)
	body := io.NopCloser(strings.NewReader("2,bar\n"))
	client.On("GetObject", mock.Anything, "exports", "dir/b.csv", minio.GetObjectOptions{}).Return(body, nil)

	rc, err := source.NewOpener(client).Open(context.Background(), "s3://exports/dir/b.csv")
	require.NoError(t, err)

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "2,bar\n", string(data))
	client.AssertExpectations(t)
}

func TestOpener_StorageError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "exports", "b.csv", minio.GetObjectOptions{}).Return(nil, errors.New("access denied"))

	_, err := source.NewOpener(client).Open(context.Background(), "s3://exports/b.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestOpener_StorageNotConfigured(t *testing.T) {
	_, err := source.NewOpener(nil).Open(context.Background(), "s3://exports/b.csv")
	assert.ErrorIs(t, err, source.ErrNoStorage)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, source.IsRemote("s3://bucket/key.csv"))
	assert.False(t, source.IsRemote("/tmp/key.csv"))
}
