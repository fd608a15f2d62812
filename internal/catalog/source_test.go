package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const locationsJSON = `[
  {"id":"x1","name":"Test Yoga","description":"d","latitude":37.1,"longitude":-122.1,"category":"Yoga"},
  {"id":"x2","name":"Test Spa","description":"d","latitude":37.2,"longitude":-122.2,"category":"Spa","rating":4.5,"address":"1 Main St"}
]`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(locationsJSON), 0o600))

	locs, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "Test Yoga", locs[0].Name)
	assert.Equal(t, 4.5, locs[1].Rating)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadFromFile_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"`), 0o600))

	_, err := LoadFromFile(path)
	require.Error(t, err)
}

func withS3Stubs(t *testing.T, out *s3.GetObjectOutput, getErr error) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origGet := getObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		getObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.New(s3.Options{})
	}
	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		if getErr != nil {
			return nil, getErr
		}
		return out, nil
	}
}

func TestLoadFromS3(t *testing.T) {
	withS3Stubs(t, &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(locationsJSON))}, nil)

	locs, err := LoadFromS3(context.Background(), S3Options{Bucket: "b", Key: "catalog.json"})
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, "x2", locs[1].ID)
}

func TestLoadFromS3_FetchError(t *testing.T) {
	withS3Stubs(t, nil, errors.New("boom"))

	_, err := LoadFromS3(context.Background(), S3Options{Bucket: "b", Key: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog object fetch error")
}
