package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// test seams for the AWS SDK, replaced with stubs in unit tests
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	getObject = func(c *s3.Client, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
		return c.GetObject(ctx, in, optFns...)
	}
)

// S3Options configures the S3-compatible object store the catalog seed can
// be fetched from. BaseEndpoint supports MinIO-style deployments.
type S3Options struct {
	Bucket       string
	Key          string
	Region       string
	AccessKey    string
	SecretKey    string
	BaseEndpoint string
}

// LoadFromFile reads a JSON array of locations from the given path.
func LoadFromFile(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog file open error: %w", err)
	}
	defer f.Close()

	return decodeLocations(f)
}

// LoadFromS3 fetches a JSON array of locations from an S3 object.
func LoadFromS3(ctx context.Context, opts S3Options) ([]Location, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
	})

	out, err := getObject(client, ctx, &s3.GetObjectInput{
		Bucket: &opts.Bucket,
		Key:    &opts.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog object fetch error: %w", err)
	}
	defer out.Body.Close()

	return decodeLocations(out.Body)
}

func decodeLocations(r io.Reader) ([]Location, error) {
	var locations []Location
	if err := json.NewDecoder(r).Decode(&locations); err != nil {
		return nil, fmt.Errorf("catalog decode error: %w", err)
	}
	return locations, nil
}
