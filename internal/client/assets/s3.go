package assets

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// test seams
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3PutObjectAPI {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config configures the S3-compatible asset store used by self-hosted
// deployments (MinIO and friends): static credentials plus a custom base
// endpoint.
type S3Config struct {
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Bucket       string
}

// S3Uploader stores assets directly in an S3-compatible bucket. The object
// key is {tag}/{generated uuid}; the uuid doubles as the asset id the
// backend is patched with.
type S3Uploader struct {
	cfg S3Config
}

func NewS3Uploader(cfg S3Config) *S3Uploader {
	return &S3Uploader{cfg: cfg}
}

func (u *S3Uploader) getClient(ctx context.Context) (s3PutObjectAPI, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(u.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			u.cfg.AccessKey,
			u.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if u.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(u.cfg.BaseEndpoint)
		}
		o.UsePathStyle = true
	})
	return client, nil
}

// Upload puts the staged file into the bucket and returns the generated
// asset id. The filename is kept as object metadata only.
func (u *S3Uploader) Upload(ctx context.Context, localPath, filename, tag, mimeType string, onProgress ProgressFunc) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("opening staged file: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat staged file: %w", err)
	}

	client, err := u.getClient(ctx)
	if err != nil {
		return "", err
	}

	assetID := uuid.NewString()
	key := tag + "/" + assetID

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          newProgressReader(f, st.Size(), onProgress),
		ContentType:   aws.String(mimeType),
		ContentLength: aws.Int64(st.Size()),
		Metadata:      map[string]string{"filename": filename},
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", key, err)
	}

	return assetID, nil
}
