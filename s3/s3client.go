package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"hr-intake-backend/config"
)

var Client *minio.Client

// EnsureBucket creates the configured bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, minioClient *minio.Client) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
