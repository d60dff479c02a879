package initializers

import (
	"context"
	"hr-intake-backend/config"
	filestorage "hr-intake-backend/lib/file-storage"
	s3client "hr-intake-backend/s3"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to init S3 client")
		return
	}

	ctx := context.Background()
	if err = s3client.EnsureBucket(ctx, minioClient); err != nil {
		log.WithError(err).Error("failed to ensure S3 bucket exists")
	}

	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("S3 client initialized")
}
