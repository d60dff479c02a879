package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"hr-intake-backend/config"
)

// Kind groups uploaded files by purpose inside the bucket.
type Kind string

const (
	KindPhoto     Kind = "photo"
	KindSignature Kind = "signature"
	KindLogo      Kind = "logo"
)

type Provider interface {
	Upload(ctx context.Context, kind Kind, fileName string, body []byte, contentType string) (url string, err error)
	FetchByURL(ctx context.Context, fileURL string) (name string, body []byte, err error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) Upload(ctx context.Context, kind Kind, fileName string, body []byte, contentType string) (string, error) {
	ext := path.Ext(fileName)
	if ext == "" {
		return "", errors.Errorf("ไม่สามารถระบุชนิดไฟล์ได้: %s", fileName)
	}
	objectName := fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), ext)
	bucket := config.Conf.S3.BucketName
	_, err := i.s3client.PutObject(ctx, bucket, objectName,
		bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload file")
	}
	return i.objectURL(objectName), nil
}

func (i impl) FetchByURL(ctx context.Context, fileURL string) (string, []byte, error) {
	objectName, err := i.objectName(fileURL)
	if err != nil {
		return "", nil, err
	}
	bucket := config.Conf.S3.BucketName
	obj, err := i.s3client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to get file")
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to read file")
	}
	return path.Base(objectName), body, nil
}

func (i impl) objectURL(objectName string) string {
	scheme := "http"
	if config.Conf.S3.UseSSL != nil && *config.Conf.S3.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.Conf.S3.Endpoint, config.Conf.S3.BucketName, objectName)
}

// objectName extracts the bucket object key from a URL produced by
// objectURL. External URLs are rejected.
func (i impl) objectName(fileURL string) (string, error) {
	marker := "/" + config.Conf.S3.BucketName + "/"
	pos := strings.Index(fileURL, marker)
	if pos < 0 {
		return "", errors.Errorf("unknown file url: %s", fileURL)
	}
	return fileURL[pos+len(marker):], nil
}
