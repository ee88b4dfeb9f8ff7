// Package blob хранит аватары и изображения комнат в S3-совместимом хранилище
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gosimple/slug"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/m04kA/SMC-RoomBooking/internal/config"
)

const (
	keyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	keyIDLength = 10
)

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// API подмножество методов s3.Client, используемых хранилищем
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// Storage обёртка над S3 с генерацией ключей и публичных ссылок
type Storage struct {
	api       API
	publicURL string
	maxBytes  int64
}

// NewS3Client создает клиент S3 по конфигурации хранилища
func NewS3Client(cfg config.StorageConfig) *s3.Client {
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts)
}

// NewStorage создает хранилище. publicURL - базовый адрес, по которому бакеты раздаются наружу
func NewStorage(api API, publicURL string, maxUploadMB int) *Storage {
	return &Storage{
		api:       api,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  int64(maxUploadMB) << 20,
	}
}

// MaxBytes допустимый размер загружаемого файла
func (s *Storage) MaxBytes() int64 {
	return s.maxBytes
}

// ObjectKey строит ключ вида <prefix>/<slug>-<id><ext>
func ObjectKey(prefix, name, contentType string) (string, error) {
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", ErrUnsupportedType
	}

	id, err := gonanoid.Generate(keyAlphabet, keyIDLength)
	if err != nil {
		return "", fmt.Errorf("blob: generate key: %w", err)
	}

	base := slug.Make(strings.TrimSuffix(name, path.Ext(name)))
	if base == "" {
		base = "file"
	}

	return path.Join(prefix, base+"-"+id+ext), nil
}

// Upload загружает объект и возвращает его публичную ссылку
func (s *Storage) Upload(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) (string, error) {
	if s.maxBytes > 0 && size > s.maxBytes {
		return "", ErrTooLarge
	}
	if _, ok := allowedContentTypes[contentType]; !ok {
		return "", ErrUnsupportedType
	}

	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s/%s: %v", ErrUpload, bucket, key, err)
	}

	return s.PublicURL(bucket, key), nil
}

// PublicURL публичная ссылка на объект
func (s *Storage) PublicURL(bucket, key string) string {
	return s.publicURL + "/" + bucket + "/" + key
}

// KeyFromURL извлекает ключ объекта из публичной ссылки. false, если ссылка чужая
func (s *Storage) KeyFromURL(bucket, url string) (string, bool) {
	prefix := s.publicURL + "/" + bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

// List возвращает ключи объектов с указанным префиксом
func (s *Storage) List(ctx context.Context, bucket, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	keys := make([]string, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrList, bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}

	return keys, nil
}

// Remove удаляет объекты. Пустой список - no-op
func (s *Storage) Remove(ctx context.Context, bucket string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objects := make([]s3types.ObjectIdentifier, len(keys))
	for i, k := range keys {
		objects[i] = s3types.ObjectIdentifier{Key: aws.String(k)}
	}

	out, err := s.api.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &s3types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRemove, bucket, err)
	}
	if len(out.Errors) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrRemove, bucket, aws.ToString(out.Errors[0].Message))
	}

	return nil
}
