package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"dockhub/config"
	"dockhub/infras/otel"
	"dockhub/shared/constant"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	defaultRegion    = "auto"
	metaUploadedBy   = "uploaded-by"
	metaOriginalName = "original-name"
)

var ErrNotConfigured = errors.New("object storage is not configured")

// Object is a file kept for audit, such as an imported appointment schedule.
type Object struct {
	Directory    string
	Name         string
	OriginalName string
	ContentType  string
	UploadedBy   string
	Body         []byte
}

func (o Object) Key() string {
	return strings.TrimPrefix(path.Join(o.Directory, o.Name), "/")
}

type S3 interface {
	// Put stores the object in the configured bucket and returns its public url.
	Put(ctx context.Context, object Object) (url string, err error)
}

type store struct {
	client       *s3.Client
	bucket       string
	publicDomain string
	otel         otel.Otel
}

func (svc *store) Put(ctx context.Context, object Object) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if svc.bucket == "" {
		return "", ErrNotConfigured
	}

	key := object.Key()
	scope.SetAttributes(map[string]any{
		"s3.bucket": svc.bucket,
		"s3.key":    key,
		"s3.size":   len(object.Body),
	})

	metadata := map[string]string{}
	if object.UploadedBy != "" {
		metadata[metaUploadedBy] = object.UploadedBy
	}

	if object.OriginalName != "" {
		metadata[metaOriginalName] = object.OriginalName
	}

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(object.Body),
		ContentType:   aws.String(object.ContentType),
		ContentLength: aws.Int64(int64(len(object.Body))),
		Metadata:      metadata,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")

		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return ObjectURL(svc.publicDomain, key), nil
}

// ObjectURL joins the public domain and object key with exactly one slash.
func ObjectURL(publicDomain, objectKey string) string {
	return strings.TrimSuffix(publicDomain, "/") + "/" + strings.TrimPrefix(objectKey, "/")
}

// New targets any S3 compatible endpoint with path-style addressing.
func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")),
		awsConfig.WithRegion(defaultRegion),
	)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if settings.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(settings.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	if settings.BucketName == "" {
		log.Warn().Msg("S3 bucket not configured, uploaded schedules will not be archived")
	}

	return &store{
		client:       client,
		bucket:       settings.BucketName,
		publicDomain: settings.PublicDomain,
		otel:         otel,
	}
}
