package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"todoapp/config"
	"todoapp/infras/otel"
	"todoapp/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	otelAttrExpires   = "expires_seconds"

	defaultSignedURLExpiration = 300
)

// S3 locates todo attachments. Objects are named after the todo id.
type S3 interface {
	// AttachmentURL is the public retrieval URL for a todo's attachment. It is
	// computed, not checked against the bucket.
	AttachmentURL(todoID string) string
	// UploadURL is a presigned PUT URL for the attachment object.
	UploadURL(ctx context.Context, todoID string) (url string, err error)
}

type s3Impl struct {
	Client  *s3.Client
	Presign *s3.PresignClient
	Config  *config.Config
	otel    otel.Otel
}

func (svc *s3Impl) AttachmentURL(todoID string) string {
	s3Cfg := svc.Config.External.S3

	if s3Cfg.PublicDomain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s3Cfg.PublicDomain, "/"), todoID)
	}

	if s3Cfg.APIEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s3Cfg.APIEndpoint, "/"), s3Cfg.BucketName, todoID)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s3Cfg.BucketName, todoID)
}

func (svc *s3Impl) UploadURL(ctx context.Context, todoID string) (url string, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".UploadURL")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bucketName := svc.Config.External.S3.BucketName
	expires := svc.expiration()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: todoID,
		otelAttrBucket:    bucketName,
		otelAttrExpires:   int(expires.Seconds()),
	})

	request, err := svc.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(todoID),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		log.Error().Err(err).Str("todoId", todoID).Msg("failed to presign upload url")

		return constant.Empty, fmt.Errorf("failed to presign upload url: %w", err)
	}

	return request.URL, nil
}

func (svc *s3Impl) expiration() time.Duration {
	seconds := svc.Config.External.S3.SignedURLExpiration
	if seconds <= 0 {
		seconds = defaultSignedURLExpiration
	}

	return time.Duration(seconds) * time.Second
}

func New(awsCfg aws.Config, config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}

		o.UsePathStyle = config.External.S3.UsePathStyle
	})

	if config.External.S3.BucketName == "" {
		log.Warn().Msg("No attachment bucket configured")
	}

	return &s3Impl{
		Client:  s3Client,
		Presign: s3.NewPresignClient(s3Client),
		Config:  config,
		otel:    otel,
	}
}
