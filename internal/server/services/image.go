package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	sc "github.com/morvin2701/pixelwalls/internal/server/config"
)

// PresignExpiry is how long an upload URL stays valid.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// UploadTarget is one presigned PUT slot and the URL the object will be
// readable at once uploaded.
type UploadTarget struct {
	Key       string
	UploadURL string
	PublicURL string
}

// ImageService hands out presigned upload slots in the S3-compatible
// bucket that holds wallpaper images.
type ImageService struct {
	config *sc.Config
	now    func() time.Time
}

func NewImageService(cfg *sc.Config) *ImageService {
	return &ImageService{config: cfg, now: time.Now}
}

// StorageKey returns a fresh object key under the user's dated prefix.
func StorageKey(userID string, d time.Time) string {
	return fmt.Sprintf("wallpapers/%s/%04d/%02d/%02d/%v", userID, d.Year(), int(d.Month()), d.Day(), uuid.New())
}

// PublicURL joins the storage endpoint, bucket and key.
func PublicURL(endpoint, bucket, key string) string {
	return strings.TrimRight(endpoint, "/") + "/" + bucket + "/" + key
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		// path-style, as MinIO serves it
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// GetUploadURL presigns a PUT of contentType for userID.
func (s *ImageService) GetUploadURL(ctx context.Context, userID, contentType string) (*UploadTarget, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: content type %q is not an image", ErrInvalidArgument, contentType)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := StorageKey(userID, s.now())

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	return &UploadTarget{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: PublicURL(s.config.S3BaseEndpoint, bucket, key),
	}, nil
}
