package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	appconfig "matrimony-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// MaxPhotoSize is the upload limit for profile photos.
const MaxPhotoSize = 5 << 20 // 5 MiB

// objectStore is the subset of the S3 client the photo service uses
type objectStore interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// PhotoService handles profile photo storage
type PhotoService struct {
	profiles ProfileStore
	s3Client objectStore
	bucket   string
	region   string
	endpoint string
}

// NewPhotoService creates a new photo service backed by S3
func NewPhotoService(profiles ProfileStore, cfg appconfig.AWSConfig) (*PhotoService, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &PhotoService{
		profiles: profiles,
		s3Client: client,
		bucket:   cfg.S3Bucket,
		region:   cfg.Region,
		endpoint: cfg.Endpoint,
	}, nil
}

// Upload stores a new profile photo under {user_id}/{unix_ms}.{ext},
// deletes the previous object if one exists, and points the profile at
// the new public URL. The old-object delete is best-effort.
func (s *PhotoService) Upload(ctx context.Context, userID, filename, contentType string, size int64, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("file must be an image")
	}
	if size > MaxPhotoSize {
		return "", fmt.Errorf("image must be smaller than 5MB")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	if profile.ProfilePhoto != nil {
		s.deleteObjectByURL(ctx, *profile.ProfilePhoto)
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("%s/%d%s", userID, time.Now().UnixMilli(), ext)

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
		CacheControl:  aws.String("max-age=3600"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	url := s.publicURL(key)
	if err := s.profiles.UpdatePhoto(ctx, userID, &url); err != nil {
		return "", err
	}

	return url, nil
}

// Remove deletes the user's profile photo. When no photo exists this is a
// no-op. The object delete is best-effort; clearing the profile row is
// the hard step.
func (s *PhotoService) Remove(ctx context.Context, userID string) error {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if profile.ProfilePhoto == nil || *profile.ProfilePhoto == "" {
		return nil
	}

	s.deleteObjectByURL(ctx, *profile.ProfilePhoto)

	return s.profiles.UpdatePhoto(ctx, userID, nil)
}

func (s *PhotoService) deleteObjectByURL(ctx context.Context, url string) {
	key := ObjectKeyFromURL(url, s.bucket)
	if key == "" {
		log.Warn().Str("url", url).Msg("Could not derive object key from photo URL")
		return
	}

	_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to delete old photo")
	}
}

// publicURL builds the public URL for an object key
func (s *PhotoService) publicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// ObjectKeyFromURL recovers the object key from a stored public URL by
// locating the "/{bucket}/" path segment. Virtual-hosted URLs keep the
// key as the whole path instead. Returns "" when neither form matches.
func ObjectKeyFromURL(url, bucket string) string {
	if idx := strings.Index(url, "/"+bucket+"/"); idx >= 0 {
		return url[idx+len(bucket)+2:]
	}
	if idx := strings.Index(url, bucket+".s3"); idx >= 0 {
		if slash := strings.Index(url[idx:], "/"); slash >= 0 {
			return url[idx+slash+1:]
		}
	}
	return ""
}
