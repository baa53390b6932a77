package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/therealutkarshpriyadarshi/dashmpd/internal/config"
)

// ContentTypeMPD is the registered media type of a DASH manifest
const ContentTypeMPD = "application/dash+xml"

// ErrObjectNotFound is returned when a key does not exist in the bucket
var ErrObjectNotFound = errors.New("object not found")

// Storage provides object storage operations
type Storage struct {
	client     *minio.Client
	bucketName string
}

// New creates a new storage client
func New(cfg config.StorageConfig) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Ensure bucket exists
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{
			Region: cfg.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Storage{
		client:     client,
		bucketName: cfg.BucketName,
	}, nil
}

// Bucket returns the bucket manifests are stored in
func (s *Storage) Bucket() string {
	return s.bucketName
}

// RevisionKey is the object key of one stored revision of a manifest
func RevisionKey(prefix, name string, revision int64) string {
	return path.Join(prefix, name, fmt.Sprintf("r%06d.mpd", revision))
}

// LatestKey is the object key that always holds the newest revision
func LatestKey(prefix, name string) string {
	return path.Join(prefix, name, "manifest.mpd")
}

// ManifestPrefix is the key prefix holding every object of a manifest
func ManifestPrefix(prefix, name string) string {
	return path.Join(prefix, name) + "/"
}

// PutManifest stores an encoded MPD with its checksum as user metadata
func (s *Storage) PutManifest(ctx context.Context, objectName string, data []byte, checksum string) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType:  getContentType(objectName),
		CacheControl: "no-cache",
		UserMetadata: map[string]string{"checksum": checksum},
	})
	if err != nil {
		return fmt.Errorf("failed to upload manifest: %w", err)
	}

	return nil
}

// GetManifest reads a whole object, returning ErrObjectNotFound for a missing key
func (s *Storage) GetManifest(ctx context.Context, objectName string, maxBytes int64) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.wrapError("download", objectName, err)
	}
	defer object.Close()

	reader := io.Reader(object)
	if maxBytes > 0 {
		reader = io.LimitReader(object, maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, s.wrapError("download", objectName, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("object %s exceeds %d bytes", objectName, maxBytes)
	}

	return data, nil
}

// CopyObject copies an object within the bucket
func (s *Storage) CopyObject(ctx context.Context, srcKey, destKey string) error {
	src := minio.CopySrcOptions{
		Bucket: s.bucketName,
		Object: srcKey,
	}

	dst := minio.CopyDestOptions{
		Bucket: s.bucketName,
		Object: destKey,
	}

	_, err := s.client.CopyObject(ctx, dst, src)
	if err != nil {
		return s.wrapError("copy", srcKey, err)
	}

	return nil
}

// DeletePrefix deletes every object under prefix
func (s *Storage) DeletePrefix(ctx context.Context, prefix string) error {
	keys, err := s.List(ctx, prefix)
	if err != nil {
		return err
	}
	return s.BatchDelete(ctx, keys)
}

// BatchDelete deletes multiple objects
func (s *Storage) BatchDelete(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	errorCh := s.client.RemoveObjects(ctx, s.bucketName, objectsCh, minio.RemoveObjectsOptions{})
	for err := range errorCh {
		if err.Err != nil {
			return fmt.Errorf("failed to delete object %s: %w", err.ObjectName, err.Err)
		}
	}

	return nil
}

// GetURL returns a presigned URL for an object
func (s *Storage) GetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	params := url.Values{}
	params.Set("response-content-type", getContentType(objectName))

	u, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, expiry, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate URL: %w", err)
	}

	return u.String(), nil
}

// List lists objects with a prefix
func (s *Storage) List(ctx context.Context, prefix string) ([]string, error) {
	var objects []string

	for object := range s.client.ListObjects(ctx, s.bucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		objects = append(objects, object.Key)
	}

	return objects, nil
}

// Health checks that the bucket is reachable
func (s *Storage) Health(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucketName)
	return err
}

func (s *Storage) wrapError(op, key string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%s %s: %w", op, key, ErrObjectNotFound)
	}
	return fmt.Errorf("failed to %s object %s: %w", op, key, err)
}

func isNotFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return true
	default:
		return false
	}
}

// getContentType returns the content type based on file extension
func getContentType(filePath string) string {
	ext := filepath.Ext(filePath)
	switch ext {
	case ".mpd":
		return ContentTypeMPD
	case ".xml":
		return "application/xml"
	case ".m4s":
		return "video/iso.segment"
	case ".mp4":
		return "video/mp4"
	case ".m4a":
		return "audio/mp4"
	case ".vtt":
		return "text/vtt"
	case ".m3u8":
		return "application/vnd.apple.mpegurl"
	default:
		return "application/octet-stream"
	}
}
