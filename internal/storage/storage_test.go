package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/minio/minio-go/v7"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		filePath string
		wantType string
	}{
		{"live/channel-1/manifest.mpd", "application/dash+xml"},
		{"period.xml", "application/xml"},
		{"chunk-stream0-00001.m4s", "video/iso.segment"},
		{"init.mp4", "video/mp4"},
		{"audio.m4a", "audio/mp4"},
		{"subs.vtt", "text/vtt"},
		{"playlist.m3u8", "application/vnd.apple.mpegurl"},
		{"unknown.xyz", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filePath, func(t *testing.T) {
			contentType := getContentType(tt.filePath)
			if contentType != tt.wantType {
				t.Errorf("getContentType(%q) = %q, want %q", tt.filePath, contentType, tt.wantType)
			}
		})
	}
}

func TestObjectKeys(t *testing.T) {
	if got := RevisionKey("manifests", "live/channel-1", 7); got != "manifests/live/channel-1/r000007.mpd" {
		t.Errorf("RevisionKey() = %q", got)
	}
	if got := LatestKey("manifests", "vod"); got != "manifests/vod/manifest.mpd" {
		t.Errorf("LatestKey() = %q", got)
	}
	if got := ManifestPrefix("manifests", "vod"); got != "manifests/vod/" {
		t.Errorf("ManifestPrefix() = %q", got)
	}
}

func TestWrapErrorNotFound(t *testing.T) {
	s := &Storage{bucketName: "manifests"}

	notFound := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}
	err := s.wrapError("download", "a.mpd", notFound)
	if !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("expected ErrObjectNotFound, got %v", err)
	}

	err = s.wrapError("download", "a.mpd", fmt.Errorf("connection reset"))
	if errors.Is(err, ErrObjectNotFound) {
		t.Errorf("unexpected ErrObjectNotFound for %v", err)
	}
}
