package bucket

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/minio/minio-go/v7"
)

const (
	contentTypeJSON     = "application/json"
	defaultCacheControl = "max-age=300"
	latestObject        = "latest"
)

// PublishReport uploads data as <base>/<job>/<period>.json and
// <base>/<job>/latest.json, returning the URL of the period object.
func (b *Bucket) PublishReport(ctx context.Context, job string, period entity.Period, data []byte) (string, error) {
	fp := b.constructFullPath(job, period.String(), "json")
	if err := b.putJSON(ctx, fp, data); err != nil {
		return "", err
	}
	if err := b.putJSON(ctx, b.constructFullPath(job, latestObject, "json"), data); err != nil {
		return "", err
	}
	url := b.getCDNURL(fp)
	slog.Default().InfoContext(ctx, "report published",
		slog.String("job", job),
		slog.String("period", period.String()),
		slog.String("url", url),
	)
	return url, nil
}

func (b *Bucket) putJSON(ctx context.Context, fp string, data []byte) error {
	cacheControl := b.CacheControl
	if cacheControl == "" {
		cacheControl = defaultCacheControl
	}
	r := bytes.NewReader(data)
	_, err := b.Client.PutObject(ctx, b.S3BucketName, fp, r, int64(r.Len()),
		minio.PutObjectOptions{
			ContentType:  contentTypeJSON,
			CacheControl: cacheControl,
			UserMetadata: map[string]string{"x-amz-acl": "public-read"},
		})
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't upload report object",
			slog.String("key", fp),
			slog.String("err", err.Error()))
		return fmt.Errorf("can't upload %s: %w", fp, err)
	}
	return nil
}

// GetBaseFolder returns the base folder for the bucket
func (b *Bucket) GetBaseFolder() string {
	return b.BaseFolder
}

func (b *Bucket) constructFullPath(folder, fileName, ext string) string {
	return strings.TrimPrefix(path.Clean(path.Join(b.BaseFolder, folder, fileName)+"."+ext), "/")
}

func (b *Bucket) getCDNURL(filePath string) string {
	if b.PublicURL != "" {
		return strings.TrimRight(b.PublicURL, "/") + "/" + filePath
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}
