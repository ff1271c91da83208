package platform

import (
	"context"
	"io/fs"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/skyport-cloud/skyport-mcp/internal/api"
	"github.com/skyport-cloud/skyport-mcp/internal/pagination"
)

type StorageService struct {
	client *api.Client
	files  fs.FS
}

type CreateBucketInput struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
	Public bool   `json:"public,omitempty"`
}

// UploadInput names a local file and the object key it is stored under. Key
// defaults to the file's base name.
type UploadInput struct {
	Bucket string `json:"bucket"`
	File   string `json:"file"`
	Key    string `json:"key,omitempty"`
}

func (s *StorageService) List(ctx context.Context, page *pagination.Request) (any, error) {
	return list(ctx, s.client, "/v1/buckets", pageQuery(page), "buckets")
}

func (s *StorageService) Get(ctx context.Context, bucket string) (any, error) {
	if err := required("bucket", bucket); err != nil {
		return nil, err
	}
	return get(ctx, s.client, path("/v1/buckets/%s", bucket), nil, "bucket")
}

func (s *StorageService) Create(ctx context.Context, in CreateBucketInput) (any, error) {
	if err := required("name", in.Name); err != nil {
		return nil, err
	}
	return send(ctx, s.client, http.MethodPost, "/v1/buckets", in)
}

func (s *StorageService) Delete(ctx context.Context, bucket string) (any, error) {
	if err := required("bucket", bucket); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/buckets/%s", bucket), nil)
}

// ListObjects lists the objects of bucket whose key starts with prefix.
func (s *StorageService) ListObjects(ctx context.Context, bucket, prefix string, page *pagination.Request) (any, error) {
	if err := required("bucket", bucket); err != nil {
		return nil, err
	}

	query := pageQuery(page)
	if prefix != "" {
		query.Set("prefix", prefix)
	}

	return list(ctx, s.client, path("/v1/buckets/%s/objects", bucket), query, "objects")
}

// Upload streams a local file into bucket as a multipart request.
func (s *StorageService) Upload(ctx context.Context, in UploadInput) (any, error) {
	if err := required("bucket", in.Bucket, "file", in.File); err != nil {
		return nil, err
	}

	f, err := s.files.Open(in.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	key := in.Key
	if key == "" {
		key = filepath.Base(in.File)
	}

	if info, err := f.Stat(); err == nil {
		log(ctx).Debugf("uploading %s (%s) to %s/%s", in.File, humanize.Bytes(uint64(info.Size())), in.Bucket, key)
	}

	var out any
	err = s.client.Upload(ctx, path("/v1/buckets/%s/objects", in.Bucket), api.File{
		FileName: filepath.Base(in.File),
		Content:  f,
	}, map[string]string{"key": key}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *StorageService) DeleteObject(ctx context.Context, bucket, key string) (any, error) {
	if err := required("bucket", bucket, "key", key); err != nil {
		return nil, err
	}
	return remove(ctx, s.client, path("/v1/buckets/%s/objects", bucket), url.Values{"key": {key}})
}
