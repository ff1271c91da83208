package tools

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/skyport-cloud/skyport-mcp/internal/platform"
)

type bucketArgs struct {
	Bucket string `json:"bucket"`
}

type listObjectsArgs struct {
	bucketArgs
	pageArgs
	Prefix string `json:"prefix"`
}

type objectArgs struct {
	bucketArgs
	Key string `json:"key"`
}

var argBucket = required("Name of the bucket")

func storageFamily() *Family {
	return &Family{
		Name: "storage",
		Description: heredoc.Doc(`
			Manage object storage buckets and the objects stored in them.
		`),
		Operations: []Operation{
			{
				ToolName:    "list_buckets",
				Action:      "list",
				Description: "List the storage buckets of the current team",
				ToolArgs:    withPaging(nil),
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in pageArgs) (any, error) {
					return p.Storage.List(ctx, &in.Request)
				}),
			},
			{
				ToolName:    "get_bucket",
				Action:      "get",
				Description: "Get the details of a storage bucket",
				ToolArgs:    map[string]Arg{"bucket": argBucket},
				ReadOnly:    true,
				Run: run(func(ctx context.Context, p *platform.Platform, in bucketArgs) (any, error) {
					return p.Storage.Get(ctx, in.Bucket)
				}),
			},
			{
				ToolName:    "create_bucket",
				Action:      "create",
				Description: "Create a storage bucket",
				ToolArgs: map[string]Arg{
					"name":   required("Name of the bucket"),
					"region": optional("Region to create the bucket in"),
					"public": {Description: "Serve objects publicly", Type: TypeBoolean},
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in platform.CreateBucketInput) (any, error) {
					return p.Storage.Create(ctx, in)
				}),
			},
			{
				ToolName:    "delete_bucket",
				Action:      "delete",
				Description: "Permanently delete a storage bucket",
				ToolArgs:    map[string]Arg{"bucket": argBucket},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in bucketArgs) (any, error) {
					return p.Storage.Delete(ctx, in.Bucket)
				}),
			},
			{
				ToolName:    "list_bucket_objects",
				Action:      "list_objects",
				Description: "List the objects of a bucket, optionally under a key prefix",
				ToolArgs: withPaging(map[string]Arg{
					"bucket": argBucket,
					"prefix": optional("Only list keys starting with this prefix"),
				}),
				ReadOnly: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in listObjectsArgs) (any, error) {
					return p.Storage.ListObjects(ctx, in.Bucket, in.Prefix, &in.Request)
				}),
			},
			{
				ToolName:    "upload_bucket_object",
				Action:      "upload",
				Description: "Upload a local file to a bucket",
				ToolArgs: map[string]Arg{
					"bucket": argBucket,
					"file":   required("Path of the local file to upload"),
					"key":    optional("Object key; defaults to the file name"),
				},
				Run: run(func(ctx context.Context, p *platform.Platform, in platform.UploadInput) (any, error) {
					return p.Storage.Upload(ctx, in)
				}),
			},
			{
				ToolName:    "delete_bucket_object",
				Action:      "delete_object",
				Description: "Delete an object from a bucket",
				ToolArgs: map[string]Arg{
					"bucket": argBucket,
					"key":    required("Key of the object"),
				},
				Destructive: true,
				Run: run(func(ctx context.Context, p *platform.Platform, in objectArgs) (any, error) {
					return p.Storage.DeleteObject(ctx, in.Bucket, in.Key)
				}),
			},
		},
	}
}
