package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/vecmath/blobstore"
	"github.com/hupe1980/vecmath/blobstore/minio"
	"github.com/hupe1980/vecmath/blobstore/s3"
)

type storeConfig struct {
	URI            string
	MinioAccessKey string
	MinioSecretKey string
	MinioSecure    bool
}

// openStore resolves a store URI:
//
//	DIR | file://DIR                  local directory
//	s3://BUCKET[/PREFIX]              Amazon S3 (default AWS credential chain)
//	minio://ENDPOINT/BUCKET[/PREFIX]  MinIO or other S3-compatible storage
func openStore(ctx context.Context, cfg storeConfig) (blobstore.BlobStore, error) {
	if cfg.URI == "" {
		return blobstore.NewLocalStore("."), nil
	}
	if !strings.Contains(cfg.URI, "://") {
		return blobstore.NewLocalStore(cfg.URI), nil
	}

	u, err := url.Parse(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("invalid store %q: %w", cfg.URI, err)
	}
	prefix := strings.TrimPrefix(u.Path, "/")

	switch u.Scheme {
	case "file":
		return blobstore.NewLocalStore(u.Host + u.Path), nil
	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("invalid store %q: missing bucket", cfg.URI)
		}
		return s3.New(ctx, u.Host, prefix)
	case "minio":
		bucket, rest, _ := strings.Cut(prefix, "/")
		if u.Host == "" || bucket == "" {
			return nil, fmt.Errorf("invalid store %q: want minio://endpoint/bucket[/prefix]", cfg.URI)
		}
		return minio.Dial(u.Host, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioSecure, bucket, rest)
	default:
		return nil, fmt.Errorf("unsupported store scheme %q", u.Scheme)
	}
}
