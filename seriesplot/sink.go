// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seriesplot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// A Sink stores rendered charts by name.
type Sink interface {
	// Create returns a writer for the named object. The object
	// is complete once the writer is closed without error.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Close releases resources held by the sink.
	Close() error

	// String describes the destination, for logging.
	String() string
}

// OpenSink returns a Sink for dest. A dest of the form
// "gs://bucket/prefix" writes to Cloud Storage; credentials, if not
// empty, names a service account key file. Any other dest is a local
// directory, created as needed.
func OpenSink(ctx context.Context, dest, credentials string) (Sink, error) {
	bucket, prefix, ok := parseGCS(dest)
	if !ok {
		if strings.HasPrefix(dest, "gs://") {
			return nil, fmt.Errorf("bad Cloud Storage destination %q; want gs://bucket/prefix", dest)
		}
		return &DirSink{Dir: dest}, nil
	}
	var opts []option.ClientOption
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}
	return NewGCSSink(ctx, bucket, prefix, opts...)
}

func parseGCS(dest string) (bucket, prefix string, ok bool) {
	rest, ok := strings.CutPrefix(dest, "gs://")
	if !ok {
		return "", "", false
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, strings.Trim(prefix, "/"), true
}

// A DirSink writes charts as files in a local directory.
type DirSink struct {
	Dir string
}

func (s *DirSink) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(dir, name))
}

func (s *DirSink) Close() error { return nil }

func (s *DirSink) String() string { return s.Dir }

// A GCSSink writes charts as objects under a prefix of a Cloud
// Storage bucket.
type GCSSink struct {
	client *storage.Client
	bucket *storage.BucketHandle
	name   string
	prefix string
}

// NewGCSSink connects to Cloud Storage. Objects are created as
// prefix/name in bucket.
func NewGCSSink(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCSSink, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to Cloud Storage: %w", err)
	}
	return &GCSSink{
		client: client,
		bucket: client.Bucket(bucket),
		name:   bucket,
		prefix: prefix,
	}, nil
}

func (s *GCSSink) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	w := s.bucket.Object(path.Join(s.prefix, name)).NewWriter(ctx)
	w.ContentType = contentType(name)
	return w, nil
}

func (s *GCSSink) Close() error {
	return s.client.Close()
}

func (s *GCSSink) String() string {
	return "gs://" + path.Join(s.name, s.prefix)
}

func contentType(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "html" {
		return "text/html; charset=utf-8"
	}
	return Format(ext).ContentType()
}
