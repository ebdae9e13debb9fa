package telemetry

import (
	"archive/zip"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"weatherdata.app/internal/ports"
	"weatherdata.app/pkg/errors"
)

// Resolver locates the daily CSV for a StreamKey across the storage tiers.
type Resolver interface {
	Resolve(ctx context.Context, key StreamKey) (*ResolvedStream, error)
}

// StreamResolver checks the local cache, then the standalone blob, then the metric's
// historical archive. Archive entries are mirrored into the cache while being read.
type StreamResolver struct {
	blobs    ports.BlobStore
	cache    ports.StreamCache
	logger   ports.Logger
	metrics  ports.TelemetryMetrics
	spoolDir string
	probes   singleflight.Group
}

type ResolverDependencies struct {
	BlobStore ports.BlobStore
	Cache     ports.StreamCache
	Logger    ports.Logger
	Metrics   ports.TelemetryMetrics
	// SpoolDir holds temporary copies of archives whose blob stream is not seekable.
	// Empty means os.TempDir().
	SpoolDir string
}

func NewStreamResolver(deps ResolverDependencies) (*StreamResolver, error) {
	if deps.BlobStore == nil {
		return nil, errors.NewValidationError("blob store is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("stream cache is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &StreamResolver{
		blobs:    deps.BlobStore,
		cache:    deps.Cache,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		spoolDir: deps.SpoolDir,
	}, nil
}

// Resolve returns an open stream for key. A NotFoundError means no tier holds the day.
func (r *StreamResolver) Resolve(ctx context.Context, key StreamKey) (*ResolvedStream, error) {
	metric := key.Metric.PathName()

	if stream, ok := r.fromCache(ctx, key); ok {
		r.metrics.RecordResolution(metric, string(OriginCacheFile))
		return stream, nil
	}

	standaloneExists, archiveExists, err := r.probe(ctx, key)
	if err != nil {
		return nil, err
	}

	switch {
	case standaloneExists:
		body, err := r.blobs.Open(ctx, key.StandalonePath())
		if err != nil {
			return nil, storageError("open "+key.StandalonePath(), err)
		}
		r.metrics.RecordResolution(metric, string(OriginStandaloneFile))
		return &ResolvedStream{Metric: key.Metric, Origin: OriginStandaloneFile, Body: body}, nil

	case archiveExists:
		stream, err := r.fromArchive(ctx, key)
		if err != nil {
			if errors.IsNotFoundError(err) {
				r.metrics.RecordNotFound(metric)
			}
			return nil, err
		}
		r.metrics.RecordResolution(metric, string(OriginArchiveEntry))
		return stream, nil

	default:
		r.metrics.RecordNotFound(metric)
		return nil, errors.NewNotFoundError(fmt.Sprintf("no %s data for device %s on %s",
			metric, key.Device, key.Date.Format(DateLayout)))
	}
}

func (r *StreamResolver) fromCache(ctx context.Context, key StreamKey) (*ResolvedStream, bool) {
	body, err := r.cache.Open(ctx, key.CacheKey())
	if err != nil {
		if !errors.IsNotFoundError(err) {
			r.logger.Warn("Cache lookup failed, falling back to blob storage",
				ports.F("key", key.CacheKey()),
				ports.F("cache", r.cache.Name()),
				ports.F("error", err))
		}
		return nil, false
	}
	return &ResolvedStream{Metric: key.Metric, Origin: OriginCacheFile, Body: body}, true
}

// probe checks the standalone and archive paths concurrently.
func (r *StreamResolver) probe(ctx context.Context, key StreamKey) (bool, bool, error) {
	var standalone, archive bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		standalone, err = r.exists(gctx, key.StandalonePath())
		return err
	})
	g.Go(func() error {
		var err error
		archive, err = r.exists(gctx, key.ArchivePath())
		return err
	})

	if err := g.Wait(); err != nil {
		return false, false, err
	}
	return standalone, archive, nil
}

// exists collapses concurrent probes of the same path into one blob store call.
func (r *StreamResolver) exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	ch := r.probes.DoChan(path, func() (interface{}, error) {
		return r.blobs.Exists(context.WithoutCancel(ctx), path)
	})

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return false, storageError("probe "+path, res.Err)
		}
		return res.Val.(bool), nil
	}
}

func (r *StreamResolver) fromArchive(ctx context.Context, key StreamKey) (*ResolvedStream, error) {
	blob, err := r.blobs.Open(ctx, key.ArchivePath())
	if err != nil {
		return nil, storageError("open "+key.ArchivePath(), err)
	}

	archive, err := openArchive(ctx, blob, r.spoolDir)
	if err != nil {
		return nil, err
	}

	var entry *zip.File
	for _, f := range archive.reader.File {
		if f.Name == key.FileName() {
			entry = f
			break
		}
	}
	if entry == nil {
		_ = archive.Close()
		return nil, errors.NewNotFoundError(fmt.Sprintf("archive %s has no entry %s", key.ArchivePath(), key.FileName()))
	}

	rc, err := entry.Open()
	if err != nil {
		_ = archive.Close()
		return nil, errors.NewStorageError("open archive entry "+key.FileName(), err)
	}

	var body io.ReadCloser = &archiveEntryReader{entry: rc, archive: archive}

	writer, err := r.cache.Create(ctx, key.CacheKey())
	if err != nil {
		r.cacheWriteFailed(key, errors.NewCacheWriteError("create cache entry", err))
	} else {
		body = &cachingReader{
			body:   body,
			writer: writer,
			onFailure: func(err error) {
				r.cacheWriteFailed(key, err)
			},
		}
	}

	return &ResolvedStream{Metric: key.Metric, Origin: OriginArchiveEntry, Body: body}, nil
}

func (r *StreamResolver) cacheWriteFailed(key StreamKey, err error) {
	r.metrics.RecordCacheWriteFailure(key.Metric.PathName())
	r.logger.Warn("Failed to populate stream cache",
		ports.F("key", key.CacheKey()),
		ports.F("cache", r.cache.Name()),
		ports.F("error", err))
}

// storageError keeps typed errors from the adapters and wraps everything else.
func storageError(message string, err error) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.TypeOf(err) != errors.ErrorTypeUnknown {
		return err
	}
	return errors.NewStorageError(message, err)
}

// archiveHandle owns a zip reader and whatever backs it.
type archiveHandle struct {
	reader  *zip.Reader
	closers []func() error
}

func (a *archiveHandle) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

type statReaderAt interface {
	io.ReaderAt
	Stat() (fs.FileInfo, error)
}

// openArchive reads the zip directory of blob. Blobs that are not seekable are
// spooled to a temporary file that is removed on Close.
func openArchive(ctx context.Context, blob io.ReadCloser, spoolDir string) (*archiveHandle, error) {
	handle := &archiveHandle{closers: []func() error{blob.Close}}

	if ra, ok := blob.(statReaderAt); ok {
		info, err := ra.Stat()
		if err != nil {
			_ = handle.Close()
			return nil, errors.NewStorageError("stat archive", err)
		}
		zr, err := zip.NewReader(ra, info.Size())
		if err != nil {
			_ = handle.Close()
			return nil, errors.NewStorageError("read archive directory", err)
		}
		handle.reader = zr
		return handle, nil
	}

	spool, err := os.CreateTemp(spoolDir, "archive-*.zip")
	if err != nil {
		_ = handle.Close()
		return nil, errors.NewStorageError("create archive spool file", err)
	}
	handle.closers = append(handle.closers, func() error {
		closeErr := spool.Close()
		if err := os.Remove(spool.Name()); err != nil && !os.IsNotExist(err) {
			return err
		}
		return closeErr
	})

	size, err := io.Copy(spool, &contextReader{ctx: ctx, r: blob})
	if err != nil {
		_ = handle.Close()
		return nil, storageError("download archive", err)
	}

	zr, err := zip.NewReader(spool, size)
	if err != nil {
		_ = handle.Close()
		return nil, errors.NewStorageError("read archive directory", err)
	}
	handle.reader = zr
	return handle, nil
}

// archiveEntryReader closes the parent archive together with the entry.
type archiveEntryReader struct {
	entry   io.ReadCloser
	archive *archiveHandle
}

func (e *archiveEntryReader) Read(p []byte) (int, error) {
	return e.entry.Read(p)
}

func (e *archiveEntryReader) Close() error {
	entryErr := e.entry.Close()
	archiveErr := e.archive.Close()
	if entryErr != nil {
		return entryErr
	}
	return archiveErr
}

// cachingReader copies everything read from body into a cache entry. The entry is
// committed on Close only if body was read to EOF; otherwise it is discarded.
type cachingReader struct {
	body      io.ReadCloser
	writer    ports.CacheWriter
	onFailure func(error)
	eof       bool
	failed    bool
	closed    bool
}

func (c *cachingReader) Read(p []byte) (int, error) {
	n, err := c.body.Read(p)
	if n > 0 && !c.failed {
		if _, werr := c.writer.Write(p[:n]); werr != nil {
			c.fail(errors.NewCacheWriteError("write cache entry", werr))
		}
	}
	if err == io.EOF {
		c.eof = true
	}
	return n, err
}

func (c *cachingReader) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	err := c.body.Close()
	if c.failed {
		return err
	}
	if !c.eof {
		_ = c.writer.Abort()
		return err
	}
	if cerr := c.writer.Commit(); cerr != nil {
		c.onFailure(errors.NewCacheWriteError("commit cache entry", cerr))
	}
	return err
}

func (c *cachingReader) fail(err error) {
	c.failed = true
	_ = c.writer.Abort()
	c.onFailure(err)
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
