package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const maxWorkers = 10

// RecordService scans a real directory and writes it out as a transcript
// that Lex and Build can replay.
type RecordService struct {
	logger  Logger
	workers int64
}

func NewRecordService(logger Logger) *RecordService {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &RecordService{
		logger:  logger,
		workers: maxWorkers,
	}
}

type scannedEntry struct {
	name  string
	isDir bool
	size  int64
	sub   *scannedDir
}

type scannedDir struct {
	entries []scannedEntry
}

// Record returns the transcript of a session that lists root and every
// readable directory beneath it. Subdirectories that cannot be read are
// listed but never entered.
func (rs *RecordService) Record(ctx context.Context, root string) ([]string, error) {
	sem := semaphore.NewWeighted(rs.workers)
	dir, err := rs.scan(ctx, sem, root)
	if err != nil {
		rs.handleError(err, root)
		return nil, err
	}

	lines := []string{"$ cd /"}
	return appendListing(lines, dir), nil
}

func (rs *RecordService) scan(ctx context.Context, sem *semaphore.Weighted, path string) (*scannedDir, error) {
	entries, err := rs.readDirectory(ctx, sem, path)
	if err != nil {
		return nil, err
	}

	dir := &scannedDir{}
	for _, entry := range entries {
		if strings.ContainsAny(entry.Name(), "\r\n") {
			rs.logger.Warn("skipping entry with line break in name", "path", path)
			continue
		}
		if entry.IsDir() {
			dir.entries = append(dir.entries, scannedEntry{name: entry.Name(), isDir: true})
			continue
		}
		info, err := entry.Info()
		if err != nil {
			rs.logger.Debug("failed to get file info", "path", filepath.Join(path, entry.Name()), "error", err)
			continue
		}
		// Symlinks, sockets and devices have no size of their own to report.
		if !info.Mode().IsRegular() {
			rs.logger.Debug("skipping non-regular file", "path", filepath.Join(path, entry.Name()), "mode", info.Mode().String())
			continue
		}
		dir.entries = append(dir.entries, scannedEntry{name: entry.Name(), size: info.Size()})
	}

	if err := rs.processSubDirectories(ctx, sem, path, dir); err != nil {
		return nil, err
	}
	return dir, nil
}

func (rs *RecordService) processSubDirectories(ctx context.Context, sem *semaphore.Weighted, path string, dir *scannedDir) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range dir.entries {
		if !dir.entries[i].isDir {
			continue
		}
		entry := &dir.entries[i]
		subPath := filepath.Join(path, entry.name)
		g.Go(func() error {
			sub, err := rs.scan(gctx, sem, subPath)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				rs.logger.Debug("error processing subdirectory", "path", subPath, "error", err)
				return nil
			}
			entry.sub = sub
			return nil
		})
	}
	return g.Wait()
}

func (rs *RecordService) readDirectory(ctx context.Context, sem *semaphore.Weighted, path string) ([]os.DirEntry, error) {
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer sem.Release(1)

	entries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied reading directory: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

func (rs *RecordService) handleError(err error, path string) {
	if errors.Is(err, fs.ErrPermission) {
		rs.logger.Error("permission denied reading directory", "path", path)
	} else {
		rs.logger.Error("failed to read directory", "path", filepath.Base(path), "error", err)
	}
}

func appendListing(lines []string, dir *scannedDir) []string {
	lines = append(lines, "$ ls")
	for _, entry := range dir.entries {
		if entry.isDir {
			lines = append(lines, "dir "+entry.name)
		} else {
			lines = append(lines, strconv.FormatInt(entry.size, 10)+" "+entry.name)
		}
	}
	for _, entry := range dir.entries {
		if entry.sub == nil {
			continue
		}
		lines = append(lines, "$ cd "+entry.name)
		lines = appendListing(lines, entry.sub)
		lines = append(lines, "$ cd ..")
	}
	return lines
}
