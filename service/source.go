package service

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TranscriptSource supplies a whole transcript as ordered lines. Any error it
// returns is fatal to the pipeline.
type TranscriptSource interface {
	Name() string
	Lines() ([]string, error)
}

type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return s.Path
}

func (s FileSource) Lines() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("permission denied reading transcript: %s: %w", s.Path, err)
		}
		return nil, fmt.Errorf("failed to open transcript %s: %w", s.Path, err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript %s: %w", s.Path, err)
	}
	return lines, nil
}

type ReaderSource struct {
	Label  string
	Reader io.Reader
}

func (s ReaderSource) Name() string {
	return s.Label
}

func (s ReaderSource) Lines() ([]string, error) {
	lines, err := readLines(s.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript from %s: %w", s.Label, err)
	}
	return lines, nil
}

// StaticSource serves lines already in memory.
type StaticSource struct {
	Label string
	Data  []string
}

func (s StaticSource) Name() string {
	return s.Label
}

func (s StaticSource) Lines() ([]string, error) {
	return s.Data, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// splitLines is used for in-memory contents such as git blobs.
func splitLines(contents string) []string {
	contents = strings.ReplaceAll(contents, "\r\n", "\n")
	contents = strings.TrimSuffix(contents, "\n")
	if contents == "" {
		return nil
	}
	return strings.Split(contents, "\n")
}
