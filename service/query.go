package service

import (
	"sort"

	"github.com/nanaki-93/shelltree/model"
)

// SizedDir is a query result: one directory with its aggregate size.
type SizedDir struct {
	ID   model.DirID
	Name string
	Path string
	Size int64
}

func (d SizedDir) GetFormattedSize() string {
	return model.FormatSize(d.Size)
}

// All returns every reachable directory in pre-order.
func (s *SizedTree) All() []SizedDir {
	return s.collect(func(int64) bool { return true })
}

// AtMost returns every directory whose aggregate size is at most threshold,
// in pre-order: a directory before its children, children in listing order.
func (s *SizedTree) AtMost(threshold int64) []SizedDir {
	return s.collect(func(size int64) bool { return size <= threshold })
}

// SmallestAtLeast returns the smallest directory of at least minSize bytes.
// Among equal sizes the first in pre-order wins.
func (s *SizedTree) SmallestAtLeast(minSize int64) (SizedDir, bool) {
	var (
		best  SizedDir
		found bool
	)
	for _, dir := range s.collect(func(size int64) bool { return size >= minSize }) {
		if !found || dir.Size < best.Size {
			best, found = dir, true
		}
	}
	return best, found
}

// FreeSpaceCandidate picks the smallest directory whose removal leaves at
// least required bytes free on a disk of diskSize bytes. It reports false when
// enough space is already free or no directory would be enough.
func (s *SizedTree) FreeSpaceCandidate(diskSize, required int64) (SizedDir, bool) {
	free := diskSize - s.RootSize()
	if free >= required {
		return SizedDir{}, false
	}
	return s.SmallestAtLeast(required - free)
}

func (s *SizedTree) collect(keep func(size int64) bool) []SizedDir {
	var result []SizedDir
	s.tree.Walk(func(chain []model.DirID) {
		id := chain[len(chain)-1]
		size := s.Size(id)
		if !keep(size) {
			return
		}
		result = append(result, SizedDir{
			ID:   id,
			Name: s.tree.Dir(id).Name,
			Path: s.tree.Path(chain),
			Size: size,
		})
	})
	return result
}

func SumSizes(dirs []SizedDir) int64 {
	var sum int64
	for _, d := range dirs {
		sum += d.Size
	}
	return sum
}

type BySize []SizedDir

func (b BySize) Len() int      { return len(b) }
func (b BySize) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b BySize) Less(i, j int) bool {
	if b[i].Size != b[j].Size {
		return b[i].Size > b[j].Size
	}
	return b[i].Path < b[j].Path
}

// ReorderDirectories returns a copy of dirs sorted largest first.
func ReorderDirectories(dirs []SizedDir) []SizedDir {
	result := make([]SizedDir, len(dirs))
	copy(result, dirs)
	sort.Sort(BySize(result))
	return result
}
