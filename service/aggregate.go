package service

import "github.com/nanaki-93/shelltree/model"

// SizedTree is a tree whose reachable directories all carry an aggregate
// size. It can only be obtained from Aggregate, so queries never see a
// directory without one. The underlying tree is not handed out again, which
// keeps it from changing under sizes already computed.
type SizedTree struct {
	tree *model.Tree
}

// Aggregate computes the size of every directory reachable from the root in
// a single post-order pass. Running it again on an unchanged tree records the
// same sizes.
func Aggregate(tree *model.Tree) *SizedTree {
	aggregateDir(tree, tree.Root())
	return &SizedTree{tree: tree}
}

func aggregateDir(tree *model.Tree, id model.DirID) int64 {
	dir := tree.Dir(id)
	var total int64
	for _, item := range dir.Children {
		switch item.Kind {
		case model.ItemFile:
			total += item.File.Size
		case model.ItemDir:
			total += aggregateDir(tree, item.Dir)
		}
	}
	dir.SetAggregateSize(total)
	return total
}

func (s *SizedTree) RootSize() int64 {
	return s.Size(s.tree.Root())
}

func (s *SizedTree) Size(id model.DirID) int64 {
	size, _ := s.tree.Dir(id).AggregateSize()
	return size
}
