package service

import (
	"strings"

	"github.com/nanaki-93/shelltree/model"
)

const (
	rootTarget   = "/"
	parentTarget = ".."
	selfTarget   = "."
)

// Builder replays commands against a directory stack. The stack holds
// handles into the tree and always starts with the root.
type Builder struct {
	tree   *model.Tree
	stack  []model.DirID
	logger Logger
}

func NewBuilder(logger Logger) *Builder {
	if logger == nil {
		logger = NewNopLogger()
	}
	tree := model.NewTree()
	return &Builder{
		tree:   tree,
		stack:  []model.DirID{tree.Root()},
		logger: logger,
	}
}

// Build replays every command in order and returns the resulting tree.
func Build(commands []model.Command, logger Logger) *model.Tree {
	b := NewBuilder(logger)
	for _, cmd := range commands {
		b.Apply(cmd)
	}
	return b.Tree()
}

func (b *Builder) Apply(cmd model.Command) {
	switch c := cmd.(type) {
	case model.ChangeDirectory:
		b.changeDirectory(c.Target)
	case model.ListDirectory:
		b.listDirectory(c.Entries)
	case model.Invalid:
		b.logger.Debug("skipping invalid command", "line", c.Line, "reason", c.Reason)
	}
}

func (b *Builder) Tree() *model.Tree {
	return b.tree
}

func (b *Builder) Depth() int {
	return len(b.stack)
}

func (b *Builder) Cwd() model.DirID {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) Path() string {
	return b.tree.Path(b.stack)
}

// changeDirectory moves the stack to target. Unlike a plain "cd name", which
// enters the single child called name, a target containing "/" is walked as
// a path: a leading "/" resets to the root and each non-empty segment is
// stepped in turn, with "." left in place.
func (b *Builder) changeDirectory(target string) {
	if target == rootTarget || !strings.Contains(target, "/") {
		b.step(target)
		return
	}
	if strings.HasPrefix(target, rootTarget) {
		b.step(rootTarget)
	}
	for _, segment := range strings.Split(target, "/") {
		if segment == "" {
			continue
		}
		b.step(segment)
	}
}

func (b *Builder) step(target string) {
	switch target {
	case rootTarget:
		b.stack = b.stack[:1]
	case parentTarget:
		if len(b.stack) > 1 {
			b.stack = b.stack[:len(b.stack)-1]
		}
	case selfTarget:
	default:
		cwd := b.Cwd()
		child, ok := b.tree.ChildDir(cwd, target)
		if !ok {
			child = b.tree.AddChildDir(cwd, target)
			b.logger.Debug("entered unlisted directory", "path", b.Path(), "name", target)
		}
		b.stack = append(b.stack, child)
	}
}

func (b *Builder) listDirectory(entries []model.Entry) {
	cwd := b.Cwd()
	items := make([]model.Item, 0, len(entries))
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.Kind == model.EntryFile {
			items = append(items, model.FileItem(entry.File))
			continue
		}
		if seen[entry.Name] {
			continue
		}
		seen[entry.Name] = true

		child, ok := b.tree.ChildDir(cwd, entry.Name)
		if !ok {
			child = b.tree.NewDir(entry.Name)
		}
		items = append(items, model.DirItem(child))
	}

	b.tree.SetChildren(cwd, items)
	b.logger.Debug("listed directory", "path", b.Path(), "entries", len(items))
}
