package model

import "strings"

// DirID is a stable handle to a directory owned by a Tree.
type DirID int

const RootID DirID = 0

type ItemKind uint8

const (
	ItemDir ItemKind = iota
	ItemFile
)

// Item is a directory child: either a handle to a sub directory or a file.
type Item struct {
	Kind ItemKind
	Dir  DirID
	File File
}

func DirItem(id DirID) Item {
	return Item{Kind: ItemDir, Dir: id}
}

func FileItem(f File) Item {
	return Item{Kind: ItemFile, File: f}
}

type Directory struct {
	Name     string
	Children []Item

	size  int64
	sized bool
}

// AggregateSize reports the total size of every file beneath the directory.
// The second result is false until the tree has been aggregated.
func (d *Directory) AggregateSize() (int64, bool) {
	return d.size, d.sized
}

// SetAggregateSize records the computed total for the directory.
func (d *Directory) SetAggregateSize(size int64) {
	d.size = size
	d.sized = true
}

// Tree is an arena of directories. Children refer to sub directories by
// DirID, so every directory has exactly one owner: the arena.
type Tree struct {
	dirs []*Directory
}

// NewTree returns a tree holding only the root directory "/".
func NewTree() *Tree {
	return &Tree{dirs: []*Directory{{Name: "/"}}}
}

func (t *Tree) Root() DirID {
	return RootID
}

func (t *Tree) Dir(id DirID) *Directory {
	return t.dirs[id]
}

// Len counts every directory ever created, including ones a later listing
// made unreachable.
func (t *Tree) Len() int {
	return len(t.dirs)
}

// NewDir creates a detached directory. It becomes part of the hierarchy once
// a parent lists it through SetChildren.
func (t *Tree) NewDir(name string) DirID {
	t.dirs = append(t.dirs, &Directory{Name: name})
	return DirID(len(t.dirs) - 1)
}

func (t *Tree) ChildDir(parent DirID, name string) (DirID, bool) {
	for _, item := range t.dirs[parent].Children {
		if item.Kind == ItemDir && t.dirs[item.Dir].Name == name {
			return item.Dir, true
		}
	}
	return 0, false
}

// AddChildDir appends a new empty directory to parent's children.
func (t *Tree) AddChildDir(parent DirID, name string) DirID {
	id := t.NewDir(name)
	p := t.dirs[parent]
	p.Children = append(p.Children, DirItem(id))
	return id
}

// SetChildren replaces the children of id wholesale.
func (t *Tree) SetChildren(id DirID, items []Item) {
	t.dirs[id].Children = items
}

// Path joins the names along a root-first chain of handles.
func (t *Tree) Path(chain []DirID) string {
	if len(chain) <= 1 {
		return "/"
	}
	names := make([]string, 0, len(chain)-1)
	for _, id := range chain[1:] {
		names = append(names, t.dirs[id].Name)
	}
	return "/" + strings.Join(names, "/")
}

// Walk visits every directory reachable from the root in pre-order: a
// directory before its children, children in listing order. fn receives the
// root-first chain of handles ending at the visited directory; it must not
// retain the slice.
func (t *Tree) Walk(fn func(chain []DirID)) {
	chain := []DirID{RootID}
	var visit func()
	visit = func() {
		fn(chain)
		for _, item := range t.dirs[chain[len(chain)-1]].Children {
			if item.Kind != ItemDir {
				continue
			}
			chain = append(chain, item.Dir)
			visit()
			chain = chain[:len(chain)-1]
		}
	}
	visit()
}
