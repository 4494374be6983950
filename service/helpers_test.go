package service

import (
	"fmt"
	"strings"

	"github.com/nanaki-93/shelltree/model"
)

// sampleTranscript is a session with nested directories, files with and
// without extensions, and repeated navigation.
var sampleTranscript = []string{
	"$ cd /",
	"$ ls",
	"dir a",
	"14848514 b.txt",
	"8504156 c.dat",
	"dir d",
	"$ cd a",
	"$ ls",
	"dir e",
	"29116 f",
	"2557 g",
	"62596 h.lst",
	"$ cd e",
	"$ ls",
	"584 i",
	"$ cd ..",
	"$ cd ..",
	"$ cd d",
	"$ ls",
	"4060174 j",
	"8033020 d.log",
	"5626152 d.ext",
	"7214296 k",
}

func split(transcript string) []string {
	return strings.Split(strings.TrimSpace(transcript), "\n")
}

func mustFile(name string, size int64, opts ...model.FileOption) model.File {
	f, err := model.NewFile(name, size, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// shape renders every reachable directory and file of a tree, one per line,
// indented by depth. Directories carry a trailing slash; the root is "/".
func shape(tree *model.Tree) []string {
	var out []string
	var visit func(id model.DirID, depth int)
	visit = func(id model.DirID, depth int) {
		dir := tree.Dir(id)
		indent := strings.Repeat("  ", depth)
		name := dir.Name
		if id != tree.Root() {
			name += "/"
		}
		out = append(out, indent+name)
		for _, item := range dir.Children {
			if item.Kind == model.ItemDir {
				visit(item.Dir, depth+1)
				continue
			}
			out = append(out, fmt.Sprintf("%s  %s %d", indent, item.File.FullName(), item.File.Size))
		}
	}
	visit(tree.Root(), 0)
	return out
}

func sizesByPath(dirs []SizedDir) map[string]int64 {
	m := make(map[string]int64, len(dirs))
	for _, d := range dirs {
		m[d.Path] = d.Size
	}
	return m
}
