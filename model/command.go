package model

// Command is one parsed unit of a transcript: ChangeDirectory, ListDirectory
// or Invalid.
type Command interface {
	SourceLine() int
	command()
}

type ChangeDirectory struct {
	Target string
	Line   int
}

type ListDirectory struct {
	Entries []Entry
	Line    int
}

// Invalid marks a command line that could not be parsed. It is kept for
// diagnostics only and never changes the tree.
type Invalid struct {
	Line   int
	Source string
	Reason string
}

func (c ChangeDirectory) SourceLine() int { return c.Line }
func (c ListDirectory) SourceLine() int   { return c.Line }
func (c Invalid) SourceLine() int         { return c.Line }

func (ChangeDirectory) command() {}
func (ListDirectory) command()   {}
func (Invalid) command()         {}

type EntryKind uint8

const (
	EntryDir EntryKind = iota
	EntryFile
)

// Entry is one line of a directory listing.
type Entry struct {
	Kind EntryKind
	Name string // set for EntryDir
	File File   // set for EntryFile
}

func DirEntry(name string) Entry {
	return Entry{Kind: EntryDir, Name: name}
}

func FileEntry(f File) Entry {
	return Entry{Kind: EntryFile, Name: f.FullName(), File: f}
}

// DroppedEntry is a listing line that matched neither "dir <name>" nor
// "<size> <name>". The rest of its listing is kept.
type DroppedEntry struct {
	Line   int
	Source string
}
