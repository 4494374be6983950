package service

import (
	"strconv"
	"strings"

	"github.com/nanaki-93/shelltree/model"
)

const (
	commandMarker = "$"
	cdCommand     = "cd"
	lsCommand     = "ls"
	dirPrefix     = "dir"
)

// lexState is the accumulator carried across lines.
type lexState struct {
	pending  *model.ListDirectory
	commands []model.Command
	dropped  []model.DroppedEntry
}

// Lex turns transcript lines into commands. Listing lines that match neither
// "dir <name>" nor "<size> <name>" are dropped from their listing and
// reported in the second result.
func Lex(lines []string) ([]model.Command, []model.DroppedEntry) {
	st := &lexState{}
	for i, line := range lines {
		st.line(i+1, line)
	}
	st.flush()
	return st.commands, st.dropped
}

func (st *lexState) line(n int, raw string) {
	line := strings.TrimSpace(raw)
	if strings.HasPrefix(line, commandMarker) {
		st.flush()
		st.command(n, raw, strings.TrimSpace(strings.TrimPrefix(line, commandMarker)))
		return
	}
	if st.pending == nil {
		return
	}
	entry, ok := parseEntry(line)
	if !ok {
		st.dropped = append(st.dropped, model.DroppedEntry{Line: n, Source: raw})
		return
	}
	st.pending.Entries = append(st.pending.Entries, entry)
}

func (st *lexState) command(n int, raw, body string) {
	word, arg := splitWord(body)
	switch word {
	case cdCommand:
		if arg == "" {
			st.invalid(n, raw, "cd requires a target")
			return
		}
		st.commands = append(st.commands, model.ChangeDirectory{Target: arg, Line: n})
	case lsCommand:
		if arg != "" {
			st.invalid(n, raw, "ls takes no arguments")
			return
		}
		st.pending = &model.ListDirectory{Line: n}
	case "":
		st.invalid(n, raw, "empty command")
	default:
		st.invalid(n, raw, "unknown command "+strconv.Quote(word))
	}
}

func (st *lexState) invalid(n int, raw, reason string) {
	st.commands = append(st.commands, model.Invalid{Line: n, Source: raw, Reason: reason})
}

func (st *lexState) flush() {
	if st.pending == nil {
		return
	}
	st.commands = append(st.commands, *st.pending)
	st.pending = nil
}

func parseEntry(line string) (model.Entry, bool) {
	head, name := splitWord(line)
	if name == "" {
		return model.Entry{}, false
	}
	if head == dirPrefix {
		return model.DirEntry(name), true
	}
	if !isDigits(head) {
		return model.Entry{}, false
	}
	size, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return model.Entry{}, false
	}

	base, ext, hasExt := model.ParseFileName(name)
	var opts []model.FileOption
	if hasExt {
		opts = append(opts, model.WithExtension(ext))
	}
	f, err := model.NewFile(base, size, opts...)
	if err != nil {
		return model.Entry{}, false
	}
	return model.FileEntry(f), true
}

// splitWord returns the first space separated word and the trimmed rest.
func splitWord(s string) (string, string) {
	word, rest, _ := strings.Cut(strings.TrimSpace(s), " ")
	return word, strings.TrimSpace(rest)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
