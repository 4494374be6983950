package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nanaki-93/shelltree/model"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name        string
		lines       []string
		wantCmds    []model.Command
		wantDropped []model.DroppedEntry
	}{
		{
			name: "cd and listing",
			lines: split(`
$ cd /
$ ls
dir a
14 b.txt
$ cd a
$ ls
584 c.dat`),
			wantCmds: []model.Command{
				model.ChangeDirectory{Target: "/", Line: 1},
				model.ListDirectory{Line: 2, Entries: []model.Entry{
					model.DirEntry("a"),
					model.FileEntry(mustFile("b", 14, model.WithExtension("txt"))),
				}},
				model.ChangeDirectory{Target: "a", Line: 5},
				model.ListDirectory{Line: 6, Entries: []model.Entry{
					model.FileEntry(mustFile("c", 584, model.WithExtension("dat"))),
				}},
			},
		},
		{
			name:  "cd without target is invalid",
			lines: []string{"$ cd", "$ cd a"},
			wantCmds: []model.Command{
				model.Invalid{Line: 1, Source: "$ cd", Reason: "cd requires a target"},
				model.ChangeDirectory{Target: "a", Line: 2},
			},
		},
		{
			name:  "empty listing at end of input",
			lines: []string{"$ ls"},
			wantCmds: []model.Command{
				model.ListDirectory{Line: 1},
			},
		},
		{
			name:  "malformed entries are dropped, rest of listing kept",
			lines: []string{"$ ls", "dir", "abc x", "-5 y", "", "99999999999999999999 big", "12 ok", "dir z"},
			wantCmds: []model.Command{
				model.ListDirectory{Line: 1, Entries: []model.Entry{
					model.FileEntry(mustFile("ok", 12)),
					model.DirEntry("z"),
				}},
			},
			wantDropped: []model.DroppedEntry{
				{Line: 2, Source: "dir"},
				{Line: 3, Source: "abc x"},
				{Line: 4, Source: "-5 y"},
				{Line: 5, Source: ""},
				{Line: 6, Source: "99999999999999999999 big"},
			},
		},
		{
			name:  "lines outside a listing are ignored",
			lines: []string{"hello", "dir a", "$ cd x", "12 f"},
			wantCmds: []model.Command{
				model.ChangeDirectory{Target: "x", Line: 3},
			},
		},
		{
			name:  "unknown and malformed commands",
			lines: []string{"$", "$ pwd", "$ ls -la", "12 f"},
			wantCmds: []model.Command{
				model.Invalid{Line: 1, Source: "$", Reason: "empty command"},
				model.Invalid{Line: 2, Source: "$ pwd", Reason: `unknown command "pwd"`},
				model.Invalid{Line: 3, Source: "$ ls -la", Reason: "ls takes no arguments"},
			},
		},
		{
			name:  "names keep inner spaces and split on the last dot",
			lines: []string{"$ cd my docs", "$ ls", "dir old photos", "7 archive.tar.gz", "3 .bashrc"},
			wantCmds: []model.Command{
				model.ChangeDirectory{Target: "my docs", Line: 1},
				model.ListDirectory{Line: 2, Entries: []model.Entry{
					model.DirEntry("old photos"),
					model.FileEntry(mustFile("archive.tar", 7, model.WithExtension("gz"))),
					model.FileEntry(mustFile(".bashrc", 3)),
				}},
			},
		},
		{
			name:  "consecutive listings",
			lines: []string{"$ ls", "1 a", "$ ls", "2 b"},
			wantCmds: []model.Command{
				model.ListDirectory{Line: 1, Entries: []model.Entry{model.FileEntry(mustFile("a", 1))}},
				model.ListDirectory{Line: 3, Entries: []model.Entry{model.FileEntry(mustFile("b", 2))}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, dropped := Lex(tt.lines)
			if diff := cmp.Diff(tt.wantCmds, cmds); diff != "" {
				t.Errorf("commands mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantDropped, dropped); diff != "" {
				t.Errorf("dropped mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLex_Empty(t *testing.T) {
	cmds, dropped := Lex(nil)
	if len(cmds) != 0 || len(dropped) != 0 {
		t.Errorf("got %d commands and %d dropped, want none", len(cmds), len(dropped))
	}
}
