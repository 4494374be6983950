package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nanaki-93/shelltree/config"
	"github.com/stretchr/testify/require"
)

const scenarioA = `$ cd /
$ ls
dir a
14 b.txt
$ cd a
$ ls
584 c.dat
`

const sampleSession = `$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
`

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "terminal-output.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// run executes a fresh command tree and returns what it wrote to stdout.
func run(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")

	rootCmd := NewRootCmd()
	output := &bytes.Buffer{}
	rootCmd.SetOut(output)
	rootCmd.SetErr(io.Discard)
	if stdin != nil {
		rootCmd.SetIn(stdin)
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return output.String(), err
}

func outputLines(out string) []string {
	return strings.Split(strings.TrimSpace(out), "\n")
}
