package service

import (
	"fmt"
	"io"
	"sort"

	"github.com/nanaki-93/shelltree/model"
)

// Report is the outcome of running the whole pipeline over one transcript.
type Report struct {
	Source   string
	Lines    int
	Commands []model.Command
	Dropped  []model.DroppedEntry
	Tree     *SizedTree
}

// Invalid returns the commands that could not be parsed.
func (r *Report) Invalid() []model.Invalid {
	var invalid []model.Invalid
	for _, cmd := range r.Commands {
		if inv, ok := cmd.(model.Invalid); ok {
			invalid = append(invalid, inv)
		}
	}
	return invalid
}

func (r *Report) HasDiagnostics() bool {
	return len(r.Dropped) > 0 || len(r.Invalid()) > 0
}

type TranscriptService interface {
	Analyze(source TranscriptSource) (*Report, error)
	PrintDirectories(w io.Writer, dirs []SizedDir)
	PrintDiagnostics(w io.Writer, report *Report)
}

type TranscriptAnalyzer struct {
	logger Logger
}

func NewService() TranscriptService {
	return &TranscriptAnalyzer{logger: NewNopLogger()}
}

func NewServiceWithLogger(logger Logger) TranscriptService {
	return &TranscriptAnalyzer{logger: logger}
}

// Analyze reads the transcript, then lexes, builds and aggregates it. Only a
// source that cannot be read makes it fail; malformed lines end up in the
// report.
func (ta *TranscriptAnalyzer) Analyze(source TranscriptSource) (*Report, error) {
	lines, err := source.Lines()
	if err != nil {
		ta.logger.Error("failed to read transcript", "source", source.Name(), "error", err)
		return nil, err
	}

	commands, dropped := Lex(lines)
	tree := Build(commands, ta.logger)
	sized := Aggregate(tree)

	report := &Report{
		Source:   source.Name(),
		Lines:    len(lines),
		Commands: commands,
		Dropped:  dropped,
		Tree:     sized,
	}
	ta.logger.Debug("transcript analyzed",
		"source", report.Source,
		"lines", report.Lines,
		"commands", len(commands),
		"invalid", len(report.Invalid()),
		"dropped", len(dropped),
		"root_size", sized.RootSize())
	return report, nil
}

func (ta *TranscriptAnalyzer) PrintDirectories(w io.Writer, dirs []SizedDir) {
	for _, dir := range dirs {
		fmt.Fprintln(w, "Name:", dir.Name)
		fmt.Fprintln(w, "Path:", dir.Path)
		fmt.Fprintln(w, "Size:", dir.GetFormattedSize(), fmt.Sprintf("(%d)", dir.Size))
		fmt.Fprintln(w, "-----")
	}
}

// PrintDiagnostics writes one line per invalid command or dropped listing
// entry, ordered by transcript line.
func (ta *TranscriptAnalyzer) PrintDiagnostics(w io.Writer, report *Report) {
	type diagnostic struct {
		line int
		text string
	}
	var diags []diagnostic
	for _, inv := range report.Invalid() {
		diags = append(diags, diagnostic{inv.Line, fmt.Sprintf("invalid command: %s: %q", inv.Reason, inv.Source)})
	}
	for _, d := range report.Dropped {
		diags = append(diags, diagnostic{d.Line, fmt.Sprintf("dropped listing entry: %q", d.Source)})
	}
	sort.SliceStable(diags, func(i, j int) bool { return diags[i].line < diags[j].line })

	for _, d := range diags {
		fmt.Fprintf(w, "%s:%d: %s\n", report.Source, d.line, d.text)
	}
}
