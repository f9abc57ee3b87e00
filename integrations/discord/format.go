package discord

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reImageLine = regexp.MustCompile(`^!\[[^\]]*\]\(([^)\s]+)\)$`)
	reTableRow  = regexp.MustCompile(`^\|.*\|$`)
	reTableRule = regexp.MustCompile(`^\|[\s\-:|]+\|$`)
)

// FormatMarkdown adapts standard Markdown to what Discord renders.
//
// Discord renders emphasis, code, quotes, lists, links and headings as-is.
// Two constructs are rewritten:
//   - tables become an aligned plain-text block inside a code fence
//   - a line holding only an image becomes the bare URL (Discord embeds it)
//
// Fenced code blocks are copied verbatim. The result is not truncated; see
// SplitMessage for the length limit.
func FormatMarkdown(md string) string {
	f := &mdFormatter{}
	for _, line := range strings.Split(strings.ReplaceAll(md, "\r\n", "\n"), "\n") {
		f.line(line)
	}
	f.flushTable()
	return strings.TrimRight(f.out.String(), "\n")
}

type mdFormatter struct {
	out    strings.Builder
	fenced bool
	table  [][]string
}

func (f *mdFormatter) line(line string) {
	if strings.HasPrefix(line, "```") {
		f.flushTable()
		f.fenced = !f.fenced
		f.emit(line)
		return
	}
	if f.fenced {
		f.emit(line)
		return
	}

	trimmed := strings.TrimSpace(line)
	if reTableRow.MatchString(trimmed) {
		if !reTableRule.MatchString(trimmed) {
			f.table = append(f.table, splitCells(trimmed))
		}
		return
	}
	f.flushTable()

	if m := reImageLine.FindStringSubmatch(trimmed); m != nil {
		f.emit(m[1])
		return
	}
	f.emit(line)
}

func (f *mdFormatter) emit(line string) {
	f.out.WriteString(line)
	f.out.WriteByte('\n')
}

func (f *mdFormatter) flushTable() {
	if len(f.table) == 0 {
		return
	}
	rows := f.table
	f.table = nil

	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	f.emit("```")
	for ri, row := range rows {
		cells := make([]string, cols)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
		}
		f.emit(strings.TrimRight(strings.Join(cells, " | "), " "))

		if ri == 0 && len(rows) > 1 {
			rule := make([]string, cols)
			for i, w := range widths {
				rule[i] = strings.Repeat("-", w)
			}
			f.emit(strings.Join(rule, "-+-"))
		}
	}
	f.emit("```")
}

func splitCells(row string) []string {
	row = strings.TrimSuffix(strings.TrimPrefix(row, "|"), "|")
	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
