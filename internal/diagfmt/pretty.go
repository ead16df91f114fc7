package diagfmt

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"

	"wright/internal/diag"
	"wright/internal/source"
)

type glyphs struct {
	arrow     string
	gutter    string
	gap       string
	primary   string
	secondary string
	note      string
}

var (
	unicodeGlyphs = glyphs{arrow: "╭─▶", gutter: "│", gap: "┆", primary: "━", secondary: "─", note: "•"}
	asciiGlyphs   = glyphs{arrow: "-->", gutter: "|", gap: ":", primary: "^", secondary: "-", note: "="}
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	gutter *color.Color
	label  *color.Color
	plain  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevHelp:    color.New(color.FgCyan, color.Bold),
			diag.SevNote:    color.New(color.FgGreen, color.Bold),
			diag.SevInfo:    color.New(color.FgBlue, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevBug:     color.New(color.FgMagenta, color.Bold),
		},
		gutter: color.New(color.FgBlue),
		label:  color.New(color.Bold),
		plain:  color.New(),
	}
	all := []*color.Color{p.gutter, p.label, p.plain}
	for _, c := range p.sev {
		all = append(all, c)
	}
	// fatih/color сам отключает цвет вне терминала; опция важнее
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	if c, ok := p.sev[s]; ok {
		return c
	}
	return p.plain
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Ожидается, что диагностики уже отсортированы (bag.Sort()).
// Для каждой печатает:
//
//	error[SYN2025]: <Message>
//	 ╭─▶ <path>:<line>:<col>
//	  │
//	1 │ <строка>
//	  │ ━━━ <label>
//	  • <note>
func Pretty(w io.Writer, diags []diag.Diagnostic, opts PrettyOpts) error {
	r := prettyRenderer{
		w:    w,
		opts: opts,
		g:    unicodeGlyphs,
		pal:  newPalette(opts.Color),
	}
	if opts.ASCII {
		r.g = asciiGlyphs
	}
	if r.opts.TabWidth <= 0 {
		r.opts.TabWidth = 4
	}
	for i := range diags {
		if i > 0 {
			r.printf("\n")
		}
		r.diagnostic(&diags[i])
	}
	return r.err
}

type prettyRenderer struct {
	w    io.Writer
	opts PrettyOpts
	g    glyphs
	pal  palette
	err  error
}

func (r *prettyRenderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *prettyRenderer) diagnostic(d *diag.Diagnostic) {
	sevColor := r.pal.severity(d.Severity)
	r.printf("%s%s %s\n",
		sevColor.Sprintf("%s[%s]", d.Severity, d.Code.ID()),
		sevColor.Sprint(":"),
		r.pal.label.Sprint(d.Message))

	primary, ok := d.Primary()
	if !ok || primary.Source == nil {
		r.notes(d, 1)
		return
	}

	lines := r.snippetLines(d)
	width := len(strconv.Itoa(lastLine(lines) + 1))
	pad := strings.Repeat(" ", width)

	pos := primary.Position()
	r.printf("%s%s %s:%d:%d\n", pad, r.pal.gutter.Sprint(r.g.arrow),
		fragmentPath(primary, r.opts.PathMode, r.opts.BaseDir), pos.Line, pos.Column)
	if len(lines) == 0 {
		r.notes(d, width)
		return
	}
	r.printf("%s %s\n", pad, r.pal.gutter.Sprint(r.g.gutter))

	for i, line := range lines {
		if i > 0 && line != lines[i-1]+1 {
			r.printf("%s %s\n", pad, r.pal.gutter.Sprint(r.g.gap))
		}
		r.sourceLine(d, primary.Source, line, width)
	}
	r.notes(d, width)
}

// snippetLines возвращает отсортированные индексы строк: подсвеченные плюс контекст.
func (r *prettyRenderer) snippetLines(d *diag.Diagnostic) []int {
	primary, _ := d.Primary()
	src := primary.Source
	count := src.LineCount()
	if count == 0 {
		return nil
	}
	var lines []int
	for _, h := range d.Highlights {
		if h.Fragment.Source != src {
			continue
		}
		start, end := h.Fragment.LineIndices()
		for l := max(0, start-r.opts.Context); l < min(count, end+r.opts.Context); l++ {
			lines = append(lines, l)
		}
	}
	slices.Sort(lines)
	return slices.Compact(lines)
}

func lastLine(lines []int) int {
	if len(lines) == 0 {
		return 0
	}
	return lines[len(lines)-1]
}

func (r *prettyRenderer) sourceLine(d *diag.Diagnostic, src *source.Source, idx, width int) {
	line := src.Line(idx)
	text := strings.TrimRight(line.String(), "\r\n")
	r.printf("%s %s %s\n",
		r.pal.gutter.Sprintf("%*d", width, idx+1),
		r.pal.gutter.Sprint(r.g.gutter),
		expandTabs(text, r.opts.TabWidth))

	for _, h := range d.Highlights {
		if h.Fragment.Source != src {
			continue
		}
		start, end := h.Fragment.LineIndices()
		if idx < start || idx >= end {
			continue
		}
		// позиция за концом строки рисуется сразу после текста
		from := min(max(h.Fragment.Start, line.Start)-line.Start, len(text))
		to := min(h.Fragment.End, line.Start+len(text)) - line.Start
		to = max(to, from)
		col := displayWidth(text[:from], r.opts.TabWidth)
		n := max(1, displayWidth(text[:to], r.opts.TabWidth)-col)

		mark := r.g.secondary
		c := r.pal.gutter
		if h.Primary {
			mark = r.g.primary
			c = r.pal.severity(d.Severity)
		}
		underline := strings.Repeat(" ", col) + c.Sprint(strings.Repeat(mark, n))
		// подпись только на последней строке многострочной подсветки
		if h.Message != "" && idx == end-1 {
			underline += " " + c.Sprint(h.Message)
		}
		r.printf("%s %s %s\n", strings.Repeat(" ", width), r.pal.gutter.Sprint(r.g.gutter), underline)
	}
}

func (r *prettyRenderer) notes(d *diag.Diagnostic, width int) {
	if !r.opts.ShowNotes {
		return
	}
	pad := strings.Repeat(" ", width)
	for _, n := range d.Notes {
		r.printf("%s %s %s\n", pad, r.pal.gutter.Sprint(r.g.note), n)
	}
}

// displayWidth считает ширину в терминальных колонках по графемам, табы до кратного tab.
func displayWidth(s string, tab int) int {
	w := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if g.Str() == "\t" {
			w += tab - w%tab
			continue
		}
		w += g.Width()
	}
	return w
}

func expandTabs(s string, tab int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if g.Str() == "\t" {
			n := tab - col%tab
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteString(g.Str())
		col += g.Width()
	}
	return b.String()
}
