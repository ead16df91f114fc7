package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wright/internal/diag"
	"wright/internal/source"
)

func frag(src *source.Source, start, end int) source.Fragment {
	return source.Fragment{Source: src, Start: start, End: end}
}

func TestPrettyASCII(t *testing.T) {
	src := source.FromString(source.TestName("t"), "use a::b\n")
	d := diag.NewError(diag.SynExpectSemicolon, frag(src, 8, 8), "import declaration must end with ';'").
		WithLabel("expected ';'").
		WithNote("add a semicolon")

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []diag.Diagnostic{d}, PrettyOpts{ASCII: true, ShowNotes: true}))

	want := "error[SYN2025]: import declaration must end with ';'\n" +
		" --> <t>:1:9\n" +
		"  |\n" +
		"1 | use a::b\n" +
		"  |         ^ expected ';'\n" +
		"  = add a semicolon\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("pretty output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettyContextGapsAndSecondary(t *testing.T) {
	text := "type A;\ntype B;\ntype C;\ntype D;\ntype E;\ntype F;\n"
	src := source.FromString(source.TestName("ctx"), text)
	d := diag.NewError(diag.SynExpectType, frag(src, 5, 6), "first").
		WithHighlight(frag(src, 45, 46), "second", false)

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []diag.Diagnostic{d}, PrettyOpts{ASCII: true, Context: 1}))
	out := buf.String()

	assert.Contains(t, out, "1 | type A;")
	assert.Contains(t, out, "2 | type B;")
	assert.NotContains(t, out, "type D;")
	assert.Contains(t, out, "  :\n")
	assert.Contains(t, out, "6 | type F;")
	assert.Contains(t, out, "  |      - second")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrettyUnicodeExpandsTabs(t *testing.T) {
	src := source.FromString(source.TestName("tab"), "\tconst Ж: u8 = 1")
	// "Ж" занимает два байта
	d := diag.NewError(diag.SynExpectColon, frag(src, 7, 9), "bad name")

	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []diag.Diagnostic{d}, PrettyOpts{TabWidth: 4}))
	out := buf.String()

	assert.Contains(t, out, "╭─▶ <tab>:1:8")
	assert.Contains(t, out, "1 │     const Ж: u8 = 1")
	assert.Contains(t, out, "  │           ━\n")
}

func TestPrettyWithoutLocation(t *testing.T) {
	d := diag.FromLoadError(&source.LoadError{Path: "x.wr", Op: "open", Err: source.ErrInvalidUTF8})
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []diag.Diagnostic{d}, PrettyOpts{ASCII: true}))
	assert.Equal(t, "error[IO3002]: open x.wr: file content is not valid UTF-8\n", buf.String())
}

func TestPrettyColor(t *testing.T) {
	src := source.FromString(source.TestName("c"), "x")
	d := diag.NewError(diag.LexUnknownChar, frag(src, 0, 1), "unknown")
	var buf bytes.Buffer
	require.NoError(t, Pretty(&buf, []diag.Diagnostic{d}, PrettyOpts{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestShort(t *testing.T) {
	src := source.FromString(source.TestName("s"), "a\nb")
	diags := []diag.Diagnostic{
		diag.New(diag.SevWarning, diag.LexUnknownChar, frag(src, 2, 3), "multi\nline"),
		{Severity: diag.SevError, Code: diag.IOLoadFileError, Message: "gone"},
	}
	var buf bytes.Buffer
	require.NoError(t, Short(&buf, diags, PrettyOpts{}))
	assert.Equal(t, "<s>:2:1: warning LEX1001: multi line\n<unknown>: error IO3001: gone\n", buf.String())
}

func TestFormatPathModes(t *testing.T) {
	name := source.RealPath("/home/user/project/src/test.wr")
	assert.Equal(t, "/home/user/project/src/test.wr", formatPath(name, PathModeAbsolute, ""))
	assert.Equal(t, "src/test.wr", formatPath(name, PathModeRelative, "/home/user/project"))
	assert.Equal(t, "test.wr", formatPath(name, PathModeBasename, ""))
	assert.Equal(t, "/home/user/project/src/test.wr", formatPath(name, PathModeAuto, "/elsewhere"))
	assert.Equal(t, "<mem>", formatPath(source.TestName("mem"), PathModeBasename, ""))

	mode, ok := ParsePathMode("basename")
	assert.True(t, ok)
	assert.Equal(t, PathModeBasename, mode)
	_, ok = ParsePathMode("weird")
	assert.False(t, ok)
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 4, displayWidth("\t", 4))
	assert.Equal(t, 5, displayWidth("ab\tc", 4))
	assert.Equal(t, 2, displayWidth("日", 4))
	assert.Equal(t, "ab  c", expandTabs("ab\tc", 4))
	assert.True(t, strings.HasPrefix(expandTabs("\tx", 2), "  x"))
}
