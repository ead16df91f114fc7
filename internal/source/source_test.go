package source

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineStarts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"empty", "", nil},
		{"single line", "abc", []int{0}},
		{"trailing newline opens no line", "abc\n", []int{0}},
		{"lone newline", "\n", []int{0}},
		{"blank line in the middle", "a\n\nb\nc", []int{0, 2, 3, 5}},
		{"crlf", "a\r\nb", []int{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildLineStarts(tt.text))
		})
	}
}

func TestSourceIDsAreUniqueAcrossGoroutines(t *testing.T) {
	const workers = 12
	ids := make([]ID, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = FromString(NoName(), "").ID()
		}()
	}
	wg.Wait()

	seen := make(map[ID]struct{}, workers)
	for _, id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
}

func TestSourceLines(t *testing.T) {
	src := FromString(TestName("lines"), "a\n\nb\nc")

	require.Equal(t, 4, src.LineCount())
	assert.Equal(t, "a\n", src.Line(0).String())
	assert.Equal(t, "\n", src.Line(1).String())
	assert.Equal(t, "b\n", src.Line(2).String())
	assert.Equal(t, "c", src.Line(3).String())
	assert.Panics(t, func() { src.Line(4) })

	assert.Equal(t, LineCol{Line: 1, Column: 1}, src.Position(0))
	assert.Equal(t, LineCol{Line: 2, Column: 1}, src.Position(2))
	assert.Equal(t, LineCol{Line: 4, Column: 1}, src.Position(5))
	assert.Equal(t, "3:2", src.Position(4).String())
}

func TestSourceEmpty(t *testing.T) {
	src := FromStatic(NoName(), "")
	assert.Equal(t, 0, src.LineCount())
	assert.Equal(t, "", src.Fragment().String())
	assert.True(t, src.Fragment().IsEmpty())
	assert.NoError(t, src.Close())
}

func TestFileNameString(t *testing.T) {
	assert.Equal(t, "src/main.wr", RealPath("src/./main.wr").String())
	assert.Equal(t, "<repl>", TestName("repl").String())
	assert.Equal(t, "<unnamed>", NoName().String())
}

func TestSourceIdentity(t *testing.T) {
	a := FromString(NoName(), "same")
	b := FromString(NoName(), "same")
	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, a.Fragment().Equal(b.Fragment()))
	assert.True(t, a.Fragment().Equal(a.Fragment()))
}

func TestFromReader(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"plain utf8", []byte("let x"), "let x"},
		{"utf8 bom", []byte("\xef\xbb\xbfuse a;"), "use a;"},
		{"utf16le bom", []byte{0xff, 0xfe, 'h', 0, 'i', 0}, "hi"},
		{"utf16be bom", []byte{0xfe, 0xff, 0, 'o', 0, 'k'}, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := FromReader(NoName(), bytes.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.Text())
			assert.False(t, src.IsLocked())
		})
	}
}
