package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var languageSeeds = []string{
	"",
	"use std::io;\n",
	"pub use a::b::c as d;\n",
	"type Opaque;\ntype R = @u8;\ntype G = Vec<u8, @Map<K, V>>;\n",
	"const X: u8 = 1 + 2 * 3 - -4;\n",
	"pub const S: str = \"tab\\t\\u{1F600}\\x41\";\n",
	"const C: char = '\\n';\n",
	"const F: bool = true && !false || a::b == 0x_FF;\n",
	"const R: u64 = (1 << 3) >> 1 .. 0b1010;\n",
	"/* unterminated",
	"/** doc */ //! inner\nconst A: u8 = 0;",
	"\"open string",
	"'x",
	"`format {x}`",
	"use ;\nconst = ;\ntype <> ;",
	"\u00e9t\u00e9 \u2028 \u00a0 $ \U0001F600",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.wr файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".wr" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(src []byte, limit int) []byte {
	if len(src) <= limit {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:limit]...)
}
