package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wright/internal/ast"
)

func TestParseImportDecl(t *testing.T) {
	tests := []struct {
		name  string
		input string
		alias string
	}{
		{"plain", "use wright::util;", ""},
		{"spaced", "use wright :: util ;", ""},
		{"as", "use wright::util as u;", "u"},
		{"as with comment", "use wright::util as /* old_name */ u;", "u"},
		{"comment before as", "use wright::util /* as old_name */ as u;", "u"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTest(tt.input)
			decl, err := p.ParseImportDecl()
			require.NoError(t, err)
			assert.True(t, p.AtEOF())
			assert.Equal(t, "wright", decl.Item.Head.Fragment.String())
			assert.Equal(t, "util", decl.Item.Tail[0].Fragment.String())
			assert.Equal(t, tt.input, decl.Fragment.String())
			assert.Equal(t, ast.VisPrivate, decl.Vis)
			if tt.alias == "" {
				assert.Nil(t, decl.As)
			} else {
				require.NotNil(t, decl.As)
				assert.Equal(t, tt.alias, decl.As.Name())
			}
		})
	}
}

func TestParsePublicImport(t *testing.T) {
	p := NewTest("pub use a::b;")
	decl, err := p.ParseImportDecl()
	require.NoError(t, err)
	assert.Equal(t, ast.VisPublic, decl.Vis)
	assert.Equal(t, "pub use a::b;", decl.Fragment.String())
}

func TestParseImportDeclErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		kind      ErrorKind
		location  string
		remaining int
	}{
		{"not an import", "type X;", ExpectedImportDeclaration, "type", 7},
		{"pub without use", "pub type X;", ExpectedImportDeclaration, "pub", 11},
		{"pub glued", "pubuse a;", ExpectedImportDeclaration, "pubuse", 9},
		{"no whitespace", "use;", ExpectedWhitespace, ";", 1},
		{"no semicolon", "use a::b", ImportMustEndWithSemicolon, "", 0},
		{"dangling separator", "use a::;", ImportMustEndWithSemicolon, "::", 3},
		{"as without binding", "use a as ;", ExpectedIdentifier, ";", 1},
		{"as glued", "use a as;", ExpectedWhitespace, ";", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewTest(tt.input)
			_, err := p.ParseImportDecl()
			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.location, pe.Location.String())
			assert.Equal(t, tt.remaining, p.BytesRemaining())
		})
	}
}

func TestParseTypeAlias(t *testing.T) {
	p := NewTest("pub type Bytes = Vec<u8>;")
	decl, err := p.ParseTypeAlias()
	require.NoError(t, err)
	assert.Equal(t, ast.VisPublic, decl.Vis)
	assert.Equal(t, "Bytes", decl.Name.Name())
	assert.False(t, decl.IsAbstract())
	assert.Equal(t, "Vec<u8>", ast.MatchingSource(decl.Target))

	p = NewTest("type Opaque ;")
	decl, err = p.ParseTypeAlias()
	require.NoError(t, err)
	assert.True(t, decl.IsAbstract())
	assert.Equal(t, "type Opaque ;", decl.Fragment.String())

	p = NewTest("type R=@u8;")
	decl, err = p.ParseTypeAlias()
	require.NoError(t, err)
	_, ok := ast.DowncastReference(decl.Target)
	assert.True(t, ok)
}

func TestParseTypeAliasErrors(t *testing.T) {
	tests := []struct {
		input    string
		kind     ErrorKind
		location string
	}{
		{"type = u8;", ExpectedIdentifier, "="},
		{"type X = ;", ExpectedTypeSignature, ";"},
		{"type X = u8", TypeAliasMustEndWithSemicolon, ""},
		{"type X u8;", TypeAliasMustEndWithSemicolon, "u8"},
		{"use x;", ExpectedTypeAliasDeclaration, "use"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := NewTest(tt.input)
			_, err := p.ParseTypeAlias()
			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.location, pe.Location.String())
		})
	}
}

func TestParseConstDecl(t *testing.T) {
	p := NewTest("const MAX: u64 = 0xFF * 2;")
	decl, err := p.ParseConstDecl()
	require.NoError(t, err)
	assert.Equal(t, "MAX", decl.Name.Name())
	atomic, ok := ast.DowncastAtomic(decl.Ty)
	require.True(t, ok)
	assert.Equal(t, ast.AtomicU64, atomic.Variant)
	assert.Equal(t, "(* 255 2)", sexpr(decl.Value))
	assert.Equal(t, "const MAX: u64 = 0xFF * 2;", decl.Fragment.String())

	p = NewTest("pub const GREETING : @Str = \"hi\" ;")
	decl, err = p.ParseConstDecl()
	require.NoError(t, err)
	assert.Equal(t, ast.VisPublic, decl.Vis)
	assert.Equal(t, `"hi"`, sexpr(decl.Value))
}

func TestParseConstDeclErrors(t *testing.T) {
	tests := []struct {
		input    string
		kind     ErrorKind
		location string
	}{
		{"const X = 1;", ExpectedConstTypeAnnotation, "="},
		{"const X: u8;", ExpectedConstInitializer, ";"},
		{"const X: u8 = ;", ExpectedExpression, ";"},
		{"const X: u8 = 1", ConstMustEndWithSemicolon, ""},
		{"const X: = 1;", ExpectedTypeSignature, "="},
		{"const: u8 = 1;", ExpectedWhitespace, ":"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := NewTest(tt.input)
			_, err := p.ParseConstDecl()
			var pe *Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.location, pe.Location.String())
		})
	}
}

func TestParseDeclDispatch(t *testing.T) {
	tests := map[string]string{
		"use a;":               "ImportDecl",
		"pub use a;":           "ImportDecl",
		"type T;":              "TypeAlias",
		"pub  type T = u8;":    "TypeAlias",
		"const C: u8 = 1;":     "ConstDecl",
		"pub const C: u8 = 1;": "ConstDecl",
	}
	for input, kind := range tests {
		p := NewTest(input)
		decl, err := p.ParseDecl()
		require.NoError(t, err, input)
		assert.Equal(t, kind, decl.NodeKind(), input)
	}

	p := NewTest("let x = 1;")
	decl, err := p.ParseDecl()
	assert.Nil(t, decl)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ExpectedDeclaration, pe.Kind)
	assert.Equal(t, "let", pe.Location.String())
}
