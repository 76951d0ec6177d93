package lexer

import (
	"testing"

	"github.com/joaomoura/pvmc/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `program s; var a,b:integer;
	begin a:=3; b:=a+4*2; writeln(b) end.`

	tests := []struct {
		literal string
		kind    token.Kind
	}{
		{"program", token.PROGRAM},
		{"s", token.IDENT},
		{";", token.SEMICOLON},
		{"var", token.VAR},
		{"a", token.IDENT},
		{",", token.COMMA},
		{"b", token.IDENT},
		{":", token.COLON},
		{"integer", token.INTEGER},
		{";", token.SEMICOLON},
		{"begin", token.BEGIN},
		{"a", token.IDENT},
		{":=", token.ASSIGN},
		{"3", token.NUMBER},
		{";", token.SEMICOLON},
		{"b", token.IDENT},
		{":=", token.ASSIGN},
		{"a", token.IDENT},
		{"+", token.PLUS},
		{"4", token.NUMBER},
		{"*", token.TIMES},
		{"2", token.NUMBER},
		{";", token.SEMICOLON},
		{"writeln", token.WRITELN},
		{"(", token.LPAREN},
		{"b", token.IDENT},
		{")", token.RPAREN},
		{"end", token.END},
		{".", token.DOT},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - kind wrong. expected=%s, got=%s (literal=%q)", i, tt.kind, tok.Kind, tok.Literal)
		}
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal)
		}
	}
}

func TestCaseInsensitiveKeywords(t *testing.T) {
	input := "PROGRAM Begin END While DoWnTo"
	expected := []token.Kind{token.PROGRAM, token.BEGIN, token.END, token.WHILE, token.DOWNTO, token.EOF}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Kind != want {
			t.Fatalf("tokens[%d]: expected %s, got %s", i, want, tok.Kind)
		}
	}
}

func TestDowntoDoesNotSplitOnDo(t *testing.T) {
	l := New("downto do")
	if tok := l.NextToken(); tok.Kind != token.DOWNTO {
		t.Fatalf("expected DOWNTO, got %s", tok.Kind)
	}
	if tok := l.NextToken(); tok.Kind != token.DO {
		t.Fatalf("expected DO, got %s", tok.Kind)
	}
}

func TestStringLiteralPreservesCase(t *testing.T) {
	l := New(`'Hello, World!'`)
	tok := l.NextToken()
	if tok.Kind != token.STRING_LITERAL {
		t.Fatalf("expected STRING_LITERAL, got %s", tok.Kind)
	}
	if tok.Literal != "Hello, World!" {
		t.Fatalf("expected %q, got %q", "Hello, World!", tok.Literal)
	}
}

func TestStringLiteralEscapedQuote(t *testing.T) {
	l := New(`'it\'s fine'`)
	tok := l.NextToken()
	if tok.Literal != "it's fine" {
		t.Fatalf("expected %q, got %q", "it's fine", tok.Literal)
	}
}

func TestComments(t *testing.T) {
	l := New("{ a brace comment } var (* a paren comment *) x")
	if tok := l.NextToken(); tok.Kind != token.VAR {
		t.Fatalf("expected VAR, got %s", tok.Kind)
	}
	if tok := l.NextToken(); tok.Kind != token.IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT(x), got %s(%q)", tok.Kind, tok.Literal)
	}
}

func TestLineTrackingAcrossNewlines(t *testing.T) {
	l := New("var\nx\n:=\n1")
	l.NextToken() // var
	tok := l.NextToken() // x
	if tok.Pos.Line != 2 {
		t.Fatalf("expected line 2, got %d", tok.Pos.Line)
	}
	tok = l.NextToken() // :=
	if tok.Pos.Line != 3 {
		t.Fatalf("expected line 3, got %d", tok.Pos.Line)
	}
}

func TestIllegalCharacterResumesLexing(t *testing.T) {
	l := New("var x @ := 1;")
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
	foundAssign := false
	for _, k := range kinds {
		if k == token.ASSIGN {
			foundAssign = true
		}
	}
	if !foundAssign {
		t.Fatalf("lexer did not resume after illegal character: %v", kinds)
	}
}

func TestMultiCharOperators(t *testing.T) {
	input := ":= <> <= >= .."
	expected := []token.Kind{token.ASSIGN, token.NE, token.LE, token.GE, token.DOTDOT, token.EOF}
	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Kind != want {
			t.Fatalf("tokens[%d]: expected %s, got %s", i, want, tok.Kind)
		}
	}
}
