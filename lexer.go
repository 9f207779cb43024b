package exprtree

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits expression text into tokens suitable for FromInfix and FromPostfix.
//
// Integers are unsigned, as there is no unary minus.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Operator", Pattern: `[-+*/]`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Tokenize splits text into tokens, eg. "(a+3)*b" into ["(", "a", "+", "3", ")", "*", "b"].
func Tokenize(text string) ([]string, error) {
	lex, err := Lexer.LexString("", text)
	if err != nil {
		return nil, err
	}
	whitespace := Lexer.Symbols()["Whitespace"]
	tokens := []string{}
	for {
		token, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if token.EOF() {
			return tokens, nil
		}
		if token.Type == whitespace {
			continue
		}
		tokens = append(tokens, token.Value)
	}
}
