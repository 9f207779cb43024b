package exprtree

import "io"

// An Option to modify the behaviour of FromPostfix and FromInfix.
type Option func(p *parser) error

// Mapper function for mutating tokens before they are parsed.
type Mapper func(token string) (string, error)

// Map is an Option that configures the parser to apply a mapping function to each token.
//
// This can be useful to eg. normalise variable names or accept alternative operator symbols.
func Map(mappers ...Mapper) Option {
	return func(p *parser) error {
		for _, mapper := range mappers {
			next := p.mapper
			mapper := mapper
			p.mapper = func(token string) (string, error) {
				t, err := next(token)
				if err != nil {
					return t, err
				}
				return mapper(t)
			}
		}
		return nil
	}
}

// ClearMappers is an Option that resets all existing mappers.
func ClearMappers() Option {
	return func(p *parser) error {
		p.mapper = identityMapper
		return nil
	}
}

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return func(p *parser) error {
		p.trace = w
		return nil
	}
}
