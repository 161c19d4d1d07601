package pvl

import (
	"fmt"
	"os"
	"strings"
)

// ParseFile reads and parses the label at path.
func ParseFile(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label %s: %w", path, err)
	}

	return doc, nil
}

// Parse parses PVL text into a root container.
func Parse(data []byte) (*Object, error) {
	return ParseString(string(data))
}

// ParseString parses PVL text into a root container.
func ParseString(s string) (*Object, error) {
	p := &parser{lex: newLexer(s)}
	if err := p.next(); err != nil {
		return nil, err
	}

	root := NewDocument()
	if err := p.parseBlock(root); err != nil {
		return nil, err
	}

	return root, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) next() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}

	p.tok = tok

	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Line: p.tok.line, Msg: fmt.Sprintf(format, args...)}
}

func blockKind(word string) (Kind, bool) {
	switch strings.ToLower(word) {
	case "object", "begin_object":
		return KindObject, true
	case "group", "begin_group":
		return KindGroup, true
	default:
		return KindRoot, false
	}
}

func endKind(word string) (Kind, bool) {
	switch strings.ToLower(word) {
	case "end_object":
		return KindObject, true
	case "end_group":
		return KindGroup, true
	default:
		return KindRoot, false
	}
}

// parseBlock reads statements into obj until its terminator.
func (p *parser) parseBlock(obj *Object) error {
	for {
		switch p.tok.kind {
		case tokEOF:
			if obj.Kind == KindRoot {
				return nil
			}

			return p.errorf("missing End_%s for %q", obj.Kind, obj.Name)
		case tokWord:
		default:
			return p.errorf("unexpected %q, expected a keyword", p.tok.text)
		}

		word := p.tok.text

		if strings.EqualFold(word, "End") {
			if obj.Kind != KindRoot {
				return p.errorf("End inside %s %q", obj.Kind, obj.Name)
			}

			return nil
		}

		if kind, ok := endKind(word); ok {
			if kind != obj.Kind {
				return p.errorf("%s does not close %s %q", word, obj.Kind, obj.Name)
			}

			if err := p.next(); err != nil {
				return err
			}

			// Tolerate "End_Group = Name".
			if p.tok.kind == tokEquals {
				if err := p.next(); err != nil {
					return err
				}

				if err := p.next(); err != nil {
					return err
				}
			}

			return nil
		}

		if kind, ok := blockKind(word); ok {
			if err := p.parseChild(obj, kind, word); err != nil {
				return err
			}

			continue
		}

		if err := p.parseKeyword(obj, word); err != nil {
			return err
		}
	}
}

func (p *parser) parseChild(obj *Object, kind Kind, word string) error {
	line := p.tok.line

	if err := p.next(); err != nil {
		return err
	}

	if p.tok.kind != tokEquals {
		return p.errorf("expected '=' after %s", word)
	}

	if err := p.next(); err != nil {
		return err
	}

	if p.tok.kind != tokWord && p.tok.kind != tokString {
		return p.errorf("expected a name after %s =", word)
	}

	child := obj.AddChild(kind, p.tok.text)
	child.Line = line

	if err := p.next(); err != nil {
		return err
	}

	return p.parseBlock(child)
}

func (p *parser) parseKeyword(obj *Object, name string) error {
	kw := &Keyword{Name: name}
	obj.AddKeyword(kw)

	if err := p.next(); err != nil {
		return err
	}

	if p.tok.kind != tokEquals {
		return nil
	}

	if err := p.next(); err != nil {
		return err
	}

	values, err := p.parseValues(name)
	if err != nil {
		return err
	}

	kw.Values = values

	return nil
}

func (p *parser) parseValues(name string) ([]Value, error) {
	switch p.tok.kind {
	case tokOpen:
		values, err := p.parseList()
		if err != nil {
			return nil, err
		}

		if p.tok.kind == tokUnit {
			for i := range values {
				if values[i].Unit == "" {
					values[i].Unit = p.tok.text
				}
			}

			if err := p.next(); err != nil {
				return nil, err
			}
		}

		return values, nil
	case tokWord, tokString:
		v, err := p.parseScalar()
		if err != nil {
			return nil, err
		}

		return []Value{v}, nil
	default:
		return nil, p.errorf("missing value for keyword %q", name)
	}
}

func (p *parser) parseScalar() (Value, error) {
	v := Value{Text: p.tok.text, Quoted: p.tok.kind == tokString}

	if err := p.next(); err != nil {
		return Value{}, err
	}

	if p.tok.kind == tokUnit {
		v.Unit = p.tok.text

		if err := p.next(); err != nil {
			return Value{}, err
		}
	}

	return v, nil
}

// parseList reads a parenthesised or braced list; nested lists are flattened.
func (p *parser) parseList() ([]Value, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	var values []Value

	for {
		switch p.tok.kind {
		case tokClose:
			return values, p.next()
		case tokOpen:
			inner, err := p.parseList()
			if err != nil {
				return nil, err
			}

			values = append(values, inner...)
		case tokWord, tokString:
			v, err := p.parseScalar()
			if err != nil {
				return nil, err
			}

			values = append(values, v)
		default:
			return nil, p.errorf("unexpected %q in list", p.tok.text)
		}

		switch p.tok.kind {
		case tokComma:
			if err := p.next(); err != nil {
				return nil, err
			}
		case tokClose:
		default:
			return nil, p.errorf("expected ',' or ')' in list, got %q", p.tok.text)
		}
	}
}
