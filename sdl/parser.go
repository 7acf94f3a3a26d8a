package sdl

import "fmt"

// ParseError reports a syntax error encountered while parsing.
type ParseError struct {
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Msg)
}

// Parse tokenizes and parses source into a raw File. It returns the first
// lexical or syntax error encountered; per spec.md §1 the parser is an
// external collaborator and is not expected to recover from errors or
// accumulate diagnostics the way the semantic analyzer does.
func Parse(source string) (*File, error) {
	p := &parser{lex: NewLexer(source)}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p.parseFile()
}

type parser struct {
	lex *Lexer
	tok Token
}

func (p *parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, &ParseError{Span: p.tok.Span, Msg: fmt.Sprintf("expected %s, got %q", what, p.tok.Lit)}
	}
	tok := p.tok
	if err := p.next(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (p *parser) expectIdent(lit string) error {
	if p.tok.Kind != TokIdent || p.tok.Lit != lit {
		return &ParseError{Span: p.tok.Span, Msg: fmt.Sprintf("expected %q, got %q", lit, p.tok.Lit)}
	}
	return p.next()
}

func (p *parser) parseFile() (*File, error) {
	f := &File{}
	for p.tok.Kind != TokEOF {
		if p.tok.Kind != TokIdent {
			return nil, &ParseError{Span: p.tok.Span, Msg: fmt.Sprintf("expected top-level declaration, got %q", p.tok.Lit)}
		}
		var decl Decl
		var err error
		switch p.tok.Lit {
		case "config":
			decl, err = p.parseConfig()
		case "model":
			decl, err = p.parseModel()
		case "enum":
			decl, err = p.parseEnum()
		default:
			return nil, &ParseError{Span: p.tok.Span, Msg: fmt.Sprintf("unknown top-level keyword %q", p.tok.Lit)}
		}
		if err != nil {
			return nil, err
		}
		f.Decls = append(f.Decls, decl)
	}
	return f, nil
}

func (p *parser) parseConfig() (*ConfigDecl, error) {
	start := p.tok.Span
	if err := p.next(); err != nil { // consume `config`
		return nil, err
	}
	name, err := p.expect(TokIdent, "config name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokLBrace, "'{'"); err != nil {
		return nil, err
	}
	d := &ConfigDecl{Name: name.Lit}
	for p.tok.Kind != TokRBrace {
		prop, err := p.parseProp()
		if err != nil {
			return nil, err
		}
		d.Props = append(d.Props, prop)
	}
	end := p.tok.Span
	if _, err := p.expect(TokRBrace, "'}'"); err != nil {
		return nil, err
	}
	d.Span = start.Join(end)
	return d, nil
}

func (p *parser) parseProp() (Prop, error) {
	key, err := p.expect(TokIdent, "property name")
	if err != nil {
		return Prop{}, err
	}
	if _, err := p.expect(TokEquals, "'='"); err != nil {
		return Prop{}, err
	}
	val, err := p.parseValue()
	if err != nil {
		return Prop{}, err
	}
	return Prop{Key: key.Lit, Value: val, Span: key.Span.Join(val.valueSpan())}, nil
}

func (p *parser) parseModel() (*ModelDecl, error) {
	start := p.tok.Span
	if err := p.next(); err != nil { // consume `model`
		return nil, err
	}
	name, err := p.expect(TokIdent, "model name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokLBrace, "'{'"); err != nil {
		return nil, err
	}
	d := &ModelDecl{Name: name.Lit}
	for p.tok.Kind != TokRBrace {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		d.Fields = append(d.Fields, field)
	}
	end := p.tok.Span
	if _, err := p.expect(TokRBrace, "'}'"); err != nil {
		return nil, err
	}
	d.Span = start.Join(end)
	return d, nil
}

func (p *parser) parseField() (*FieldDecl, error) {
	name, err := p.expect(TokIdent, "field name")
	if err != nil {
		return nil, err
	}
	typ, err := p.parseTypeRef()
	if err != nil {
		return nil, err
	}
	f := &FieldDecl{Name: name.Lit, Type: typ, Span: name.Span.Join(typ.Span)}
	for p.tok.Kind == TokAt {
		attr, err := p.parseAttr()
		if err != nil {
			return nil, err
		}
		f.Attrs = append(f.Attrs, attr)
		f.Span = f.Span.Join(attr.Span)
	}
	return f, nil
}

func (p *parser) parseTypeRef() (TypeRef, error) {
	name, err := p.expect(TokIdent, "type name")
	if err != nil {
		return TypeRef{}, err
	}
	tr := TypeRef{Name: name.Lit, Span: name.Span}
	switch p.tok.Kind {
	case TokQuestion:
		tr.Optional = true
		tr.Span = tr.Span.Join(p.tok.Span)
		if err := p.next(); err != nil {
			return TypeRef{}, err
		}
	case TokLBracket:
		lb := p.tok.Span
		if err := p.next(); err != nil {
			return TypeRef{}, err
		}
		rb, err := p.expect(TokRBracket, "']'")
		if err != nil {
			return TypeRef{}, err
		}
		_ = lb
		tr.Array = true
		tr.Span = tr.Span.Join(rb.Span)
	}
	return tr, nil
}

func (p *parser) parseAttr() (*AttrDecl, error) {
	at := p.tok.Span
	if err := p.next(); err != nil { // consume '@'
		return nil, err
	}
	name, err := p.expect(TokIdent, "attribute name")
	if err != nil {
		return nil, err
	}
	a := &AttrDecl{Name: name.Lit, Span: at.Join(name.Span)}
	if p.tok.Kind == TokLParen {
		if err := p.next(); err != nil {
			return nil, err
		}
		for p.tok.Kind != TokRParen {
			arg, err := p.parseArg()
			if err != nil {
				return nil, err
			}
			a.Args = append(a.Args, arg)
			a.Span = a.Span.Join(arg.Span)
			if p.tok.Kind == TokComma {
				if err := p.next(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		rp, err := p.expect(TokRParen, "')'")
		if err != nil {
			return nil, err
		}
		a.Span = a.Span.Join(rp.Span)
	}
	return a, nil
}

// parseArg parses one attribute/call argument: either `name: value` or a
// bare positional value.
func (p *parser) parseArg() (Arg, error) {
	if p.tok.Kind == TokIdent {
		// Lookahead: `ident :` is a keyword argument; anything else means
		// the identifier itself is a positional (Ident or Call) value.
		save := *p.lex
		saveTok := p.tok
		name := p.tok
		if err := p.next(); err != nil {
			return Arg{}, err
		}
		if p.tok.Kind == TokColon {
			if err := p.next(); err != nil {
				return Arg{}, err
			}
			val, err := p.parseValue()
			if err != nil {
				return Arg{}, err
			}
			return Arg{Name: name.Lit, Value: val, Span: name.Span.Join(val.valueSpan())}, nil
		}
		// Not a keyword arg: rewind and parse as a positional value.
		*p.lex = save
		p.tok = saveTok
	}
	val, err := p.parseValue()
	if err != nil {
		return Arg{}, err
	}
	return Arg{Value: val, Span: val.valueSpan()}, nil
}

func (p *parser) parseValue() (Value, error) {
	switch p.tok.Kind {
	case TokString:
		tok := p.tok
		if err := p.next(); err != nil {
			return nil, err
		}
		return LiteralValue{Kind: LitString, Str: tok.Lit, Span: tok.Span}, nil
	case TokInt:
		tok := p.tok
		n, err := parseIntLiteral(tok.Lit)
		if err != nil {
			return nil, &ParseError{Span: tok.Span, Msg: fmt.Sprintf("invalid integer literal %q", tok.Lit)}
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return LiteralValue{Kind: LitInt, Int: n, Span: tok.Span}, nil
	case TokFloat:
		tok := p.tok
		f, err := parseFloatLiteral(tok.Lit)
		if err != nil {
			return nil, &ParseError{Span: tok.Span, Msg: fmt.Sprintf("invalid float literal %q", tok.Lit)}
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return LiteralValue{Kind: LitFloat, Flt: f, Span: tok.Span}, nil
	case TokIdent:
		tok := p.tok
		if tok.Lit == "true" || tok.Lit == "false" {
			if err := p.next(); err != nil {
				return nil, err
			}
			return LiteralValue{Kind: LitBool, Bool: tok.Lit == "true", Span: tok.Span}, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.tok.Kind == TokLParen {
			if err := p.next(); err != nil {
				return nil, err
			}
			call := &CallValue{Name: tok.Lit, Span: tok.Span}
			for p.tok.Kind != TokRParen {
				arg, err := p.parseArg()
				if err != nil {
					return nil, err
				}
				call.Args = append(call.Args, arg)
				if p.tok.Kind == TokComma {
					if err := p.next(); err != nil {
						return nil, err
					}
					continue
				}
				break
			}
			rp, err := p.expect(TokRParen, "')'")
			if err != nil {
				return nil, err
			}
			call.Span = call.Span.Join(rp.Span)
			return *call, nil
		}
		return IdentValue{Name: tok.Lit, Span: tok.Span}, nil
	default:
		return nil, &ParseError{Span: p.tok.Span, Msg: fmt.Sprintf("expected a value, got %q", p.tok.Lit)}
	}
}

func (p *parser) parseEnum() (*EnumDecl, error) {
	start := p.tok.Span
	if err := p.next(); err != nil { // consume `enum`
		return nil, err
	}
	name, err := p.expect(TokIdent, "enum name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokLBrace, "'{'"); err != nil {
		return nil, err
	}
	d := &EnumDecl{Name: name.Lit}
	for p.tok.Kind != TokRBrace {
		v, err := p.expect(TokIdent, "enum variant")
		if err != nil {
			return nil, err
		}
		d.Variants = append(d.Variants, &EnumVariantDecl{Name: v.Lit, Span: v.Span})
	}
	end := p.tok.Span
	if _, err := p.expect(TokRBrace, "'}'"); err != nil {
		return nil, err
	}
	d.Span = start.Join(end)
	return d, nil
}
