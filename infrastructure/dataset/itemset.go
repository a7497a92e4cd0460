package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Construtores aceitos na frente de um literal, ex: frozenset({'Bread'})
var itemSetConstructors = map[string]struct{}{
	"frozenset": {},
	"set":       {},
	"list":      {},
	"tuple":     {},
}

var closingBracket = map[byte]byte{
	'[': ']',
	'(': ')',
	'{': '}',
}

// ParseItemSet decodifica o literal de coleção gravado pela mineração de regras
// (lista, tupla, set ou frozenset de strings) e devolve os itens na ordem do literal.
// Qualquer entrada fora dessa gramática é rejeitada com ErrMalformedItemSet.
func ParseItemSet(raw string) ([]string, error) {
	p := &itemSetParser{src: raw}

	p.skipSpaces()
	if p.done() {
		return nil, errors.Wrap(ErrMalformedItemSet, "campo vazio")
	}

	items, err := p.parseCollection()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if !p.done() {
		return nil, p.fail("conteúdo inesperado após o literal")
	}

	return items, nil
}

// FormatItemSet junta os itens no formato de exibição ("Bread, Coffee")
func FormatItemSet(items []string) string {
	return strings.Join(items, ", ")
}

// ItemSetLiteral grava os itens como lista entre aspas simples, no formato lido por ParseItemSet
func ItemSetLiteral(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('\'')
		for j := 0; j < len(item); j++ {
			switch c := item[j]; c {
			case '\'', '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\n':
				b.WriteString(`\n`)
			case '\t':
				b.WriteString(`\t`)
			case '\r':
				b.WriteString(`\r`)
			default:
				b.WriteByte(c)
			}
		}
		b.WriteByte('\'')
	}
	b.WriteByte(']')
	return b.String()
}

// DecodeItemSet devolve os itens e o rótulo de exibição de um literal
func DecodeItemSet(raw string) ([]string, string, error) {
	items, err := ParseItemSet(raw)
	if err != nil {
		return nil, "", err
	}

	return items, FormatItemSet(items), nil
}

type itemSetParser struct {
	src string
	pos int
}

func (p *itemSetParser) done() bool {
	return p.pos >= len(p.src)
}

func (p *itemSetParser) peek() byte {
	return p.src[p.pos]
}

func (p *itemSetParser) skipSpaces() {
	for !p.done() {
		switch p.peek() {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *itemSetParser) fail(msg string) error {
	return errors.Wrapf(ErrMalformedItemSet, "%s (posição %d em %q)", msg, p.pos, p.src)
}

func (p *itemSetParser) parseCollection() ([]string, error) {
	if isIdentStart(p.peek()) {
		return p.parseConstructor()
	}

	return p.parseBracketed()
}

// parseConstructor trata frozenset({...}), set(), list([...]) e tuple((...))
func (p *itemSetParser) parseConstructor() ([]string, error) {
	start := p.pos
	for !p.done() && isIdentPart(p.peek()) {
		p.pos++
	}

	name := p.src[start:p.pos]
	if _, ok := itemSetConstructors[name]; !ok {
		p.pos = start
		return nil, p.fail("construtor desconhecido " + name)
	}

	p.skipSpaces()
	if p.done() || p.peek() != '(' {
		return nil, p.fail("esperado '(' após " + name)
	}
	p.pos++

	p.skipSpaces()
	if p.done() {
		return nil, p.fail("literal não terminado")
	}

	if p.peek() == ')' {
		p.pos++
		return []string{}, nil
	}

	items, err := p.parseBracketed()
	if err != nil {
		return nil, err
	}

	p.skipSpaces()
	if p.done() || p.peek() != ')' {
		return nil, p.fail("esperado ')' ao final de " + name)
	}
	p.pos++

	return items, nil
}

func (p *itemSetParser) parseBracketed() ([]string, error) {
	closing, ok := closingBracket[p.peek()]
	if !ok {
		return nil, p.fail("esperado '[', '(' ou '{'")
	}
	p.pos++

	items := make([]string, 0)
	for {
		p.skipSpaces()
		if p.done() {
			return nil, p.fail("literal não terminado")
		}

		if p.peek() == closing {
			p.pos++
			return items, nil
		}

		item, err := p.parseString()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpaces()
		if p.done() {
			return nil, p.fail("literal não terminado")
		}

		switch p.peek() {
		case ',':
			p.pos++
		case closing:
			// fechamento tratado na próxima volta
		default:
			return nil, p.fail("esperado ',' entre os itens")
		}
	}
}

func (p *itemSetParser) parseString() (string, error) {
	quote := p.peek()
	if quote != '\'' && quote != '"' {
		return "", p.fail("apenas itens do tipo texto são aceitos")
	}
	p.pos++

	var b strings.Builder
	for !p.done() {
		c := p.peek()
		p.pos++

		switch {
		case c == quote:
			return b.String(), nil
		case c == '\\':
			if err := p.parseEscape(&b); err != nil {
				return "", err
			}
		case c == '\n':
			return "", p.fail("quebra de linha dentro do texto")
		default:
			b.WriteByte(c)
		}
	}

	return "", p.fail("texto não terminado")
}

// Escapes de um caractere aceitos dentro do texto
var simpleEscapes = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// Quantidade de dígitos hexadecimais de cada escape numérico
var hexEscapes = map[byte]int{
	'x': 2,
	'u': 4,
	'U': 8,
}

// parseEscape decodifica o escape após a barra invertida. Escapes fora da lista são rejeitados.
func (p *itemSetParser) parseEscape(b *strings.Builder) error {
	if p.done() {
		return p.fail("escape incompleto")
	}

	c := p.peek()
	p.pos++

	if decoded, ok := simpleEscapes[c]; ok {
		b.WriteByte(decoded)
		return nil
	}

	if digits, ok := hexEscapes[c]; ok {
		if p.pos+digits > len(p.src) {
			return p.fail("escape hexadecimal incompleto")
		}
		code, err := strconv.ParseUint(p.src[p.pos:p.pos+digits], 16, 32)
		if err != nil {
			return p.fail("escape hexadecimal inválido")
		}
		p.pos += digits
		return writeCodePoint(b, rune(code), p)
	}

	if isOctal(c) {
		code := rune(c - '0')
		for n := 1; n < 3 && !p.done() && isOctal(p.peek()); n++ {
			code = code*8 + rune(p.peek()-'0')
			p.pos++
		}
		return writeCodePoint(b, code, p)
	}

	return p.fail(fmt.Sprintf("escape não suportado: \\%c", c))
}

func writeCodePoint(b *strings.Builder, code rune, p *itemSetParser) error {
	if !utf8.ValidRune(code) {
		return p.fail("código de caractere inválido")
	}
	b.WriteRune(code)
	return nil
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
