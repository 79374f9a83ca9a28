// Package textasm is a human-writable textual stand-in for the (external)
// parser: a line-oriented format where each line is a Form of
// whitespace-separated tokens and the whole file is a Block of lines, in
// the same spirit as the teacher's own Asm/Dasm — "mostly to support
// testing... without going through the parsing... phases of a higher-level
// language."
//
// A token is classified as a literal (integer, float, quoted string,
// true/false, or () for Unit) or else a bare Symbol. Most of a file is just
// that: one form per line. But a file may also declare macro rules, using
// the same section-keyword convention the teacher's own compiler/asm.go
// scanner uses (there: "program:"/"function:"/"code:"; here: "rule:" with
// its "pattern:"/"body:" sub-sections, and "invocation:"):
//
//	rule:
//	    pattern:
//	        cond !then a !else b
//	    body:
//	        a
//
//	invocation:
//	    x then y else z
//
// A bare word in a pattern: section binds that position (ast.ArgSymbol); a
// "!"-prefixed word is a literal pseudokeyword (ast.Keyword) the invocation
// form must match exactly. Each "rule:" block becomes one ast.SyntaxNode in
// the output Block; everything else (whether inside an explicit
// "invocation:" section or, if no sections are used at all, the whole
// file) is parsed line-by-line exactly as before. There is no support for
// groups, tuples, nested rule sections, or any other syntax this core does
// not itself need to exercise — it exists to hand the expander real,
// span-carrying AST to rewrite, not to be a language frontend.
package textasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/slightknack/passerine/lang/ast"
	"github.com/slightknack/passerine/lang/source"
	"github.com/slightknack/passerine/lang/span"
)

// Parser implements driver.Parser over the textasm format.
type Parser struct{}

// Parse tokenizes and groups src's text into a Block of forms, one per
// "rule:" declaration and one per remaining non-empty, non-comment-only
// line. A line with a single token collapses to that token directly rather
// than a one-element Form, matching how a real parser would not wrap a
// bare literal or symbol in a spurious application form.
func (Parser) Parse(src *source.Source) (span.Spanned[ast.AST], error) {
	return Parse(src)
}

// Parse is the free-function form of Parser.Parse, useful directly from
// tests that don't need the driver.Parser interface indirection.
func Parse(src *source.Source) (span.Spanned[ast.AST], error) {
	var lines []lineTokens
	for _, toks := range tokenizeLines(src) {
		if len(toks) > 0 {
			lines = append(lines, toks)
		}
	}

	p := &parser{src: src, lines: lines}
	forms, err := p.parseTop()
	if err != nil {
		return span.Spanned[ast.AST]{}, err
	}

	root := span.Make[ast.AST](ast.Block{Forms: forms}, span.New(src, 0, len(src.Text)))
	return root, nil
}

type token struct {
	text   string
	offset int
}

type lineTokens []token

// parser walks a flat sequence of non-empty lines, recognizing the
// "rule:"/"pattern:"/"body:"/"invocation:" section markers (a line
// consisting of exactly that one token) wherever they appear.
type parser struct {
	src   *source.Source
	lines []lineTokens
	pos   int
}

func isMarker(l lineTokens, name string) bool {
	return len(l) == 1 && l[0].text == name
}

func (p *parser) atTopMarker() bool {
	return p.pos < len(p.lines) && (isMarker(p.lines[p.pos], "rule:") || isMarker(p.lines[p.pos], "invocation:"))
}

func (p *parser) parseTop() ([]span.Spanned[ast.AST], error) {
	var forms []span.Spanned[ast.AST]
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		switch {
		case isMarker(line, "rule:"):
			p.pos++
			node, err := p.parseRule()
			if err != nil {
				return nil, err
			}
			forms = append(forms, node)
		case isMarker(line, "invocation:"):
			p.pos++
			plain, err := p.parsePlainUntilTopMarker()
			if err != nil {
				return nil, err
			}
			forms = append(forms, plain...)
		default:
			forms = append(forms, p.parsePlainLine(line))
			p.pos++
		}
	}
	return forms, nil
}

// parsePlainUntilTopMarker consumes ordinary (non-section) lines, one form
// per line, until the next "rule:"/"invocation:" marker or end of input.
func (p *parser) parsePlainUntilTopMarker() ([]span.Spanned[ast.AST], error) {
	var forms []span.Spanned[ast.AST]
	for p.pos < len(p.lines) && !p.atTopMarker() {
		forms = append(forms, p.parsePlainLine(p.lines[p.pos]))
		p.pos++
	}
	return forms, nil
}

// parseRule consumes a "pattern:" sub-section followed by a "body:"
// sub-section and returns the ast.SyntaxNode they describe.
func (p *parser) parseRule() (span.Spanned[ast.AST], error) {
	if p.pos >= len(p.lines) || !isMarker(p.lines[p.pos], "pattern:") {
		return span.Spanned[ast.AST]{}, fmt.Errorf("textasm: expected 'pattern:' section in rule")
	}
	p.pos++

	var patToks []token
	for p.pos < len(p.lines) && !isMarker(p.lines[p.pos], "body:") && !p.atTopMarker() {
		patToks = append(patToks, p.lines[p.pos]...)
		p.pos++
	}
	if p.pos >= len(p.lines) || !isMarker(p.lines[p.pos], "body:") {
		return span.Spanned[ast.AST]{}, fmt.Errorf("textasm: expected 'body:' section in rule")
	}
	p.pos++

	var bodyForms []span.Spanned[ast.AST]
	for p.pos < len(p.lines) && !p.atTopMarker() {
		bodyForms = append(bodyForms, p.parsePlainLine(p.lines[p.pos]))
		p.pos++
	}

	argPat, argPatSpan, err := p.buildArgPattern(patToks)
	if err != nil {
		return span.Spanned[ast.AST]{}, err
	}
	bodySpan := span.Build(bodyForms)
	tree := span.Make[ast.AST](ast.Block{Forms: bodyForms}, bodySpan)
	if len(bodyForms) == 1 {
		tree = bodyForms[0]
	}

	node := ast.SyntaxNode{
		ArgPat:     span.Make[ast.ArgPattern](argPat, argPatSpan),
		Expression: tree,
	}
	return span.Make[ast.AST](node, span.Combine(argPatSpan, bodySpan)), nil
}

// buildArgPattern turns a pattern: section's flat token list into an
// ast.ArgGroup: a bare word binds a position (ast.ArgSymbol), a
// "!"-prefixed word is a literal pseudokeyword (ast.Keyword). Tokens are
// written left to right the same way the invocation form reads, and
// expander.Bind matches ArgGroup.Items against the invocation's form in that
// same left-to-right order, so the items keep the token order.
func (p *parser) buildArgPattern(toks []token) (ast.ArgPattern, span.Span, error) {
	if len(toks) == 0 {
		return nil, span.Empty(), fmt.Errorf("textasm: a rule's pattern: section must name at least one keyword")
	}
	items := make([]span.Spanned[ast.ArgPattern], len(toks))
	for i, t := range toks {
		sp := span.New(p.src, t.offset, len(t.text))
		var pat ast.ArgPattern
		if strings.HasPrefix(t.text, "!") && len(t.text) > 1 {
			pat = ast.Keyword{Name: t.text[1:]}
		} else {
			pat = ast.ArgSymbol{Name: t.text}
		}
		items[i] = span.Make[ast.ArgPattern](pat, sp)
	}
	return ast.ArgGroup{Items: items}, span.Build(items), nil
}

// parsePlainLine classifies one line's tokens the way a non-sectioned file
// always has: a single token collapses to that bare node, more than one
// becomes a Form.
func (p *parser) parsePlainLine(toks lineTokens) span.Spanned[ast.AST] {
	nodes := make([]span.Spanned[ast.AST], len(toks))
	for i, tok := range toks {
		nodes[i] = span.Make[ast.AST](classify(tok.text), span.New(p.src, tok.offset, len(tok.text)))
	}
	if len(nodes) == 1 {
		return nodes[0]
	}
	return span.Make[ast.AST](ast.Form{Branches: nodes}, span.Build(nodes))
}

// tokenizeLines splits src's text into lines, and each line into
// whitespace-separated tokens (honoring double-quoted strings as single
// tokens), dropping anything from a bare '#' to end of line.
func tokenizeLines(src *source.Source) [][]token {
	var lines [][]token
	lineStart := 0
	text := src.Text

	for lineStart <= len(text) {
		nl := strings.IndexByte(text[lineStart:], '\n')
		var line string
		var next int
		if nl < 0 {
			line = text[lineStart:]
			next = len(text) + 1
		} else {
			line = text[lineStart : lineStart+nl]
			next = lineStart + nl + 1
		}
		lines = append(lines, tokenizeLine(line, lineStart))
		lineStart = next
	}
	return lines
}

func tokenizeLine(line string, lineOffset int) []token {
	var toks []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			return toks
		case c == '"':
			j := i + 1
			for j < len(line) && line[j] != '"' {
				if line[j] == '\\' && j+1 < len(line) {
					j++
				}
				j++
			}
			end := j + 1
			if end > len(line) {
				end = len(line)
			}
			toks = append(toks, token{text: line[i:end], offset: lineOffset + i})
			i = end
		default:
			j := i
			for j < len(line) && line[j] != ' ' && line[j] != '\t' && line[j] != '\r' && line[j] != '#' {
				j++
			}
			toks = append(toks, token{text: line[i:j], offset: lineOffset + i})
			i = j
		}
	}
	return toks
}

// classify turns a raw token's text into the AST leaf it denotes.
func classify(text string) ast.AST {
	switch {
	case text == "true":
		return ast.DataNode{Value: ast.Boolean(true)}
	case text == "false":
		return ast.DataNode{Value: ast.Boolean(false)}
	case text == "()":
		return ast.DataNode{Value: ast.Unit{}}
	case strings.HasPrefix(text, `"`):
		if unquoted, err := strconv.Unquote(text); err == nil {
			return ast.DataNode{Value: ast.String(unquoted)}
		}
		return ast.Symbol{Name: text}
	default:
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return ast.DataNode{Value: ast.Integer(i)}
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil && strings.ContainsAny(text, ".eE") {
			return ast.DataNode{Value: ast.Float(f)}
		}
		return ast.Symbol{Name: text}
	}
}
