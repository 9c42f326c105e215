// Package rewriter rewrites HTML documents as they stream through, applying
// per-element rules selected by tag name and/or id. The whole document is
// never held in memory: tokens that no rule matches are copied through
// byte for byte, and buffered output is flushed before every read from the
// source.
package rewriter

import (
	"bufio"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Handler mutates one matched element.
type Handler interface {
	Element(e *Element)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(e *Element)

// Element implements Handler.
func (f HandlerFunc) Element(e *Element) { f(e) }

// Rule binds a Selector to a Handler.
type Rule struct {
	Selector Selector
	Handler  Handler
}

// Rewriter holds an ordered rule table. It is safe for concurrent use once
// built: Transform never mutates it.
type Rewriter struct {
	rules []Rule
}

// New returns a Rewriter applying rules in the given order.
func New(rules ...Rule) *Rewriter {
	return &Rewriter{rules: append([]Rule(nil), rules...)}
}

// On registers a handler for selector ("tag", "#id" or "tag#id").
// It panics on an invalid selector; rule tables are fixed at start-up.
func (rw *Rewriter) On(selector string, h Handler) *Rewriter {
	rw.rules = append(rw.rules, Rule{Selector: MustParseSelector(selector), Handler: h})
	return rw
}

// Rules returns a copy of the registered rules.
func (rw *Rewriter) Rules() []Rule {
	return append([]Rule(nil), rw.rules...)
}

// Transform reads an HTML document from src and writes the rewritten
// document to dst. Only I/O errors are returned; malformed markup is passed
// through as the tokenizer recovers it.
func (rw *Rewriter) Transform(dst io.Writer, src io.Reader) error {
	out := bufio.NewWriter(dst)
	s := &scanner{
		rules:  rw.rules,
		z:      html.NewTokenizer(&flushingReader{r: src, out: out, dst: dst}),
		out:    out,
		skipAt: -1,
	}
	if err := s.run(); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	return flushDst(dst)
}

// Stream is the pull-based form of Transform: the returned reader yields the
// rewritten document as it is produced. Closing it early stops the rewrite.
// src is not closed.
func (rw *Rewriter) Stream(src io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(rw.Transform(pw, src))
	}()
	return pr
}

// openElement is one entry of the open element stack.
type openElement struct {
	tag string
	el  *Element // set when work is pending at the end tag
}

type scanner struct {
	rules []Rule
	z     *html.Tokenizer
	out   *bufio.Writer

	stack []openElement
	// skipAt is the stack index of the outermost element whose children are
	// being replaced, or -1.
	skipAt int
}

func (s *scanner) run() error {
	for {
		switch tt := s.z.Next(); tt {
		case html.ErrorToken:
			if err := s.z.Err(); err != io.EOF {
				return err
			}
			s.closeAll()
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			s.startTag(tt == html.SelfClosingTagToken)
		case html.EndTagToken:
			s.endTag()
		default:
			if !s.skipping() {
				_, _ = s.out.Write(s.z.Raw())
			}
		}
	}
}

func (s *scanner) skipping() bool { return s.skipAt >= 0 }

func (s *scanner) startTag(selfClosing bool) {
	// TagName and TagAttr lower-case the tokenizer's buffer in place.
	raw := append([]byte(nil), s.z.Raw()...)
	name, hasAttr := s.z.TagName()
	tag := string(name)
	void := isVoid(tag)
	opens := !selfClosing && !void

	s.closeImplied(tag)

	if s.skipping() {
		if opens {
			s.stack = append(s.stack, openElement{tag: tag})
		}
		return
	}

	var attrs []html.Attribute
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = s.z.TagAttr()
		attrs = append(attrs, html.Attribute{Key: string(key), Val: string(val)})
	}

	el := s.dispatch(tag, attrs, selfClosing, void)
	if el == nil {
		_, _ = s.out.Write(raw)
		if opens {
			s.stack = append(s.stack, openElement{tag: tag})
		}
		return
	}

	if el.modified {
		_, _ = s.out.WriteString(el.startTag())
	} else {
		_, _ = s.out.Write(raw)
	}
	_, _ = s.out.WriteString(el.head())

	if !opens {
		// no children will follow, so the tail goes right after the tag
		_, _ = s.out.WriteString(el.tail())
		return
	}

	frame := openElement{tag: tag}
	if el.hasPending() {
		frame.el = el
	}
	if el.inner != nil {
		s.skipAt = len(s.stack)
	}
	s.stack = append(s.stack, frame)
}

// dispatch runs every matching rule, in registration order, on one shared
// handle. It returns nil when nothing matched.
func (s *scanner) dispatch(tag string, attrs []html.Attribute, selfClosing, void bool) *Element {
	id, hasID := "", false
	for _, a := range attrs {
		if a.Key == "id" {
			id, hasID = a.Val, true
			break
		}
	}

	var el *Element
	for _, r := range s.rules {
		if !r.Selector.Matches(tag, id, hasID) {
			continue
		}
		if el == nil {
			el = &Element{tag: tag, attrs: attrs, selfClosing: selfClosing, void: void}
		}
		r.Handler.Element(el)
	}
	return el
}

func (s *scanner) endTag() {
	raw := append([]byte(nil), s.z.Raw()...)
	name, _ := s.z.TagName()
	tag := string(name)

	idx := -1
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].tag == tag {
			idx = i
			break
		}
	}
	if idx < 0 {
		// stray end tag
		if !s.skipping() {
			_, _ = s.out.Write(raw)
		}
		return
	}

	s.popTo(idx)
	if !s.skipping() {
		_, _ = s.out.Write(raw)
	}
}

// popTo closes every open element from the top of the stack down to idx,
// innermost first, emitting pending tails.
func (s *scanner) popTo(idx int) {
	for i := len(s.stack) - 1; i >= idx; i-- {
		if s.skipAt == i {
			s.skipAt = -1
		}
		if el := s.stack[i].el; el != nil && !s.skipping() {
			_, _ = s.out.WriteString(el.tail())
		}
	}
	s.stack = s.stack[:idx]
}

func (s *scanner) closeAll() {
	s.popTo(0)
}

// closeImplied closes the open elements whose end tag may be omitted when
// tag starts, e.g. a <p> followed by a <div>, or an <li> by its next sibling.
func (s *scanner) closeImplied(tag string) {
	for _, c := range impliedEnds[tag] {
		s.closeInScope(c.closes, c.barrier)
	}
	if closesParagraph[tag] {
		s.closeInScope(paragraph, buttonScope)
	}
}

// closeInScope pops to the topmost open element in targets, unless an
// element in barrier is found first.
func (s *scanner) closeInScope(targets, barrier map[string]bool) {
	for i := len(s.stack) - 1; i >= 0; i-- {
		tag := s.stack[i].tag
		if targets[tag] {
			s.popTo(i)
			return
		}
		if barrier[tag] {
			return
		}
	}
}

var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Keygen: true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

func isVoid(tag string) bool {
	return voidElements[atom.Lookup([]byte(tag))]
}

// flushingReader pushes everything produced so far to the destination
// before blocking on the source for more input.
type flushingReader struct {
	r   io.Reader
	out *bufio.Writer
	dst io.Writer
}

func (f *flushingReader) Read(p []byte) (int, error) {
	if f.out.Buffered() > 0 {
		if err := f.out.Flush(); err != nil {
			return 0, err
		}
		if err := flushDst(f.dst); err != nil {
			return 0, err
		}
	}
	return f.r.Read(p)
}

func flushDst(w io.Writer) error {
	switch f := w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Flush() }:
		f.Flush()
	}
	return nil
}
