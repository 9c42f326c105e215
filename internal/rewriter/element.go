package rewriter

import (
	"strings"

	"golang.org/x/net/html"
)

// ContentType tells the rewriter how to emit inserted content.
type ContentType int

const (
	// Text content is HTML-escaped before being emitted.
	Text ContentType = iota
	// HTML content is emitted verbatim.
	HTML
)

type fragment struct {
	content string
	kind    ContentType
}

func (f fragment) render() string {
	if f.kind == HTML {
		return f.content
	}
	return html.EscapeString(f.content)
}

// Element is the mutable handle passed to a Handler for one opened element.
// It is only valid for the duration of the handler call.
type Element struct {
	tag         string
	attrs       []html.Attribute
	selfClosing bool
	void        bool

	modified bool
	inner    *fragment
	prepend  []fragment
	appends  []fragment
}

// TagName returns the element's tag name as reported by the tokenizer.
func (e *Element) TagName() string { return e.tag }

// GetAttribute returns the value of the named attribute.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttribute reports whether the named attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// Attributes returns a copy of the element's attributes in source order.
func (e *Element) Attributes() []html.Attribute {
	out := make([]html.Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// SetAttribute sets the named attribute, keeping its position when it
// already exists and appending it otherwise.
func (e *Element) SetAttribute(name, value string) {
	e.modified = true
	for i := range e.attrs {
		if e.attrs[i].Namespace == "" && e.attrs[i].Key == name {
			e.attrs[i].Val = value
			return
		}
	}
	e.attrs = append(e.attrs, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute drops every occurrence of the named attribute.
func (e *Element) RemoveAttribute(name string) {
	kept := e.attrs[:0]
	for _, a := range e.attrs {
		if a.Namespace == "" && a.Key == name {
			e.modified = true
			continue
		}
		kept = append(kept, a)
	}
	e.attrs = kept
}

// SetInnerContent replaces the element's children. Ignored on void elements.
func (e *Element) SetInnerContent(content string, kind ContentType) {
	if e.void {
		return
	}
	e.inner = &fragment{content: content, kind: kind}
	// children are replaced, so earlier prepends/appends are too
	e.prepend = nil
	e.appends = nil
}

// Prepend inserts content right after the element's start tag.
// Ignored on void elements.
func (e *Element) Prepend(content string, kind ContentType) {
	if e.void {
		return
	}
	e.prepend = append([]fragment{{content: content, kind: kind}}, e.prepend...)
}

// Append inserts content right before the element's end tag.
// Ignored on void elements.
func (e *Element) Append(content string, kind ContentType) {
	if e.void {
		return
	}
	e.appends = append(e.appends, fragment{content: content, kind: kind})
}

// startTag renders the (possibly modified) start tag.
func (e *Element) startTag() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace)
			b.WriteByte(':')
		}
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Val))
		b.WriteByte('"')
	}
	if e.selfClosing {
		b.WriteString("/>")
	} else {
		b.WriteByte('>')
	}
	return b.String()
}

// hasPending reports whether the element needs work at its end tag.
func (e *Element) hasPending() bool {
	return e.inner != nil || len(e.appends) > 0
}

func (e *Element) head() string {
	var b strings.Builder
	for _, f := range e.prepend {
		b.WriteString(f.render())
	}
	if e.inner != nil {
		b.WriteString(e.inner.render())
	}
	return b.String()
}

func (e *Element) tail() string {
	var b strings.Builder
	for _, f := range e.appends {
		b.WriteString(f.render())
	}
	return b.String()
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", "\u00a0", "&nbsp;")

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
