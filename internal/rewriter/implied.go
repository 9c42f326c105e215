package rewriter

// Optional end tags, after the HTML tree construction rules. Only the
// closings that matter for a flat element stack are modelled.

type implied struct {
	closes  map[string]bool
	barrier map[string]bool
}

func tagSet(groups ...[]string) map[string]bool {
	m := make(map[string]bool)
	for _, g := range groups {
		for _, t := range g {
			m[t] = true
		}
	}
	return m
}

var (
	defaultScopeTags = []string{"applet", "caption", "html", "table", "td", "th", "marquee", "object", "template"}

	paragraph   = tagSet([]string{"p"})
	buttonScope = tagSet(defaultScopeTags, []string{"button"})

	// list items stop at their own list and at sectioning containers
	itemScope = tagSet(defaultScopeTags, []string{
		"button", "ol", "ul", "dl", "body", "article", "aside", "nav", "section",
		"header", "footer", "main", "blockquote", "figure", "form", "fieldset", "details",
	})
	selectScope = tagSet([]string{"select", "datalist", "html", "template"})
	rowScope    = tagSet([]string{"table", "tbody", "thead", "tfoot", "html", "template"})
	cellScope   = tagSet([]string{"tr", "table", "html", "template"})
	tableScope  = tagSet([]string{"table", "html", "template"})

	listItem = tagSet([]string{"li"})
	defItem  = tagSet([]string{"dt", "dd"})
	option   = tagSet([]string{"option"})
	optgroup = tagSet([]string{"optgroup"})
	row      = tagSet([]string{"tr"})
	cell     = tagSet([]string{"td", "th"})
	rowGroup = tagSet([]string{"tbody", "thead", "tfoot"})
)

// impliedEnds maps a start tag to the open elements it ends.
var impliedEnds = map[string][]implied{
	"li":       {{closes: listItem, barrier: itemScope}},
	"dt":       {{closes: defItem, barrier: itemScope}},
	"dd":       {{closes: defItem, barrier: itemScope}},
	"option":   {{closes: option, barrier: selectScope}},
	"optgroup": {{closes: option, barrier: selectScope}, {closes: optgroup, barrier: selectScope}},
	"tr":       {{closes: row, barrier: rowScope}},
	"td":       {{closes: cell, barrier: cellScope}},
	"th":       {{closes: cell, barrier: cellScope}},
	"tbody":    {{closes: rowGroup, barrier: tableScope}},
	"thead":    {{closes: rowGroup, barrier: tableScope}},
	"tfoot":    {{closes: rowGroup, barrier: tableScope}},
}

// closesParagraph lists the start tags that end an open <p>.
var closesParagraph = tagSet([]string{
	"address", "article", "aside", "blockquote", "center", "details", "dialog",
	"dir", "div", "dl", "fieldset", "figcaption", "figure", "footer", "form",
	"h1", "h2", "h3", "h4", "h5", "h6", "header", "hgroup", "hr", "li", "dd", "dt",
	"listing", "main", "menu", "nav", "ol", "p", "plaintext", "pre", "section",
	"summary", "table", "ul", "xmp",
})
