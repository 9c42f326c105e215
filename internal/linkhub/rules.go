// Package linkhub holds the page rules that turn the upstream template into
// the personal link hub.
package linkhub

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/MrSnakeDoc/linkhub/internal/profile"
	"github.com/MrSnakeDoc/linkhub/internal/rewriter"
)

const (
	bodyStyle   = "background: #FFFFF0;font-family: Georgia;color: #4A5568"
	nameStyle   = "color: black; margin-top: 2rem"
	avatarStyle = "background: lightblue; box-shadow: 0 0 6px black"
	linkStyle   = "border: 1px solid black; background: black; margin-top: 10px; border-radius: 3px; cursor: pointer; color: white"

	githubIcon = `<svg role="img" viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg"><title>GitHub icon</title>` +
		`<path d="M12 .297c-6.63 0-12 5.373-12 12 0 5.303 3.438 9.8 8.205 11.385.6.113.82-.258.82-.577 0-.285-.01-1.04-.015-2.04-3.338.724-4.042-1.61-4.042-1.61C4.422 18.07 3.633 17.7 3.633 17.7c-1.087-.744.084-.729.084-.729 1.205.084 1.838 1.236 1.838 1.236 1.07 1.835 2.809 1.305 3.495.998.108-.776.417-1.305.76-1.605-2.665-.3-5.466-1.332-5.466-5.93 0-1.31.465-2.38 1.235-3.22-.135-.303-.54-1.523.105-3.176 0 0 1.005-.322 3.3 1.23.96-.267 1.98-.399 3-.405 1.02.006 2.04.138 3 .405 2.28-1.552 3.285-1.23 3.285-1.23.645 1.653.24 2.873.12 3.176.765.84 1.23 1.91 1.23 3.22 0 4.61-2.805 5.625-5.475 5.92.42.36.81 1.096.81 2.22 0 1.606-.015 2.896-.015 3.286 0 .315.21.69.825.57C20.565 22.092 24 17.592 24 12.297c0-6.627-5.373-12-12-12"/></svg>`
)

// Rules returns the rule table for p. The links rule keeps a reference to
// p.Links; p must not be mutated afterwards.
func Rules(p *profile.Profile) []rewriter.Rule {
	return []rewriter.Rule{
		rule("body", func(e *rewriter.Element) {
			e.SetAttribute("style", bodyStyle)
		}),
		rule("title", func(e *rewriter.Element) {
			e.SetInnerContent(p.DisplayName, rewriter.Text)
		}),
		rule("#profile", func(e *rewriter.Element) {
			e.SetAttribute("style", "")
		}),
		rule("#name", func(e *rewriter.Element) {
			e.SetInnerContent(p.Email, rewriter.Text)
			e.SetAttribute("style", nameStyle)
		}),
		rule("#avatar", func(e *rewriter.Element) {
			e.SetAttribute("style", avatarStyle)
			e.SetAttribute("src", p.AvatarURL)
		}),
		rule("#links", linksHandler(p.Links)),
		rule("#social", func(e *rewriter.Element) {
			e.SetAttribute("style", "")
			e.Append(`<a href="`+html.EscapeString(p.SocialURL)+`">`+githubIcon+`</a>`, rewriter.HTML)
		}),
	}
}

// New builds a Rewriter for p.
func New(p *profile.Profile) *rewriter.Rewriter {
	return rewriter.New(Rules(p)...)
}

func rule(selector string, fn func(e *rewriter.Element)) rewriter.Rule {
	return rewriter.Rule{
		Selector: rewriter.MustParseSelector(selector),
		Handler:  rewriter.HandlerFunc(fn),
	}
}

func linksHandler(links profile.Links) rewriter.HandlerFunc {
	return func(e *rewriter.Element) {
		for _, l := range links {
			e.Append(anchor(l), rewriter.HTML)
		}
	}
}

func anchor(l profile.LinkEntry) string {
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(html.EscapeString(l.URL))
	b.WriteString(`" style="`)
	b.WriteString(linkStyle)
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(l.Name))
	b.WriteString(`</a>`)
	return b.String()
}
