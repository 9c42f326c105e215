package handlers

import (
	"net/http"
	"strings"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
)

// linksRoute is matched anywhere in the path: /links, /foo/links, /links/x.
const linksRoute = "/links"

// IsLinksPath reports whether path selects the JSON links route.
func IsLinksPath(path string) bool {
	return strings.Contains(path, linksRoute)
}

// Page dispatches every non-infra request: link data as JSON, or the
// rewritten template page.
func Page(d deps.Deps) http.HandlerFunc {
	links := Links(d)
	page := Template(d)

	return func(w http.ResponseWriter, r *http.Request) {
		if IsLinksPath(r.URL.Path) {
			links(w, r)
			return
		}
		page(w, r)
	}
}
