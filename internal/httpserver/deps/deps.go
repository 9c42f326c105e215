package deps

import (
	"context"
	"io"
	"time"

	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/profile"
	"github.com/MrSnakeDoc/linkhub/internal/rewriter"
)

// TemplateFetcher yields a fresh copy of the upstream template on every call.
type TemplateFetcher interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
	URL() string
}

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	AllowedCIDRS []string           // IPs allowed to access healthz/readyz endpoints
	TrustProxy   bool               // true if running behind a trusted reverse proxy (e.g., cloudflared)
	Profile      *profile.Profile   // Personal data, read-only after start
	Rewriter     *rewriter.Rewriter // Page rules built from Profile
	Fetcher      TemplateFetcher    // Upstream template source
}
