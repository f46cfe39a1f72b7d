package apiclient

import (
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/publicsuffix"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Provider owns the single shared Client. Build one at startup and pass it
// to whatever needs to talk to the product API.
type Provider struct {
	cfg    Config
	once   sync.Once
	client *Client
}

func NewProvider(cfg Config) *Provider {
	return &Provider{cfg: cfg}
}

// Client returns the shared client, creating it on first use.
func (p *Provider) Client() *Client {
	p.once.Do(func() {
		p.client = newClient(p.cfg)
	})
	return p.client
}

func newClient(cfg Config) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Error().Err(err).Msg("cookie jar unavailable, credentials will not be forwarded")
	} else {
		rc.SetCookieJar(jar)
	}

	log.Info().Str("base_url", cfg.BaseURL).Msg("product api client created")

	return &Client{rc: rc, baseURL: cfg.BaseURL}
}
