package fetchserp

import (
	"context"
	"net/http"
)

// GetBacklinks lists backlinks pointing at a domain
func (c *Client) GetBacklinks(ctx context.Context, p DomainSearchParams) (*Response, error) {
	if p.Domain == "" {
		return nil, required("GetBacklinks", "domain")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/backlinks", domainSearchQuery(p), nil)
}

// GetDomainEmails finds email addresses published on a domain
func (c *Client) GetDomainEmails(ctx context.Context, p DomainSearchParams) (*Response, error) {
	if p.Domain == "" {
		return nil, required("GetDomainEmails", "domain")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/domain_emails", domainSearchQuery(p), nil)
}

// GetDomainInfos returns DNS, WHOIS, SSL and technology information
func (c *Client) GetDomainInfos(ctx context.Context, domain string) (*Response, error) {
	if domain == "" {
		return nil, required("GetDomainInfos", "domain")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/domain_infos", Params{}.Add("domain", domain), nil)
}

// GetMozDomainAnalysis returns domain authority metrics
func (c *Client) GetMozDomainAnalysis(ctx context.Context, domain string) (*Response, error) {
	if domain == "" {
		return nil, required("GetMozDomainAnalysis", "domain")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/moz", Params{}.Add("domain", domain), nil)
}

// GetPageIndexation checks whether a domain is indexed for a keyword
func (c *Client) GetPageIndexation(ctx context.Context, p PageIndexationParams) (*Response, error) {
	if missing := missingFields("domain", p.Domain, "keyword", p.Keyword); len(missing) > 0 {
		return nil, required("GetPageIndexation", missing...)
	}

	params := Params{}.
		Add("domain", p.Domain).
		Add("keyword", p.Keyword)
	return c.execute(ctx, http.MethodGet, "/api/v1/page_indexation", params, nil)
}

// GetDomainRanking finds the position of a domain for a keyword
func (c *Client) GetDomainRanking(ctx context.Context, p RankingParams) (*Response, error) {
	if missing := missingFields("keyword", p.Keyword, "domain", p.Domain); len(missing) > 0 {
		return nil, required("GetDomainRanking", missing...)
	}

	params := Params{}.
		Add("keyword", p.Keyword).
		Add("domain", p.Domain).
		AddOptional("search_engine", string(p.SearchEngine)).
		AddOptional("country", p.Country).
		AddOptional("pages_number", p.PagesNumber)
	return c.execute(ctx, http.MethodGet, "/api/v1/ranking", params, nil)
}

func domainSearchQuery(p DomainSearchParams) Params {
	return Params{}.
		Add("domain", p.Domain).
		AddOptional("search_engine", string(p.SearchEngine)).
		AddOptional("country", p.Country).
		AddOptional("pages_number", p.PagesNumber)
}
