// Package csp builds Content-Security-Policy header values.
package csp

import (
	"strings"
)

const (
	headerEnforce    = "Content-Security-Policy"
	headerReportOnly = "Content-Security-Policy-Report-Only"
)

// directiveOrder fixes the rendering order so header values are stable.
var directiveOrder = []string{
	"default-src",
	"script-src",
	"style-src",
	"img-src",
	"font-src",
	"connect-src",
	"frame-ancestors",
	"form-action",
	"base-uri",
	"object-src",
	"report-uri",
}

// Policy is an immutable set of CSP directives. With and ReportOnly return
// modified copies, so a Policy can be shared between requests.
type Policy struct {
	directives map[string][]string
	reportOnly bool
}

// With returns a copy of p with directive set to sources. Unknown directives
// are ignored by String. An empty source list removes the directive.
func (p Policy) With(directive string, sources ...string) Policy {
	next := p.clone()
	if len(sources) == 0 {
		delete(next.directives, directive)
		return next
	}
	next.directives[directive] = append([]string(nil), sources...)
	return next
}

// ReportOnly returns a copy of p that is sent with the report-only header.
func (p Policy) ReportOnly(enabled bool) Policy {
	next := p.clone()
	next.reportOnly = enabled
	return next
}

// HeaderName is the response header the policy is sent in.
func (p Policy) HeaderName() string {
	if p.reportOnly {
		return headerReportOnly
	}
	return headerEnforce
}

// String renders the header value, or "" when no directive is set.
func (p Policy) String() string {
	parts := make([]string, 0, len(p.directives))
	for _, d := range directiveOrder {
		if sources, ok := p.directives[d]; ok {
			parts = append(parts, d+" "+strings.Join(sources, " "))
		}
	}
	return strings.Join(parts, "; ")
}

func (p Policy) clone() Policy {
	next := Policy{directives: make(map[string][]string, len(p.directives)+1), reportOnly: p.reportOnly}
	for k, v := range p.directives {
		next.directives[k] = v
	}
	return next
}

// APIPolicy blocks every fetch. JSON responses never load subresources.
func APIPolicy() Policy {
	return Policy{}.
		With("default-src", "'none'").
		With("frame-ancestors", "'none'").
		With("form-action", "'none'").
		With("base-uri", "'none'")
}

// SwaggerUIPolicy allows the same-origin Swagger UI bundle and its inline
// bootstrap script.
func SwaggerUIPolicy() Policy {
	return Policy{}.
		With("default-src", "'self'").
		With("script-src", "'self'", "'unsafe-inline'").
		With("style-src", "'self'", "'unsafe-inline'").
		With("img-src", "'self'", "data:").
		With("font-src", "'self'", "data:").
		With("connect-src", "'self'").
		With("frame-ancestors", "'none'").
		With("base-uri", "'self'").
		With("object-src", "'none'")
}
