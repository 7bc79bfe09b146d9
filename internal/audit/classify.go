// Package audit reconstructs a human-meaningful operation description for
// inbound API requests and extracts result messages from responses, feeding
// the persisted operation log.
package audit

import (
	"net/url"
	"strings"
)

// Request describes an inbound HTTP request to the classifier. It is built
// once per request and discarded after classification.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   Body
}

// Operation is the classified outcome: a display label and the package
// manager command the request maps to. The command text is assembled for
// display only; it is never executed from here.
type Operation struct {
	Label   string
	Command string
}

// exactOps maps "METHOD /path" pairs without dynamic segments. A nil entry
// marks a route as explicitly not audited (administrative surface rather
// than a package operation).
var exactOps = map[string]*Operation{
	"GET /api/apps":        {Label: "List installed apps", Command: "scoop list"},
	"GET /api/buckets":     {Label: "List buckets", Command: "scoop bucket list"},
	"GET /api/logs":        nil,
	"DELETE /api/logs":     nil,
	"GET /api/settings":    nil,
	"POST /api/settings":   nil,
	"POST /api/auth/login": nil,
	"GET /api/auth/verify": nil,
	"GET /health":          nil,
}

// rule is one pattern entry of the classification table: a matcher over
// method and path, and a builder producing the operation from the full
// request. Rules are evaluated in order, first match wins.
type rule struct {
	match func(method, path string) bool
	build func(req Request) (Operation, bool)
}

var rules = []rule{
	{
		match: appSubpath("GET", "/versions"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Query versions", "scoop search " + pathSegment(req.Path, 3)}, true
		},
	},
	{
		match: appSubpath("GET", "/related"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Query related apps", "read manifest.json for " + pathSegment(req.Path, 3)}, true
		},
	},
	{
		match: appSubpath("GET", "/info"),
		build: func(req Request) (Operation, bool) {
			return Operation{"View app info", "read manifest.json for " + pathSegment(req.Path, 3)}, true
		},
	},
	{
		match: exactPath("GET", "/api/search"),
		build: func(req Request) (Operation, bool) {
			if !req.Query.Has("q") {
				return Operation{}, false
			}
			return Operation{"Search apps", "scoop search " + req.Query.Get("q")}, true
		},
	},
	{
		match: exactPath("POST", "/api/apps/update"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Update apps", "scoop update " + strings.Join(req.Body.StringSlice("apps"), " ")}, true
		},
	},
	{
		match: exactPath("POST", "/api/apps/uninstall"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Uninstall apps", "scoop uninstall " + strings.Join(req.Body.StringSlice("apps"), " ")}, true
		},
	},
	{
		match: exactPath("POST", "/api/apps/install"),
		build: func(req Request) (Operation, bool) {
			name := req.Query.Get("name")
			command := "scoop install " + name
			if bucket := req.Body.String("bucket"); bucket != "" {
				command = "scoop install " + bucket + "/" + name
			}
			return Operation{"Install app", command}, true
		},
	},
	{
		match: exactPath("POST", "/api/buckets"),
		build: func(req Request) (Operation, bool) {
			command := "scoop bucket add " + req.Body.String("name")
			if url := req.Body.String("url"); url != "" {
				command += " " + url
			}
			return Operation{"Add bucket", command}, true
		},
	},
	{
		match: exactPath("POST", "/api/apps/hold"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Hold apps", "scoop hold " + strings.Join(req.Body.StringSlice("apps"), " ")}, true
		},
	},
	{
		match: appSubpath("POST", "/hold"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Hold apps", "scoop hold " + pathSegment(req.Path, 3)}, true
		},
	},
	{
		match: appSubpath("POST", "/reset"),
		build: func(req Request) (Operation, bool) {
			// Without a target version or app there is nothing meaningful to
			// reconstruct; the request stays unaudited and the handler's own
			// validation rejects it.
			if target := req.Body.String("target_app"); target != "" {
				return Operation{"Switch version", "scoop reset " + target}, true
			}
			if version := req.Body.String("version"); version != "" {
				return Operation{"Switch version", "scoop reset " + pathSegment(req.Path, 3) + "@" + version}, true
			}
			return Operation{}, false
		},
	},
	{
		match: exactPath("DELETE", "/api/apps/hold"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Unhold apps", "scoop unhold " + strings.Join(req.Body.StringSlice("apps"), " ")}, true
		},
	},
	{
		match: appSubpath("DELETE", "/hold"),
		build: func(req Request) (Operation, bool) {
			return Operation{"Unhold apps", "scoop unhold " + pathSegment(req.Path, 3)}, true
		},
	},
	{
		match: func(method, path string) bool {
			return method == "DELETE" && strings.HasPrefix(path, "/api/buckets/") &&
				len(strings.Split(path, "/")) == 4
		},
		build: func(req Request) (Operation, bool) {
			return Operation{"Remove bucket", "scoop bucket rm " + pathSegment(req.Path, 3)}, true
		},
	},
}

// Classify determines whether a request corresponds to an auditable
// operation. Exact matches take precedence over pattern rules; unrecognized
// requests are not audited. Classify is a pure function of its input.
func Classify(req Request) (Operation, bool) {
	if op, ok := exactOps[req.Method+" "+req.Path]; ok {
		if op == nil {
			return Operation{}, false
		}
		return *op, true
	}

	for _, r := range rules {
		if r.match(req.Method, req.Path) {
			return r.build(req)
		}
	}
	return Operation{}, false
}

func exactPath(method, path string) func(string, string) bool {
	return func(m, p string) bool {
		return m == method && p == path
	}
}

// appSubpath matches "/api/apps/{name}<suffix>" with exactly one dynamic
// segment
func appSubpath(method, suffix string) func(string, string) bool {
	return func(m, p string) bool {
		return m == method && strings.HasPrefix(p, "/api/apps/") &&
			strings.HasSuffix(p, suffix) && len(strings.Split(p, "/")) == 5
	}
}

func pathSegment(path string, index int) string {
	parts := strings.Split(path, "/")
	if index >= len(parts) {
		return ""
	}
	return parts[index]
}
