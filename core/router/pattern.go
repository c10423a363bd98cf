package router

import (
	"strings"
)

// segment is one compiled element of a route pattern.
type segment struct {
	literal string
	param   string
	rest    bool // {name...} captures the remaining path, slashes included
}

// pattern is a compiled route pattern. Patterns use {name} to capture a
// single non-empty segment and {name...} as the final element to capture the
// rest of the path verbatim.
type pattern struct {
	raw      string
	segments []segment
}

// compilePattern parses a route pattern. It panics on malformed patterns
// since routes are registered once at startup.
func compilePattern(raw string) pattern {
	if raw == "" || raw[0] != '/' {
		panic("router: pattern must start with /: " + raw)
	}

	p := pattern{raw: raw}
	if raw == "/" {
		return p
	}

	seen := make(map[string]struct{})
	parts := strings.Split(strings.TrimPrefix(raw, "/"), "/")
	for i, part := range parts {
		if !strings.HasPrefix(part, "{") || !strings.HasSuffix(part, "}") {
			if strings.ContainsAny(part, "{}") {
				panic("router: malformed capture in pattern: " + raw)
			}
			p.segments = append(p.segments, segment{literal: part})
			continue
		}

		name := part[1 : len(part)-1]
		rest := strings.HasSuffix(name, "...")
		if rest {
			name = strings.TrimSuffix(name, "...")
			if i != len(parts)-1 {
				panic("router: rest capture must be the last element: " + raw)
			}
		}
		if name == "" {
			panic("router: empty capture name in pattern: " + raw)
		}
		if _, dup := seen[name]; dup {
			panic("router: duplicate capture name " + name + " in pattern: " + raw)
		}
		seen[name] = struct{}{}
		p.segments = append(p.segments, segment{param: name, rest: rest})
	}

	return p
}

// match reports whether path satisfies the pattern and returns the captured
// parameters. The rest capture receives the remaining path verbatim, so
// values like "johndoe/portrait.png" keep their slashes.
func (p pattern) match(path string) (map[string]string, bool) {
	path = strings.TrimPrefix(path, "/")
	if len(p.segments) == 0 {
		return nil, path == ""
	}

	var params map[string]string
	for i, seg := range p.segments {
		if seg.rest {
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[seg.param] = path
			return params, true
		}

		var part string
		if idx := strings.IndexByte(path, '/'); idx >= 0 {
			part, path = path[:idx], path[idx+1:]
		} else {
			part, path = path, ""
			if i != len(p.segments)-1 {
				return nil, false
			}
		}

		switch {
		case seg.param != "":
			if part == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, len(p.segments))
			}
			params[seg.param] = part
		case part != seg.literal:
			return nil, false
		}
	}

	if path != "" {
		return nil, false
	}
	return params, true
}
