package notion

import (
	"strings"
)

var notionHosts = []string{
	"notion.so",
	"notion.site",
	"www.notion.so",
	"www.notion.site",
}

func isNotionHost(host string) bool {
	for _, h := range notionHosts {
		if host == h {
			return true
		}
	}
	// public pages live on <workspace>.notion.site
	return strings.HasSuffix(host, ".notion.site")
}

// splitURL returns the path segments following the host,
// with query and fragment removed. The scheme is optional.
func splitURL(raw string) ([]string, string, bool) {
	s := raw
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}

	fragment := ""
	if i := strings.IndexByte(s, '#'); i >= 0 {
		fragment = s[i+1:]
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(strings.TrimSuffix(s, "/"), "/")
	if len(parts) == 0 || !isNotionHost(parts[0]) {
		return nil, fragment, false
	}
	return parts[1:], fragment, true
}

// trailingID extracts the id from a path segment like
// "Some-Page-Title-67ace61a7fd24ab78e892b1dc9b252e4".
func trailingID(segment string) string {
	if len(segment) > 32 {
		return segment[len(segment)-32:]
	}
	return segment
}

// BlockIDFromURL returns the id of the block a link points to.
// Block links carry the block id as the URL fragment.
func BlockIDFromURL(raw string) (BlockID, bool) {
	_, fragment, ok := splitURL(raw)
	if !ok || fragment == "" {
		return BlockID{}, false
	}
	id, err := ParseBlockID(fragment)
	return id, err == nil
}

// PageIDFromURL returns the id of the page a link points to.
func PageIDFromURL(raw string) (PageID, bool) {
	segments, _, ok := splitURL(raw)
	if !ok || len(segments) == 0 {
		return PageID{}, false
	}
	id, err := ParsePageID(trailingID(segments[len(segments)-1]))
	return id, err == nil
}

// WorkspaceFromURL returns the workspace name of a link
// of the form notion.so/<workspace>/<page>.
func WorkspaceFromURL(raw string) (WorkspaceID, bool) {
	segments, _, ok := splitURL(raw)
	if !ok || len(segments) < 2 {
		return "", false
	}
	ws, err := ParseWorkspaceID(segments[0])
	return ws, err == nil
}
