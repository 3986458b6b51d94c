// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown converts raw line-oriented search result text into a
// markdown snippet grouped by source URL.
package markdown

import "strings"

// sourcePrefix opens a new result group in the raw text.
const sourcePrefix = "Source:"

// DefaultMarkers is the built-in relevance allow-list: a content line is
// kept only if it contains one of these substrings.
var DefaultMarkers = []string{"RYOBI", "PCL", "$"}

// Formatter groups raw search result lines into markdown sections. The zero
// value formats with DefaultMarkers.
type Formatter struct {
	// Markers overrides the relevance allow-list when non-empty.
	Markers []string
}

// Format scans raw line by line and emits a markdown heading per Source:
// line and a bullet per relevant content line under it. Lines appearing
// before any Source: line, and lines matching no marker, are dropped. There
// is no failure path; input without a Source: line yields "".
func (f Formatter) Format(raw string) string {
	markers := f.Markers
	if len(markers) == 0 {
		markers = DefaultMarkers
	}

	var out []string
	currentSource := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, sourcePrefix):
			currentSource = strings.TrimSpace(strings.TrimPrefix(line, sourcePrefix))
			out = append(out, "\n### ["+SourceDomain(currentSource)+"]("+currentSource+")")
		case currentSource != "" && line != "":
			if containsAny(line, markers) {
				out = append(out, "- "+line)
			}
		}
	}

	return strings.Join(out, "\n")
}

// SourceDomain derives a display domain from a URL: the third "/"-delimited
// segment, or the whole string when that segment does not exist.
func SourceDomain(url string) string {
	if !strings.Contains(url, "/") {
		return url
	}
	parts := strings.Split(url, "/")
	if len(parts) < 3 {
		return url
	}
	return parts[2]
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
