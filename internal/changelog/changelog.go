// Package changelog groups commit subjects by conventional-commit type
// and renders them as a markdown changelog.
package changelog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Type pairs a conventional-commit key with its changelog heading. The
// slice order fixes the section order of the generated document.
type Type struct {
	Key   string
	Label string
}

// Types is the fixed vocabulary of recognized commit types.
var Types = []Type{
	{"feat", "[FEAT] New feature"},
	{"fix", "[FIX] Bug fix"},
	{"docs", "[DOCS] Documentation"},
	{"style", "[STYLE] Code style"},
	{"refactor", "[REFACTOR] Refactor"},
	{"perf", "[PERF] Performance"},
	{"test", "[TEST] Tests"},
	{"chore", "[CHORE] Chore"},
	{"build", "[BUILD] Build"},
	{"ci", "[CI] CI/CD"},
}

// OtherKey groups subjects that are not conventional commits.
const OtherKey = "other"

// NoCommits is returned when the underlying log query fails outright.
const NoCommits = "No commits found"

// Conventional commit header: type, optional parenthesized scope, then
// ": " and the message. Case-sensitive, anchored at line start.
var headerPattern = regexp.MustCompile(`^(\w+)(?:\([\w-]+\))?: (.+)$`)

// IsType reports whether key is a recognized commit type.
func IsType(key string) bool {
	for _, t := range Types {
		if t.Key == key {
			return true
		}
	}
	return false
}

// Label returns the display label for a recognized type key, or the key
// itself when unrecognized.
func Label(key string) string {
	for _, t := range Types {
		if t.Key == key {
			return t.Label
		}
	}
	return key
}

// TypeKeys returns the recognized type keys joined for help text.
func TypeKeys() string {
	keys := make([]string, len(Types))
	for i, t := range Types {
		keys[i] = t.Key
	}
	return strings.Join(keys, ", ")
}

// ParseSubject matches a conventional-commit header. The scope, if
// present, is discarded: grouping only cares about the type token.
func ParseSubject(line string) (typ, message string, ok bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Group buckets subject lines by commit type, preserving input order
// within each bucket. Lines with an unrecognized type, and lines that are
// not conventional commits at all, land verbatim in the OtherKey bucket.
func Group(subjects []string) map[string][]string {
	grouped := make(map[string][]string, len(Types)+1)
	for _, line := range subjects {
		if line == "" {
			continue
		}
		typ, message, ok := ParseSubject(line)
		if ok && IsType(typ) {
			grouped[typ] = append(grouped[typ], message)
		} else {
			grouped[OtherKey] = append(grouped[OtherKey], line)
		}
	}
	return grouped
}

// Render builds the changelog document: title, generation stamp, then one
// section per non-empty type in declaration order, with the "other"
// bucket last.
func Render(grouped map[string][]string, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Changelog\n")
	fmt.Fprintf(&b, "\nGenerated: %s\n", now.Format("2006-01-02 15:04"))

	for _, t := range Types {
		messages := grouped[t.Key]
		if len(messages) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", t.Label)
		for _, message := range messages {
			fmt.Fprintf(&b, "- %s\n", message)
		}
	}

	if others := grouped[OtherKey]; len(others) > 0 {
		b.WriteString("\n## Other Changes\n\n")
		for _, line := range others {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	return b.String()
}

// ResolveSince maps the "N.days" relative form to an absolute YYYY-MM-DD
// date; any other value passes through unchanged.
func ResolveSince(since string, now time.Time) string {
	if strings.HasSuffix(since, ".days") {
		if days, err := strconv.Atoi(strings.TrimSuffix(since, ".days")); err == nil {
			return now.AddDate(0, 0, -days).Format("2006-01-02")
		}
	}
	return since
}
