package transfer

import (
	"context"
	"regexp"
)

// ignoreRule is a single compiled topic exemption.
type ignoreRule struct {
	raw     string
	pattern *regexp.Regexp // nil when the rule degraded to a literal
}

func (r ignoreRule) matches(topic string) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(topic)
	}
	return topic == r.raw
}

// IgnoreFilter decides which topics are exempt from transformation.
//
// Rules are compiled once at construction and matched against the full
// topic name, so a rule "orders" does not match "orders-dlq". A rule that
// is valid regex is always treated as regex: "my.topic" matches "myxtopic"
// because the dot is a metacharacter, not a literal.
type IgnoreFilter struct {
	rules []ignoreRule
}

// NewIgnoreFilter compiles the given rules. A rule that is not valid
// regular expression syntax falls back to literal topic-name equality; the
// degradation is logged, never returned as an error.
func NewIgnoreFilter(rules []string, logger Logger) *IgnoreFilter {
	f := &IgnoreFilter{rules: make([]ignoreRule, 0, len(rules))}
	for _, raw := range rules {
		pattern, err := regexp.Compile(anchorRule(raw))
		if err != nil {
			if logger != nil {
				logger.InfoWithContext(context.Background(), "Ignore rule is not valid regex, falling back to literal topic match", err, map[string]interface{}{
					"rule": raw,
				})
			}
			f.rules = append(f.rules, ignoreRule{raw: raw})
			continue
		}
		f.rules = append(f.rules, ignoreRule{raw: raw, pattern: pattern})
	}
	return f
}

// anchorRule wraps a rule so it must match the entire topic name.
func anchorRule(rule string) string {
	return `\A(?:` + rule + `)\z`
}

// ShouldIgnore reports whether records from topic skip transformation.
// Any matching rule is sufficient.
func (f *IgnoreFilter) ShouldIgnore(topic string) bool {
	for _, rule := range f.rules {
		if rule.matches(topic) {
			return true
		}
	}
	return false
}
