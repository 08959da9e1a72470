// Package rules holds the fixed set of match rules applied to filenames and
// file content: Cyrillic script, Extended Pictographic symbols, and
// whitespace-bounded ASCII emoticons.
package rules

import (
	"strings"
	"unicode"

	"github.com/dlclark/regexp2"

	"github.com/vvka-141/charlint/pkg/charlint"
)

// EmoticonPattern matches a face such as ":)", ";-P" or "8^D" bounded on both
// sides by whitespace or the edge of the line. Lookaround keeps the boundary
// characters out of the match and lets \s cover Unicode whitespace.
const EmoticonPattern = `(?<=^|\s)[:;=8][-~^]?[)(DPp](?=\s|$)`

// Rule is a single pattern check applied to a line of text or a filename.
type Rule interface {
	ID() charlint.RuleID
	Match(s string) bool
}

// tableRule matches if any rune belongs to a Unicode range table.
type tableRule struct {
	id    charlint.RuleID
	table *unicode.RangeTable
}

func (r *tableRule) ID() charlint.RuleID { return r.id }

func (r *tableRule) Match(s string) bool {
	return strings.IndexFunc(s, func(c rune) bool {
		return unicode.Is(r.table, c)
	}) >= 0
}

// patternRule matches a regexp2 expression anywhere in the input.
type patternRule struct {
	id charlint.RuleID
	re *regexp2.Regexp
}

func (r *patternRule) ID() charlint.RuleID { return r.id }

func (r *patternRule) Match(s string) bool {
	ok, err := r.re.MatchString(s)
	// regexp2 only errors on match timeout, which is unset
	return err == nil && ok
}

var (
	cyrillic     Rule = &tableRule{id: charlint.RuleCyrillic, table: unicode.Cyrillic}
	pictographic Rule = &tableRule{id: charlint.RulePictographic, table: ExtendedPictographic}
	emoticon     Rule = &patternRule{id: charlint.RuleEmoticon, re: regexp2.MustCompile(EmoticonPattern, regexp2.None)}
)

// Cyrillic returns the rule matching any character of the Cyrillic script.
func Cyrillic() Rule { return cyrillic }

// Pictographic returns the rule matching any Extended_Pictographic character.
func Pictographic() Rule { return pictographic }

// Emoticon returns the whitespace-anchored ASCII emoticon rule.
func Emoticon() Rule { return emoticon }

// Filename returns the rules applied to a file's base name.
func Filename() []Rule {
	return []Rule{cyrillic}
}

// Content returns the rules applied to each line, in evaluation order.
func Content() []Rule {
	return []Rule{cyrillic, pictographic, emoticon}
}

// FirstMatch returns the first rule in rs that matches s.
// Later rules are not evaluated once one matches.
func FirstMatch(rs []Rule, s string) (Rule, bool) {
	for _, r := range rs {
		if r.Match(s) {
			return r, true
		}
	}
	return nil, false
}
