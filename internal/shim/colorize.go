// Package shim runs a command under a pseudo-terminal and highlights status
// keywords in its output.
package shim

import (
	"bytes"
	"io"

	"github.com/muesli/termenv"
)

// Rule highlights every occurrence of Keyword in Color. Matching is
// case-sensitive.
type Rule struct {
	Keyword string
	Color   termenv.Color
}

// DefaultRules colour failures red, warnings yellow and successes green, in
// lower, upper and title case.
func DefaultRules() []Rule {
	var rules []Rule
	add := func(color termenv.Color, words ...string) {
		for _, w := range words {
			rules = append(rules, Rule{Keyword: w, Color: color})
		}
	}
	add(termenv.ANSIRed, "error", "ERROR", "Error")
	add(termenv.ANSIYellow, "warning", "WARNING", "Warning")
	add(termenv.ANSIGreen, "success", "SUCCESS", "Success")
	add(termenv.ANSIRed, "failed", "FAILED", "Failed")
	return rules
}

type compiledRule struct {
	keyword []byte
	styled  []byte
}

// Colorizer rewrites output chunks, wrapping keywords in colour sequences
// for its profile. Keywords split across two chunks are left as they are.
type Colorizer struct {
	rules []compiledRule
	first [256]bool
}

// NewColorizer compiles rules for profile. With termenv.Ascii the output is
// left untouched. Nil rules means DefaultRules.
func NewColorizer(profile termenv.Profile, rules []Rule) *Colorizer {
	if rules == nil {
		rules = DefaultRules()
	}
	c := &Colorizer{}
	for _, r := range rules {
		if r.Keyword == "" {
			continue
		}
		styled := profile.String(r.Keyword).Foreground(profile.Convert(r.Color)).String()
		c.rules = append(c.rules, compiledRule{keyword: []byte(r.Keyword), styled: []byte(styled)})
		c.first[r.Keyword[0]] = true
	}
	return c
}

// Colorize returns chunk with every keyword occurrence styled.
func (c *Colorizer) Colorize(chunk []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(chunk))
	last := 0
	for i := 0; i < len(chunk); {
		if !c.first[chunk[i]] {
			i++
			continue
		}
		matched := false
		for _, r := range c.rules {
			if bytes.HasPrefix(chunk[i:], r.keyword) {
				out.Write(chunk[last:i])
				out.Write(r.styled)
				i += len(r.keyword)
				last = i
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	out.Write(chunk[last:])
	return out.Bytes()
}

// Writer returns an io.Writer that colorizes each Write before passing it
// to w.
func (c *Colorizer) Writer(w io.Writer) io.Writer {
	return &colorWriter{c: c, w: w}
}

type colorWriter struct {
	c *Colorizer
	w io.Writer
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	if _, err := cw.w.Write(cw.c.Colorize(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
