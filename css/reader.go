package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"themedstyler/ordered"
	"themedstyler/style"
)

// Rule is a single rule set as written in the theme file. Grouped selectors
// are kept as one comma separated string: theme merging splits them.
type Rule struct {
	Selector   string
	Properties *style.Props
}

// Sheet is the theme relevant content of a stylesheet.
type Sheet struct {
	Rules []Rule
	// Custom properties ("--name: value") from any rule, without leading dashes.
	Variables *ordered.Map[string]
	Warnings  []string
}

// RulesBySelector returns all rules whose selector group contains sel.
func (s *Sheet) RulesBySelector(sel string) []Rule {
	var out []Rule
	for _, r := range s.Rules {
		for part := range strings.SplitSeq(r.Selector, ",") {
			if strings.TrimSpace(part) == sel {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Reader turns CSS text into theme rule sets.
type Reader struct {
	log *zap.Logger
}

func NewReader(log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{log: log.Named("css-reader")}
}

// Read parses CSS text. It never fails: anything it does not understand is
// reported in Sheet.Warnings and skipped. The optional source parameter
// identifies what's being parsed (for debug logging).
func (r *Reader) Read(data []byte, source ...string) *Sheet {
	sheet := &Sheet{Variables: ordered.NewMap[string]()}

	if len(source) > 0 && source[0] != "" {
		r.log.Debug("Reading CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	p := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	// selectors of a group preceding a comma arrive one by one
	var group []string
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err.Error() != "EOF" {
				sheet.Warnings = append(sheet.Warnings, "parse error: "+err.Error())
				r.log.Debug("CSS parse error", zap.Error(err))
			}
			return sheet

		case css.BeginAtRuleGrammar:
			at := string(data)
			sheet.Warnings = append(sheet.Warnings, "unsupported at-rule block: "+at)
			r.log.Debug("Skipping @-rule", zap.String("rule", at))
			skipBlock(p)

		case css.AtRuleGrammar:
			r.log.Debug("Skipping @-rule", zap.String("rule", string(data)))

		case css.QualifiedRuleGrammar:
			if s := selectorText(data, p.Values()); s != "" {
				group = append(group, s)
			}

		case css.BeginRulesetGrammar:
			if s := selectorText(data, p.Values()); s != "" {
				group = append(group, s)
			}
			selector := strings.Join(group, ", ")
			group = group[:0]
			props := r.readDeclarations(p, sheet)
			if selector == "" {
				sheet.Warnings = append(sheet.Warnings, "rule without selector")
				continue
			}
			if props.Len() == 0 {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Properties: props})
		}
	}
}

func skipBlock(p *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// selectorText rebuilds selector group text, normalizing whitespace around
// commas.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	var parts []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.Join(strings.Fields(s), " "); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

func (r *Reader) readDeclarations(p *css.Parser, sheet *Sheet) *style.Props {
	props := style.NewProps()
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props

		case css.DeclarationGrammar:
			name := string(data)
			values := p.Values()
			if len(values) == 0 {
				continue
			}
			v, important := propertyValue(values)
			if important {
				sheet.Warnings = append(sheet.Warnings, "!important ignored for "+name)
			}
			props.Set(name, v)

		case css.CustomPropertyGrammar:
			name := strings.TrimPrefix(string(data), "--")
			var sb strings.Builder
			for _, t := range p.Values() {
				sb.Write(t.Data)
			}
			sheet.Variables.Set(name, strings.TrimSpace(sb.String()))

		case css.BeginRulesetGrammar, css.BeginAtRuleGrammar:
			sheet.Warnings = append(sheet.Warnings, "nested blocks are not supported")
			skipBlock(p)
		}
	}
}

// propertyValue converts declaration tokens to a property value. Lone
// numbers become numeric values, everything else keeps its text.
func propertyValue(tokens []css.Token) (style.Value, bool) {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(parts, ""))

	important := false
	if before, ok := strings.CutSuffix(raw, "important"); ok {
		if b, ok := strings.CutSuffix(strings.TrimSpace(before), "!"); ok {
			raw, important = strings.TrimSpace(b), true
		}
	}

	if significant := nonSpace(tokens); len(significant) == 1 && significant[0].TokenType == css.NumberToken {
		if n, ok := style.ParseNumber(raw); ok {
			return style.Number(n), important
		}
	}
	return style.String(unquote(raw)), important
}

func nonSpace(tokens []css.Token) []css.Token {
	out := make([]css.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			out = append(out, t)
		}
	}
	return out
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
