// SPDX-License-Identifier: MIT

package knowledge

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/tokenizer"
)

// Section keywords of the knowledge text format.
const (
	Header             = "/knowledge"
	SectionTemporal    = "addtemporal"
	SectionForbidden   = "forbiddirect"
	SectionRequired    = "requiredirect"
	SectionForbidGroup = "forbiddengroup"
	SectionRequireGrp  = "requiredgroup"
)

func sectionOf(line string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(line))
	switch s {
	case SectionTemporal, SectionForbidden, SectionRequired, SectionForbidGroup, SectionRequireGrp:
		return s, true
	}
	return "", false
}

// String renders k in the knowledge text format. Tiers are written 1-based; a
// trailing "*" marks a forbidden-within tier.
func (k *Knowledge) String() string {
	var sb strings.Builder
	sb.WriteString(Header)
	sb.WriteString("\n\n")
	sb.WriteString(SectionTemporal)
	sb.WriteString("\n")
	for i := range k.tiers {
		members := k.Tier(i)
		if len(members) == 0 && !k.forbiddenWithin[i] {
			continue
		}
		sb.WriteString(strconv.Itoa(i + 1))
		if k.forbiddenWithin[i] {
			sb.WriteString("*")
		}
		for _, m := range members {
			sb.WriteString(" ")
			sb.WriteString(m)
		}
		sb.WriteString("\n")
	}

	writeRules := func(section string, rules []rule) {
		sb.WriteString("\n")
		sb.WriteString(section)
		sb.WriteString("\n")
		for _, r := range rules {
			sb.WriteString(r.from)
			sb.WriteString(" ")
			sb.WriteString(r.to)
			sb.WriteString("\n")
		}
	}
	writeRules(SectionForbidden, k.forbidden)
	writeRules(SectionRequired, k.required)

	writeGroups := func(section string, kind GroupKind) {
		var body strings.Builder
		for _, g := range k.groups {
			if g.Kind != kind || len(g.From) == 0 || len(g.To) == 0 {
				continue
			}
			body.WriteString(strings.Join(g.From, " "))
			body.WriteString("\n")
			body.WriteString(strings.Join(g.To, " "))
			body.WriteString("\n")
		}
		if body.Len() == 0 {
			return
		}
		sb.WriteString("\n")
		sb.WriteString(section)
		sb.WriteString("\n")
		sb.WriteString(body.String())
	}
	writeGroups(SectionForbidGroup, ForbiddenGroup)
	writeGroups(SectionRequireGrp, RequiredGroup)
	return sb.String()
}

// Parse reads the knowledge text format from r using whitespace-delimited lines and
// "//" comments.
func Parse(r io.Reader, opts ...Option) (*Knowledge, error) {
	l := tokenizer.NewLineizer(r, tokenizer.DefaultCommentMarker)
	return ParseLines(l, tokenizer.WhitespaceDelimiter, opts...)
}

// ParseLines consumes the remaining lines of l as a knowledge section. A leading
// "/knowledge" line is optional. Tier numbers are 1-based in the text.
//
// Implementation:
//   - Stage 1: skip the header, then require a section keyword.
//   - Stage 2: dispatch lines to the current section until another keyword appears.
//   - Stage 3: report malformed lines as ErrSyntax with the 1-based line number.
func ParseLines(l *tokenizer.Lineizer, delim tokenizer.Delimiter, opts ...Option) (*Knowledge, error) {
	k := New(opts...)
	section := ""
	for {
		line, ok := l.NextLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if section == "" && strings.HasPrefix(strings.ToLower(trimmed), Header) {
			continue
		}
		if s, ok := sectionOf(trimmed); ok {
			section = s
			continue
		}
		lineNo := l.LineNumber()
		tokens := nonEmpty(tokenizer.Split(line, delim, tokenizer.DefaultQuote))

		switch section {
		case "":
			return nil, errors.Wrapf(ErrSyntax, "line %d: expected a section keyword, got %q", lineNo, trimmed)
		case SectionTemporal:
			if err := k.parseTierLine(tokens, lineNo); err != nil {
				return nil, err
			}
		case SectionForbidden, SectionRequired:
			if len(tokens) > 2 {
				return nil, errors.Wrapf(ErrSyntax, "line %d: line contains more than two elements", lineNo)
			}
			if len(tokens) < 2 {
				return nil, errors.Wrapf(ErrSyntax, "line %d: line contains fewer than two elements", lineNo)
			}
			from, to := dotted(tokens[0]), dotted(tokens[1])
			if section == SectionForbidden {
				k.SetForbidden(from, to)
			} else {
				k.SetRequired(from, to)
			}
		case SectionForbidGroup, SectionRequireGrp:
			next, ok := l.NextLine()
			if !ok {
				return nil, errors.Wrapf(ErrSyntax, "line %d: group is missing its second line", lineNo)
			}
			kind := ForbiddenGroup
			if section == SectionRequireGrp {
				kind = RequiredGroup
			}
			k.AddKnowledgeGroup(Group{
				Kind: kind,
				From: dottedAll(tokens),
				To:   dottedAll(nonEmpty(tokenizer.Split(next, delim, tokenizer.DefaultQuote))),
			})
		}
	}
	if err := l.Err(); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *Knowledge) parseTierLine(tokens []string, lineNo int) error {
	if len(tokens) == 0 {
		return nil
	}
	head := tokens[0]
	within := strings.HasSuffix(head, "*")
	head = strings.TrimSuffix(head, "*")
	tier, err := strconv.Atoi(head)
	if err != nil {
		return errors.Wrapf(ErrSyntax, "line %d: expected a tier number, got %q", lineNo, tokens[0])
	}
	if tier < 1 {
		return errors.Wrapf(ErrSyntax, "line %d: tiers must be 1, 2, 3...", lineNo)
	}
	tier--
	k.ensureTiers(tier)
	if within {
		_ = k.SetTierForbiddenWithin(tier, true)
	}
	for _, name := range tokens[1:] {
		_ = k.AddToTier(tier, dotted(name))
	}
	return nil
}

func nonEmpty(tokens []string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// dotted replaces spaces inside a (quoted) name with periods.
func dotted(name string) string { return strings.ReplaceAll(strings.TrimSpace(name), " ", ".") }

func dottedAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = dotted(n)
	}
	return out
}
