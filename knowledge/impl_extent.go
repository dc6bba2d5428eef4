// SPDX-License-Identifier: MIT

package knowledge

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
)

func isWildcard(spec string) bool { return strings.Contains(spec, "*") }

// acceptName applies the name checker, logging rejections.
func (k *Knowledge) acceptName(name string) bool {
	if isWildcard(name) {
		return true
	}
	if !k.nameOK(name) {
		k.logger.Warn("knowledge: ignoring illegal variable name", slog.String("name", name))
		return false
	}
	return true
}

// compile returns anchored regexps for the comma-separated fragments of spec.
func (k *Knowledge) compile(spec string) []*regexp.Regexp {
	k.patternsMu.RLock()
	cached, ok := k.patterns[spec]
	k.patternsMu.RUnlock()
	if ok {
		return cached
	}
	var res []*regexp.Regexp
	for _, frag := range strings.Split(spec, ",") {
		frag = strings.TrimSpace(frag)
		if frag == "" {
			continue
		}
		parts := strings.Split(frag, "*")
		for i, p := range parts {
			parts[i] = regexp.QuoteMeta(p)
		}
		res = append(res, regexp.MustCompile("^"+strings.Join(parts, ".*")+"$"))
	}
	k.patternsMu.Lock()
	k.patterns[spec] = res
	k.patternsMu.Unlock()
	return res
}

// covers reports whether spec's extent contains name.
func (k *Knowledge) covers(spec, name string) bool {
	if _, ok := k.known[name]; !ok {
		return false
	}
	if !isWildcard(spec) {
		return spec == name
	}
	for _, re := range k.compile(spec) {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Extent returns the sorted known names matched by spec.
func (k *Knowledge) Extent(spec string) []string {
	if !isWildcard(spec) {
		if _, ok := k.known[spec]; ok {
			return []string{spec}
		}
		return nil
	}
	var out []string
	for name := range k.known {
		if k.covers(spec, name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (k *Knowledge) coversAny(specs []string, name string) bool {
	for _, s := range specs {
		if k.covers(s, name) {
			return true
		}
	}
	return false
}

func (k *Knowledge) extentOf(specs []string) []string {
	seen := map[string]struct{}{}
	for _, s := range specs {
		for _, n := range k.Extent(s) {
			seen[n] = struct{}{}
		}
	}
	return sortedSet(seen)
}

func sortedSet(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for n := range m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
