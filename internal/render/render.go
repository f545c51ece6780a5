// Package render turns catalog verbs into display text for a tense and level.
//
// Tense adaptation is purely lexical: a whole-word, case-insensitive
// substitution over the verb's own known inflections (base, past, participle).
// It never adjusts agreement or surrounding words.
package render

import (
	"regexp"
	"sort"
	"strings"

	"go_verb_master/internal/model"
)

// RenderForm returns the verb form shown for the tense.
func RenderForm(v model.Verb, tense model.Tense) string {
	switch tense {
	case model.TensePast:
		return v.PastForm()
	case model.TenseFuture:
		return "will " + v.Base
	default:
		return v.Base
	}
}

// exampleOrder lists which level examples are tried, in order, for a requested level.
var exampleOrder = map[model.Level][]model.Level{
	model.LevelA1: {model.LevelA1, model.LevelB1, model.LevelB2},
	model.LevelB1: {model.LevelB1, model.LevelA1, model.LevelB2},
	model.LevelB2: {model.LevelB2, model.LevelB1, model.LevelA1},
}

// ExampleFor returns the example sentence for the level, falling back to the
// other levels. Unknown levels use the B2 order. Returns "" when the verb has none.
func ExampleFor(v model.Verb, level model.Level) string {
	order, ok := exampleOrder[level]
	if !ok {
		order = exampleOrder[model.LevelB2]
	}
	for _, l := range order {
		if ex := v.Examples[l]; ex != "" {
			return ex
		}
	}
	return ""
}

// AdaptExample rewrites every whole-word occurrence of the verb's base, past or
// participle form into the form for the tense. Text without a match is returned unchanged.
func AdaptExample(text string, v model.Verb, tense model.Tense) string {
	if text == "" {
		return ""
	}
	re := inflectionPattern(v)
	if re == nil {
		return text
	}
	return re.ReplaceAllLiteralString(text, RenderForm(v, tense))
}

// inflectionPattern builds \b(form1|form2|...)\b over the verb's distinct forms,
// longest first so that a longer form wins over its own prefix.
func inflectionPattern(v model.Verb) *regexp.Regexp {
	seen := map[string]bool{}
	var forms []string
	for _, f := range []string{v.Base, v.Past, v.Participle} {
		f = strings.TrimSpace(f)
		key := strings.ToLower(f)
		if f == "" || seen[key] {
			continue
		}
		seen[key] = true
		forms = append(forms, regexp.QuoteMeta(f))
	}
	if len(forms) == 0 {
		return nil
	}
	sort.SliceStable(forms, func(i, j int) bool { return len(forms[i]) > len(forms[j]) })
	return regexp.MustCompile(`(?i)\b(` + strings.Join(forms, "|") + `)\b`)
}

// MaskFirst replaces the first whole-word, case-insensitive match of form with blank.
// ok is false when form does not occur in text.
func MaskFirst(text, form, blank string) (masked string, ok bool) {
	form = strings.TrimSpace(form)
	if text == "" || form == "" {
		return text, false
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(form) + `\b`)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + blank + text[loc[1]:], true
}

// MatchesUtterance reports whether a captured transcript contains the verb's base
// or its rendered form for the tense, ignoring case.
func MatchesUtterance(transcript string, v model.Verb, tense model.Tense) bool {
	t := strings.ToLower(strings.TrimSpace(transcript))
	if t == "" {
		return false
	}
	if v.Base != "" && strings.Contains(t, strings.ToLower(v.Base)) {
		return true
	}
	form := strings.ToLower(RenderForm(v, tense))
	return form != "" && strings.Contains(t, form)
}
