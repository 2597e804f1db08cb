package models

import "strings"

const CategoryAbstract = "abstract"

type categoryRule struct {
	name     string
	keywords []string
}

// Order matters: the first rule with a matching keyword wins.
var categoryRules = []categoryRule{
	{"nature", []string{"forest", "mountain", "ocean", "sea", "river", "lake", "tree", "flower", "waterfall", "sunset", "sunrise", "beach", "desert", "jungle", "meadow", "nature", "landscape"}},
	{"space", []string{"galaxy", "nebula", "planet", "star", "cosmos", "space", "astronaut", "moon", "universe", "orbit", "comet"}},
	{"city", []string{"city", "street", "skyline", "building", "urban", "skyscraper", "downtown", "neon", "metropolis", "bridge"}},
	{"fantasy", []string{"dragon", "castle", "wizard", "magic", "fairy", "elf", "fantasy", "kingdom", "unicorn", "mythical"}},
	{"animals", []string{"cat", "dog", "wolf", "lion", "tiger", "bird", "fox", "horse", "owl", "whale", "animal", "deer"}},
	{"technology", []string{"robot", "cyberpunk", "circuit", "tech", "technology", "futuristic", "ai", "digital", "hologram", "machine"}},
	{"minimal", []string{"minimal", "minimalist", "simple", "clean", "gradient", "monochrome", "geometric"}},
}

// Categories lists every category Categorize can return.
func Categories() []string {
	out := make([]string, 0, len(categoryRules)+1)
	for _, r := range categoryRules {
		out = append(out, r.name)
	}
	return append(out, CategoryAbstract)
}

// Categorize picks a category from the words of prompt. A word matches a
// keyword in its singular or regular plural form.
func Categorize(prompt string) string {
	words := strings.FieldsFunc(strings.ToLower(prompt), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			for _, form := range wordForms(kw) {
				if _, ok := set[form]; ok {
					return rule.name
				}
			}
		}
	}
	return CategoryAbstract
}

func wordForms(kw string) []string {
	forms := []string{kw, kw + "s"}
	switch {
	case strings.HasSuffix(kw, "s"), strings.HasSuffix(kw, "x"),
		strings.HasSuffix(kw, "ch"), strings.HasSuffix(kw, "sh"):
		forms = append(forms, kw+"es")
	case strings.HasSuffix(kw, "y"):
		forms = append(forms, strings.TrimSuffix(kw, "y")+"ies")
	case strings.HasSuffix(kw, "f"):
		forms = append(forms, strings.TrimSuffix(kw, "f")+"ves")
	}
	return forms
}
