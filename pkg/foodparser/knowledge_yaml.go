package foodparser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidEntry    = errors.New("invalid knowledge base entry")
)

type knowledgeFile struct {
	ShelfLife        []shelfLifeYAML     `yaml:"shelf_life"`
	CategoryDefaults map[string]int      `yaml:"category_defaults"`
	Classifier       []keywordRuleYAML   `yaml:"classifier"`
	CategoryTags     map[string][]string `yaml:"category_tags"`
	FruitKeywords    []string            `yaml:"fruit_keywords"`
	MealTimeTags     []mealTimeYAML      `yaml:"meal_time_tags"`
	PadTag           string              `yaml:"pad_tag"`
}

type shelfLifeYAML struct {
	Keyword string `yaml:"keyword"`
	Days    int    `yaml:"days"`
}

type keywordRuleYAML struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

type mealTimeYAML struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// LoadKnowledgeBase decodes a YAML knowledge base. Sections missing from the
// document keep the compiled-in defaults; sections present replace them
// entirely, preserving document order.
func LoadKnowledgeBase(r io.Reader) (*KnowledgeBase, error) {
	var f knowledgeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}

	kb := DefaultKnowledgeBase()

	if f.ShelfLife != nil {
		kb.ShelfLife = make([]ShelfLifeEntry, 0, len(f.ShelfLife))
		for i, e := range f.ShelfLife {
			kw := normalizeKeyword(e.Keyword)
			if kw == "" || e.Days <= 0 {
				return nil, fmt.Errorf("%w: shelf_life[%d] needs a keyword and positive days", ErrInvalidEntry, i)
			}
			kb.ShelfLife = append(kb.ShelfLife, ShelfLifeEntry{Keyword: kw, Days: e.Days})
		}
	}

	if f.CategoryDefaults != nil {
		kb.CategoryDefaults = make(map[Category]int, len(f.CategoryDefaults))
		for name, days := range f.CategoryDefaults {
			c, ok := ParseCategory(name)
			if !ok {
				return nil, fmt.Errorf("%w: category_defaults %q", ErrUnknownCategory, name)
			}
			if days <= 0 {
				return nil, fmt.Errorf("%w: category_defaults %q needs positive days", ErrInvalidEntry, name)
			}
			kb.CategoryDefaults[c] = days
		}
	}

	if f.Classifier != nil {
		kb.ClassifierRules = make([]ClassifierRule, 0, len(f.Classifier))
		for i, r := range f.Classifier {
			c, ok := ParseCategory(r.Category)
			if !ok {
				return nil, fmt.Errorf("%w: classifier[%d] %q", ErrUnknownCategory, i, r.Category)
			}
			kws := normalizeKeywords(r.Keywords)
			if len(kws) == 0 {
				return nil, fmt.Errorf("%w: classifier[%d] has no keywords", ErrInvalidEntry, i)
			}
			kb.ClassifierRules = append(kb.ClassifierRules, ClassifierRule{Category: c, Keywords: kws})
		}
	}

	if f.CategoryTags != nil {
		kb.CategoryTags = make(map[Category][]string, len(f.CategoryTags))
		for name, tags := range f.CategoryTags {
			c, ok := ParseCategory(name)
			if !ok {
				return nil, fmt.Errorf("%w: category_tags %q", ErrUnknownCategory, name)
			}
			kb.CategoryTags[c] = normalizeKeywords(tags)
		}
	}

	if f.FruitKeywords != nil {
		kb.FruitKeywords = normalizeKeywords(f.FruitKeywords)
	}

	if f.MealTimeTags != nil {
		kb.MealTimeRules = make([]MealTimeRule, 0, len(f.MealTimeTags))
		for i, r := range f.MealTimeTags {
			tag := normalizeKeyword(r.Tag)
			kws := normalizeKeywords(r.Keywords)
			if tag == "" || len(kws) == 0 {
				return nil, fmt.Errorf("%w: meal_time_tags[%d] needs a tag and keywords", ErrInvalidEntry, i)
			}
			kb.MealTimeRules = append(kb.MealTimeRules, MealTimeRule{Tag: tag, Keywords: kws})
		}
	}

	if pad := normalizeKeyword(f.PadTag); pad != "" {
		kb.PadTag = pad
	}

	return kb, nil
}

func normalizeKeyword(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if kw := normalizeKeyword(s); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
