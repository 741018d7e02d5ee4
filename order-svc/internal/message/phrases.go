package message

import (
	_ "embed"
	"fmt"

	"menu-order/order-svc/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed phrases.yaml
var bundledPhrases []byte

// Phrases maps a language to its message-template strings.
type Phrases map[domain.Language]map[string]string

func LoadPhrases(data []byte) (Phrases, error) {
	var p Phrases
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse phrase table: %w", err)
	}
	return p, nil
}

// DefaultPhrases returns the bundled English/Arabic table.
func DefaultPhrases() Phrases {
	p, err := LoadPhrases(bundledPhrases)
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup returns the translation, or the key itself when it is missing.
func (p Phrases) Lookup(lang domain.Language, key string) string {
	if text, ok := p[lang][key]; ok && text != "" {
		return text
	}
	return key
}

// Table returns a copy of one language's phrases.
func (p Phrases) Table(lang domain.Language) map[string]string {
	out := make(map[string]string, len(p[lang]))
	for k, v := range p[lang] {
		out[k] = v
	}
	return out
}
