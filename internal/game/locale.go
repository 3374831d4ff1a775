package game

import "golang.org/x/text/language"

// Translator looks up a UI string for key in the given locale.
type Translator func(key, locale string) string

func identityTranslator(key, _ string) string { return key }

// Catalog is the built-in string table. The first tag is the fallback.
type Catalog struct {
	tags    []language.Tag
	strings map[language.Tag]map[string]string
	matcher language.Matcher
}

var builtinStrings = []struct {
	tag     language.Tag
	entries map[string]string
}{
	{language.English, map[string]string{
		"ready": "Ready?", "go": "Go!", "draw": "Connect 3 matching chips",
		"cta": "PLAY NOW", "logo": "Chip Trail",
	}},
	{language.German, map[string]string{
		"ready": "Bereit?", "go": "Los!", "draw": "Verbinde 3 gleiche Chips",
		"cta": "JETZT SPIELEN",
	}},
	{language.French, map[string]string{
		"ready": "Prêt ?", "go": "Partez !", "draw": "Reliez 3 jetons identiques",
		"cta": "JOUER",
	}},
	{language.Spanish, map[string]string{
		"ready": "¿Listo?", "go": "¡Ya!", "draw": "Une 3 fichas iguales",
		"cta": "JUEGA YA",
	}},
	{language.BrazilianPortuguese, map[string]string{
		"ready": "Pronto?", "go": "Já!", "draw": "Ligue 3 fichas iguais",
		"cta": "JOGUE AGORA",
	}},
	{language.Russian, map[string]string{
		"ready": "Готов?", "go": "Вперёд!", "draw": "Соедини 3 одинаковые фишки",
		"cta": "ИГРАТЬ",
	}},
}

// NewCatalog returns the catalog of built-in strings.
func NewCatalog() *Catalog {
	c := &Catalog{strings: make(map[language.Tag]map[string]string, len(builtinStrings))}
	for _, b := range builtinStrings {
		c.tags = append(c.tags, b.tag)
		c.strings[b.tag] = b.entries
	}
	c.matcher = language.NewMatcher(c.tags)
	return c
}

// Resolve returns the supported tag closest to locale.
func (c *Catalog) Resolve(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return c.tags[0]
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.tags[0]
	}
	return c.tags[idx]
}

// T implements Translator. Missing keys fall back to English, then to the key.
func (c *Catalog) T(key, locale string) string {
	if s, ok := c.strings[c.Resolve(locale)][key]; ok {
		return s
	}
	if s, ok := c.strings[c.tags[0]][key]; ok {
		return s
	}
	return key
}
