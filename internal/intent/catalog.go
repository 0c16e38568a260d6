// Package intent provides lexical intent recognition over a declarative
// catalog of keyword and pattern rules.
package intent

import (
	"regexp"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

// Intent is one catalog entry. Keywords are matched as substrings of the
// lowercased message; Patterns run against the original message. Catalog
// order is significant: score ties resolve to the earliest entry.
type Intent struct {
	Name     string
	Keywords []string
	Patterns []*regexp.Regexp
	Action   domain.ActionID
}

// DefaultCatalog returns the built-in intent catalog. The returned slice is
// freshly allocated; callers may not mutate entries shared across calls.
func DefaultCatalog() []Intent {
	return []Intent{
		{
			Name:     "FIND_LOCATION",
			Keywords: []string{"nerede", "yakın", "toplama noktası", "toplama merkezi", "adres", "konum", "bırakabilirim", "götürebilirim"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)en yakın.*nerede`),
				regexp.MustCompile(`(?i)yakın.*toplama`),
				regexp.MustCompile(`(?i)nerede.*bırak`),
				regexp.MustCompile(`(?i)nereye.*götür`),
				regexp.MustCompile(`(?i)hangi.*nokta`),
			},
			Action: domain.ActionShowNearbyPoints,
		},
		{
			Name:     "HOW_TO_RECYCLE",
			Keywords: []string{"nasıl", "geri dönüşüm", "bildir", "yükle", "süreç", "adımlar", "işlem"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)nasıl.*geri.*dönüş`),
				regexp.MustCompile(`(?i)nasıl.*bildir`),
				regexp.MustCompile(`(?i)süreç.*ne`),
				regexp.MustCompile(`(?i)ne.*yapmalı`),
			},
			Action: domain.ActionShowRecycleGuide,
		},
		{
			Name:     "WHAT_IS_EWASTE",
			Keywords: []string{"e-atık nedir", "elektronik atık", "nedir", "ne demek", "tanım", "açıklama"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)e-atık.*nedir`),
				regexp.MustCompile(`(?i)elektronik.*atık.*ne`),
				regexp.MustCompile(`(?i)nedir.*e-atık`),
			},
			Action: domain.ActionShowEWasteInfo,
		},
		{
			Name:     "CHECK_DEVICE_VALUE",
			Keywords: []string{"değer", "fiyat", "kaç para", "ne kadar", "ücret", "kazanç"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)ne kadar.*değer`),
				regexp.MustCompile(`(?i)kaç.*para`),
				regexp.MustCompile(`(?i)değer.*ne`),
				regexp.MustCompile(`(?i)fiyat.*ne`),
			},
			Action: domain.ActionEstimateValue,
		},
		{
			Name:     "SHOW_IMPACT",
			Keywords: []string{"etki", "tasarruf", "co2", "çevre", "katkı", "fayda", "istatistik"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)ne kadar.*etki`),
				regexp.MustCompile(`(?i)çevre.*etki`),
				regexp.MustCompile(`(?i)co2.*tasarruf`),
				regexp.MustCompile(`(?i)istatistik`),
			},
			Action: domain.ActionShowImpact,
		},
		{
			// Keywords are kept to the two canonical greetings so a bare
			// "merhaba" clears the action threshold; the long tail of
			// greeting forms is covered by patterns only.
			Name:     "GREETING",
			Keywords: []string{"merhaba", "selam"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)^merhaba$`),
				regexp.MustCompile(`(?i)^selam$`),
				regexp.MustCompile(`(?i)^hey$`),
				regexp.MustCompile(`(?i)^hi$`),
				regexp.MustCompile(`(?i)^hello$`),
				regexp.MustCompile(`(?i)^günaydın`),
				regexp.MustCompile(`(?i)^iyi günler`),
			},
			Action: domain.ActionGreet,
		},
		{
			Name:     "HELP",
			Keywords: []string{"yardım", "help"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)yardım`),
				regexp.MustCompile(`(?i)ne.*yapabilir`),
				regexp.MustCompile(`(?i)hangi.*özellik`),
				regexp.MustCompile(`(?i)seçenekler`),
				regexp.MustCompile(`(?i)komutlar`),
			},
			Action: domain.ActionShowHelp,
		},
		{
			Name:     "REPORT_PROBLEM",
			Keywords: []string{"sorun", "hata", "çalışmıyor", "problem", "bug", "şikayet"},
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)sorun.*var`),
				regexp.MustCompile(`(?i)çalışmıyor`),
				regexp.MustCompile(`(?i)hata.*aldım`),
			},
			Action: domain.ActionReportProblem,
		},
	}
}
