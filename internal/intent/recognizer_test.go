package intent

import (
	"regexp"
	"testing"

	"github.com/ewasteheroes/carbobot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecognizeDefaultCatalog(t *testing.T) {
	r := NewRecognizer(DefaultCatalog())

	tests := []struct {
		name       string
		message    string
		wantIntent string
		wantAction domain.ActionID
	}{
		{"greeting", "Merhaba", "GREETING", domain.ActionGreet},
		{"greeting-selam", "selam", "GREETING", domain.ActionGreet},
		{"find-location", "En yakın toplama noktası nerede?", "FIND_LOCATION", domain.ActionShowNearbyPoints},
		{"how-to-recycle", "Nasıl geri dönüşüm bildirebilirim?", "HOW_TO_RECYCLE", domain.ActionShowRecycleGuide},
		{"impact", "CO2 tasarrufumuz ne kadar, istatistik var mı?", "SHOW_IMPACT", domain.ActionShowImpact},
		{"help", "yardım", "HELP", domain.ActionShowHelp},
		{"problem", "Uygulama çalışmıyor, hata aldım", "REPORT_PROBLEM", domain.ActionReportProblem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Recognize(tt.message)
			assert.Equal(t, tt.wantIntent, got.Intent)
			assert.Equal(t, tt.wantAction, got.Action)
			assert.GreaterOrEqual(t, got.Confidence, 0.3)
		})
	}
}

func TestRecognizeGeneralFallback(t *testing.T) {
	r := NewRecognizer(DefaultCatalog())

	for _, msg := range []string{
		"asdkjasd random text",
		"",
		"   ",
		"the quick brown fox",
	} {
		got := r.Recognize(msg)
		assert.Equal(t, GeneralIntent, got.Intent, "message %q", msg)
		assert.Equal(t, 0.5, got.Confidence, "message %q", msg)
		assert.Equal(t, domain.ActionChat, got.Action, "message %q", msg)
	}
}

func TestRecognizeEmptyCatalog(t *testing.T) {
	r := NewRecognizer(nil)

	got := r.Recognize("merhaba")
	assert.Equal(t, GeneralIntent, got.Intent)
	assert.Equal(t, 0.5, got.Confidence)
	assert.Equal(t, domain.ActionChat, got.Action)
}

func TestRecognizeDeterministic(t *testing.T) {
	r := NewRecognizer(DefaultCatalog())

	first := r.Recognize("En yakın toplama noktası nerede?")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, r.Recognize("En yakın toplama noktası nerede?"))
	}
}

// Two intents with identical rules must resolve to the one declared first.
func TestRecognizeTieBreakCatalogOrder(t *testing.T) {
	catalog := []Intent{
		{Name: "FIRST", Keywords: []string{"ping"}, Action: domain.ActionID("first")},
		{Name: "SECOND", Keywords: []string{"ping"}, Action: domain.ActionID("second")},
	}
	r := NewRecognizer(catalog)

	got := r.Recognize("ping")
	assert.Equal(t, "FIRST", got.Intent)
	assert.Equal(t, domain.ActionID("first"), got.Action)
	assert.InDelta(t, 0.6, got.Confidence, 1e-9)
}

func TestRecognizeScoring(t *testing.T) {
	catalog := []Intent{
		{
			Name:     "BOTH",
			Keywords: []string{"alpha", "beta", "gamma"},
			Patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)^alpha`)},
			Action:   domain.ActionID("both"),
		},
	}
	r := NewRecognizer(catalog)

	// One keyword of three plus a pattern hit: 1/3*0.6 + 0.3.
	got := r.Recognize("Alpha test")
	assert.Equal(t, "BOTH", got.Intent)
	assert.InDelta(t, 0.5, got.Confidence, 1e-9)

	// Two keywords, no pattern: 2/3*0.6.
	got = r.Recognize("beta and gamma")
	assert.Equal(t, "BOTH", got.Intent)
	assert.InDelta(t, 0.4, got.Confidence, 1e-9)

	// Multiple pattern hits still add the flat weight once.
	multi := []Intent{{
		Name: "PAT",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`alpha`),
			regexp.MustCompile(`alp`),
		},
		Action: domain.ActionID("pat"),
	}}
	got = NewRecognizer(multi).Recognize("alpha")
	assert.Equal(t, "PAT", got.Intent)
	assert.InDelta(t, 0.3, got.Confidence, 1e-9)
}

// Patterns run against the raw message, not the normalized one.
func TestRecognizePatternsUseOriginalMessage(t *testing.T) {
	catalog := []Intent{{
		Name:     "CASED",
		Patterns: []*regexp.Regexp{regexp.MustCompile(`^MERHABA$`)},
		Action:   domain.ActionID("cased"),
	}}
	r := NewRecognizer(catalog)

	assert.Equal(t, "CASED", r.Recognize("MERHABA").Intent)
	assert.Equal(t, GeneralIntent, r.Recognize("merhaba").Intent)
}
