package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ewasteheroes/carbobot/internal/domain"
)

func TestBuildContextInfoEmpty(t *testing.T) {
	assert.Equal(t, "", BuildContextInfo(domain.PromptContext{}))
}

func TestBuildContextInfoOneLinePerField(t *testing.T) {
	ctx := domain.PromptContext{
		Surface:      domain.SurfaceWeb,
		UserLocation: &domain.GeoPoint{Lat: 41.0, Lon: 29.0},
		NearbyPoints: []string{"Kadıköy Merkez", "Üsküdar Nokta"},
		LastAction:   domain.ActionShowImpact,
	}

	info := BuildContextInfo(ctx)
	lines := strings.Split(strings.TrimPrefix(info, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, info, `"web"`)
	assert.Contains(t, info, "41, 29")
	assert.Contains(t, info, "Kadıköy Merkez, Üsküdar Nokta")
	assert.Contains(t, info, "showImpact")
}

func TestBuildContextInfoPartial(t *testing.T) {
	info := BuildContextInfo(domain.PromptContext{Surface: domain.SurfaceCLI})
	lines := strings.Split(strings.TrimPrefix(info, "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, info, `"cli"`)
	assert.NotContains(t, info, "konumu")
	assert.NotContains(t, info, "aksiyonu")
}

func TestBuildFullPrompt(t *testing.T) {
	ctx := domain.PromptContext{Surface: domain.SurfaceWeb, LastAction: domain.ActionGreet}

	full := BuildFullPrompt(ctx)
	assert.True(t, strings.HasPrefix(full, BuildSystemPrompt()))
	assert.True(t, strings.HasSuffix(full, BuildContextInfo(ctx)))
	assert.Contains(t, full, "CarboBot")
}

func TestBuildFullPromptPure(t *testing.T) {
	ctx := domain.PromptContext{Surface: domain.SurfaceCLI, LastIntent: "GREETING"}
	assert.Equal(t, BuildFullPrompt(ctx), BuildFullPrompt(ctx))
}
