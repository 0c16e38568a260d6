// Package action executes local actions bound to recognized intents.
package action

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ewasteheroes/carbobot/internal/adapter/waste"
	"github.com/ewasteheroes/carbobot/internal/domain"
)

// maxPointsShown bounds how many collection points a reply lists.
const maxPointsShown = 3

// Handler maps action identifiers to their implementations.
type Handler struct {
	waste  *waste.Client
	logger *zap.Logger
}

// NewHandler creates a new action handler.
func NewHandler(wasteClient *waste.Client, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		waste:  wasteClient,
		logger: logger,
	}
}

// Execute runs the given action. A nil result means the action has no local
// answer and the caller should defer to the inference backend. Collaborator
// failures never propagate; they resolve to a templated apology that still
// short-circuits.
func (h *Handler) Execute(ctx context.Context, action domain.ActionID, message string) *domain.ActionResult {
	switch action {
	case domain.ActionShowNearbyPoints:
		return h.showNearbyPoints(ctx)
	case domain.ActionShowRecycleGuide:
		return shortCircuit(recycleGuideText)
	case domain.ActionShowEWasteInfo:
		return shortCircuit(ewasteInfoText)
	case domain.ActionEstimateValue:
		return shortCircuit(estimateValueText)
	case domain.ActionShowImpact:
		return h.showImpact(ctx)
	case domain.ActionGreet:
		return shortCircuit(greetText)
	case domain.ActionShowHelp:
		return shortCircuit(helpText)
	case domain.ActionReportProblem:
		return shortCircuit(reportProblemText)
	default:
		return nil
	}
}

func (h *Handler) showNearbyPoints(ctx context.Context) *domain.ActionResult {
	points, err := h.waste.ListPoints(ctx)
	if err != nil {
		h.logger.Warn("failed to list collection points", zap.Error(err))
		return shortCircuit(pointsUnavailableText)
	}

	if len(points) > maxPointsShown {
		points = points[:maxPointsShown]
	}

	var b strings.Builder
	b.WriteString("📍 Size en yakın toplama noktaları:\n\n")
	for i, p := range points {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&b, "   📍 %s\n", p.Address)
		fmt.Fprintf(&b, "   🗺️  Konum: %v, %v\n\n", p.Latitude, p.Longitude)
	}
	b.WriteString("💡 Haritada görmek için web uygulamasını ziyaret edin.")

	return shortCircuit(b.String())
}

func (h *Handler) showImpact(ctx context.Context) *domain.ActionResult {
	impact, err := h.waste.GetImpact(ctx)
	if err != nil {
		h.logger.Warn("failed to fetch impact summary", zap.Error(err))
		return shortCircuit(impactUnavailableText)
	}

	var b strings.Builder
	b.WriteString("🌱 Toplam Çevresel Etkimiz:\n\n")
	fmt.Fprintf(&b, "🌍 %.1f kg CO₂ tasarrufu\n", impact.TotalCO2Saved)
	fmt.Fprintf(&b, "💧 %.0f L su korundu\n", impact.TotalWaterSaved)
	fmt.Fprintf(&b, "⚡ %.0f kWh enerji\n", impact.TotalEnergyEquivalent)
	fmt.Fprintf(&b, "🌳 %.0f yıl ağaç emilimi\n\n", impact.TreesEquivalent)
	fmt.Fprintf(&b, "📱 %d cihaz geri dönüştürüldü\n", impact.TotalWasteProcessed)
	fmt.Fprintf(&b, "⚠️ %d yüksek riskli atık güvenle imha edildi\n\n", impact.HighRiskWastes)
	b.WriteString("Bu, şu anlama geliyor:\n")
	fmt.Fprintf(&b, "• %.1f km araba yolculuğu\n", impact.CarsOffRoad)
	fmt.Fprintf(&b, "• %d telefon şarjı\n", impact.PhonesCharged)
	fmt.Fprintf(&b, "• %.1f evin günlük enerji ihtiyacı\n\n", impact.TotalEnergyEquivalent/30)
	b.WriteString("Daha fazla detay: http://localhost:5173/impact")

	return shortCircuit(b.String())
}

func shortCircuit(message string) *domain.ActionResult {
	return &domain.ActionResult{
		Message:      message,
		ShortCircuit: true,
	}
}
