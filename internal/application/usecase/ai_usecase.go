package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdoulayediaw-ops/orsre/internal/application/dto"
	"github.com/abdoulayediaw-ops/orsre/internal/application/ports"
	"github.com/abdoulayediaw-ops/orsre/internal/domain/entity"
	"github.com/abdoulayediaw-ops/orsre/pkg/logger"
)

// FallbackInsight mensaje fijo cuando el asistente falla, tarda demasiado o responde vacío.
const FallbackInsight = "L'assistant IA est temporairement indisponible."

// AIMetrics contador de resultados del resumen narrativo.
type AIMetrics interface {
	InsightResult(result string)
}

type nopAIMetrics struct{}

func (nopAIMetrics) InsightResult(string) {}

// AIUseCase orquesta el resumen narrativo del tablero.
// Cada llamada al LLM lleva su propio timeout y nunca devuelve error al llamante.
type AIUseCase struct {
	store   ports.SnapshotStore
	llm     ports.LLMService
	timeout time.Duration
	metrics AIMetrics
	log     *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
// llm puede ser nil (sin API key): se responde siempre con el mensaje de respaldo.
func NewAIUseCase(store ports.SnapshotStore, llm ports.LLMService, timeout time.Duration, metrics AIMetrics, log *logger.Logger) *AIUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if metrics == nil {
		metrics = nopAIMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AIUseCase{store: store, llm: llm, timeout: timeout, metrics: metrics, log: log.Component("ai")}
}

// Insights genera el resumen a partir de una copia del snapshot; no retiene el lock del store.
func (uc *AIUseCase) Insights(ctx context.Context) dto.InsightsDTO {
	if uc.llm == nil {
		uc.metrics.InsightResult("disabled")
		return dto.InsightsDTO{Summary: FallbackInsight, Fallback: true}
	}
	d, err := uc.store.Get()
	if err != nil {
		uc.log.Error().Err(err).Msg("no se pudo leer el snapshot")
		uc.metrics.InsightResult("error")
		return dto.InsightsDTO{Summary: FallbackInsight, Fallback: true}
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.GenerateText(ctx, BuildInsightPrompt(&d))
	if err != nil {
		result := "error"
		if ctx.Err() == context.DeadlineExceeded {
			result = "timeout"
		}
		uc.log.Warn().Err(err).Str("result", result).Msg("asistente IA no disponible")
		uc.metrics.InsightResult(result)
		return dto.InsightsDTO{Summary: FallbackInsight, Fallback: true}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		uc.log.Warn().Msg("asistente IA devolvió respuesta vacía")
		uc.metrics.InsightResult("empty")
		return dto.InsightsDTO{Summary: FallbackInsight, Fallback: true}
	}
	uc.metrics.InsightResult("ok")
	return dto.InsightsDTO{Summary: text}
}

// BuildInsightPrompt arma la instrucción en francés con los conteos agregados del snapshot.
func BuildInsightPrompt(d *entity.AppData) string {
	var stocks []string
	for i := range d.Warehouses {
		w := &d.Warehouses[i]
		parts := make([]string, 0, len(w.Stock))
		for _, crop := range sortedCrops(w.Stock) {
			parts = append(parts, fmt.Sprintf("%s %d kg", crop, w.Stock[crop]))
		}
		stocks = append(stocks, fmt.Sprintf("%s: {%s}", w.Name, strings.Join(parts, ", ")))
	}

	var b strings.Builder
	b.WriteString("En tant qu'expert en logistique agricole pour la plateforme ORSRE, analyse les données suivantes ")
	b.WriteString("et fournis un résumé concis (max 150 mots) en français sur l'état des stocks, ")
	b.WriteString("les mouvements récents et les points d'attention :\n\n")
	b.WriteString("Données :\n")
	fmt.Fprintf(&b, "- Nombre d'entrepôts : %d\n", len(d.Warehouses))
	fmt.Fprintf(&b, "- Mouvements totaux : %d\n", len(d.Movements))
	fmt.Fprintf(&b, "- Stocks par entrepôt : %s\n", strings.Join(stocks, "; "))
	fmt.Fprintf(&b, "- Mouvements en attente : %d\n\n", d.PendingCount())
	b.WriteString("Donne des recommandations stratégiques.")
	return b.String()
}
