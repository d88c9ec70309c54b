package ports

import "context"

// LLMService define el puerto de salida para el resumen narrativo del tablero.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateText envía la instrucción y devuelve la respuesta en texto plano.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
