package cart

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// StorageKeyPrefix replica la clave que usaba el storage del navegador.
const StorageKeyPrefix = "frikioteca-cart:"

// Store es el slot durable del carrito, uno por sesión. Cada mutación
// sobreescribe la lista completa; el último escritor gana.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]Item, error)
	Save(ctx context.Context, sessionID string, items []Item) error
	Delete(ctx context.Context, sessionID string) error
}

// decodeItems deserializa el valor guardado. Un valor corrupto se trata
// como carrito vacío: se loguea y nunca se propaga al caller.
func decodeItems(logger *zap.Logger, sessionID string, raw []byte) []Item {
	if len(raw) == 0 {
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.Warn("stored cart is corrupt, falling back to empty",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return []Item{}
	}

	if items == nil {
		items = []Item{}
	}
	return items
}

func encodeItems(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}
