package rendering

import (
	"context"

	orderapp "github.com/osworks/backend/internal/application/order"
	"github.com/osworks/backend/internal/domain/shared"
)

// DisabledRenderer is used when PDF rendering is turned off. Callers get a
// domain error they can map to a clear response instead of a Chrome failure.
type DisabledRenderer struct{}

func (DisabledRenderer) RenderQuote(context.Context, orderapp.OrderResponse) ([]byte, error) {
	return nil, shared.NewDomainError("RENDERING_DISABLED", "quote rendering is disabled on this instance")
}

func (DisabledRenderer) Close() {}
