package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/finance"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
)

// FinanceService handles finance movement use cases. Listing goes through the
// reconciliation view: each movement is outer joined to its service order
// total and the stored value is repaired when it sits at the wrong scale.
type FinanceService struct {
	movements finance.MovementRepository
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(movements finance.MovementRepository) *FinanceService {
	return &FinanceService{movements: movements}
}

// List returns movements matching the filter, newest first. Each row is
// reconciled against the linked service order total; rows whose link no
// longer resolves to a service order are dropped from the listing.
func (s *FinanceService) List(ctx context.Context, req ListMovementsRequest) ([]MovementResponse, error) {
	filter := finance.MovementFilter{
		Type:           derefOr(normalize.Enum(req.Type, finance.Types...), ""),
		Status:         derefOr(normalize.Enum(req.Status, finance.Statuses...), ""),
		Category:       derefOr(normalize.Text(req.Category), ""),
		Channel:        derefOr(normalize.Enum(req.Channel, finance.Channels...), ""),
		From:           parseDate(req.From),
		To:             parseDate(req.To),
		ServiceOrderID: req.ServiceOrderID,
	}
	rows, err := s.movements.ListWithServiceTotals(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]MovementResponse, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		if row.ServiceOrderID != nil && row.ServiceTotal == nil {
			// Dangling link: the referenced service order is gone. Hiding the
			// row beats showing a figure the join could not back.
			continue
		}
		out = append(out, toReconciledResponse(row))
	}
	return out, nil
}

// Get returns one movement without reconciliation.
func (s *FinanceService) Get(ctx context.Context, id uuid.UUID) (*MovementResponse, error) {
	m, err := s.movements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// Create builds a movement from loose input. The stored value is written as
// given; reconciliation is a read-time concern only.
func (s *FinanceService) Create(ctx context.Context, req UpsertMovementRequest) (*MovementResponse, error) {
	m, err := finance.NewMovement(
		derefOr(normalize.Text(req.Title), ""),
		derefOr(normalize.Enum(req.Type, finance.Types...), ""),
		derefOr(normalize.Enum(req.Status, finance.Statuses...), ""),
		normalize.NumberOrZero(req.Value),
		derefTime(parseDate(req.OccurredAt), time.Now()),
	)
	if err != nil {
		return nil, err
	}
	m.Category = derefOr(normalize.Text(req.Category), "")
	m.Channel = derefOr(normalize.Enum(req.Channel, finance.Channels...), "")
	m.Notes = derefOr(normalize.Text(req.Notes), "")
	m.ServiceOrderID = req.ServiceOrderID
	if err := s.movements.Save(ctx, m); err != nil {
		return nil, err
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// Update rewrites a movement from loose input.
func (s *FinanceService) Update(ctx context.Context, id uuid.UUID, req UpsertMovementRequest) (*MovementResponse, error) {
	m, err := s.movements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	title := normalize.Text(req.Title)
	if title == nil {
		return nil, shared.NewDomainError("INVALID_TITLE", "Movement title cannot be empty")
	}
	movementType := normalize.Enum(req.Type, finance.Types...)
	if movementType == nil {
		return nil, shared.NewDomainError("INVALID_TYPE", "Movement type must be in or out")
	}
	status := normalize.Enum(req.Status, finance.Statuses...)
	if status == nil {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown movement status")
	}
	m.Title = *title
	m.Type = *movementType
	m.Status = *status
	m.Value = normalize.NumberOrZero(req.Value)
	m.OccurredAt = derefTime(parseDate(req.OccurredAt), m.OccurredAt)
	m.Category = derefOr(normalize.Text(req.Category), "")
	m.Channel = derefOr(normalize.Enum(req.Channel, finance.Channels...), "")
	m.Notes = derefOr(normalize.Text(req.Notes), "")
	m.ServiceOrderID = req.ServiceOrderID
	m.Touch()
	if err := s.movements.Save(ctx, m); err != nil {
		return nil, err
	}
	resp := ToMovementResponse(m)
	return &resp, nil
}

// Delete removes a movement.
func (s *FinanceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.movements.Delete(ctx, id)
}

// toReconciledResponse maps a joined row, repairing the value scale against
// the resolved service order total.
func toReconciledResponse(row *finance.MovementRow) MovementResponse {
	resp := ToMovementResponse(&row.Movement)
	resp.Value = finance.ReconcileValue(row.Value, row.ServiceTotal)
	return resp
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func derefTime(t *time.Time, def time.Time) time.Time {
	if t == nil {
		return def
	}
	return *t
}

// parseDate accepts a date as time.Time or as a string in RFC 3339 or plain
// YYYY-MM-DD form. Anything else degrades to nil.
func parseDate(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		return &t
	case *time.Time:
		return t
	}
	s := normalize.Text(v)
	if s == nil {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, *s); err == nil {
			return &parsed
		}
	}
	return nil
}
