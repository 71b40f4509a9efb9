package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/osworks/backend/internal/domain/partner"
	"github.com/osworks/backend/internal/domain/shared"
	"github.com/osworks/backend/internal/domain/shared/normalize"
)

// UpsertClientRequest carries the loose fields of a client create or update.
type UpsertClientRequest struct {
	Name    any `json:"name"`
	Contact any `json:"contact"`
	Email   any `json:"email"`
	Address any `json:"address"`
	Notes   any `json:"notes"`
}

// ClientResponse is the read shape of a client.
type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToClientResponse maps a client to its read shape
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Contact:   c.Contact,
		Email:     c.Email,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ClientService handles client registry use cases. Edits never rewrite the
// snapshots quotes and service orders took earlier.
type ClientService struct {
	clients partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clients partner.ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

// Create builds a client from loose input.
func (s *ClientService) Create(ctx context.Context, req UpsertClientRequest) (*ClientResponse, error) {
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	c, err := partner.NewClient(*name, textOr(req.Contact))
	if err != nil {
		return nil, err
	}
	c.Email = textOr(req.Email)
	c.Address = textOr(req.Address)
	c.Notes = textOr(req.Notes)
	if err := s.clients.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Update rewrites a client.
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpsertClientRequest) (*ClientResponse, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := normalize.Text(req.Name)
	if name == nil {
		return nil, shared.NewDomainError("INVALID_NAME", "Client name cannot be empty")
	}
	c.Name = *name
	c.Contact = textOr(req.Contact)
	c.Email = textOr(req.Email)
	c.Address = textOr(req.Address)
	c.Notes = textOr(req.Notes)
	c.Touch()
	if err := s.clients.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Get returns one client.
func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	c, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// List returns all clients.
func (s *ClientService) List(ctx context.Context) ([]ClientResponse, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out, nil
}

// Delete removes a client. Existing quotes keep their snapshots.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.clients.Delete(ctx, id)
}

func textOr(v any) string {
	if s := normalize.Text(v); s != nil {
		return *s
	}
	return ""
}
