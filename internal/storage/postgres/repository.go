package postgres

import (
	"context"

	"github.com/nradhesh/Outbreak-blockchain/internal/domain"
)

type RegistryRepository interface {
	Bootstrap(ctx context.Context, admin domain.Identity, radius uint64) (domain.RegistryState, error)
	Load(ctx context.Context) (domain.RegistryState, error)
	AppendInfection(ctx context.Context, rec domain.InfectionRecord, entry domain.OutbreakEntry) error
	SetRadius(ctx context.Context, radius uint64) error
}

func (p *Postgres) RegistryJournal() RegistryRepository { return p.Registry }
