package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/shm/internal/shm/domain"
	"github.com/aussiebroadwan/shm/internal/shm/store"
	"github.com/aussiebroadwan/shm/pkg/slogx"
)

// StakeholderService is the stakeholder directory: a registry of people keyed
// by email address.
type StakeholderService struct {
	Store store.Store
	NewID IDFunc
}

// FindOrCreate returns the id of the stakeholder with exactly this email,
// creating it with the given names when there is none. Names are ignored for
// an existing stakeholder; the first write wins.
func (s *StakeholderService) FindOrCreate(ctx context.Context, email, firstName, lastName string) (string, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(email) == "" {
		log.Warn("rejected stakeholder without email")
		return "", ErrInvalidStakeholder
	}

	var id string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		id, _, err = findOrCreateStakeholder(ctx, tx.Stakeholders(), s.NewID, domain.InviteAttendee{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
		})
		return err
	})
	if err != nil {
		log.Error("failed to find or create stakeholder", slog.Any("error", err))
		return "", err
	}

	return id, nil
}

// Get fetches a stakeholder by id.
func (s *StakeholderService) Get(ctx context.Context, id string) (domain.Stakeholder, error) {
	return s.Store.Stakeholders().GetStakeholderByID(ctx, id)
}

// List returns every stakeholder in insertion order.
func (s *StakeholderService) List(ctx context.Context) ([]domain.Stakeholder, error) {
	return s.Store.Stakeholders().ListStakeholders(ctx)
}

// Snapshot loads the directory for display name rendering.
func (s *StakeholderService) Snapshot(ctx context.Context) (domain.Directory, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewDirectory(all), nil
}

// findOrCreateStakeholder reports whether the stakeholder was created. If the
// insert loses a race on the email constraint the winner's id is returned.
func findOrCreateStakeholder(
	ctx context.Context,
	repo store.Stakeholders,
	newID IDFunc,
	a domain.InviteAttendee,
) (string, bool, error) {
	existing, err := repo.GetStakeholderByEmail(ctx, a.Email)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return "", false, err
	}

	created := domain.Stakeholder{
		ID:        newID.next(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
	}
	if err := repo.CreateStakeholder(ctx, created); err != nil {
		if !errors.Is(err, store.ErrIntegrity) {
			return "", false, err
		}
		winner, lookupErr := repo.GetStakeholderByEmail(ctx, a.Email)
		if lookupErr != nil {
			return "", false, err
		}
		return winner.ID, false, nil
	}

	slogx.FromContext(ctx).Info("stakeholder created",
		slog.String("stakeholder_id", created.ID),
	)
	return created.ID, true, nil
}
