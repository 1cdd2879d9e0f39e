package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AlexMorrow239/zomma-prototype/internal/core/domain"
	"github.com/AlexMorrow239/zomma-prototype/internal/core/ports"
)

type mapRecipientRepo struct {
	recipients map[string]*domain.EmailRecipient
	seq        int
}

func newMapRecipientRepo() *mapRecipientRepo {
	return &mapRecipientRepo{recipients: make(map[string]*domain.EmailRecipient)}
}

func (r *mapRecipientRepo) Create(_ context.Context, rec *domain.EmailRecipient) (*domain.EmailRecipient, error) {
	for _, existing := range r.recipients {
		if existing.Email == rec.Email {
			return nil, domain.ErrRecipientExists
		}
	}
	r.seq++
	clone := *rec
	clone.ID = fmt.Sprintf("recipient-%d", r.seq)
	r.recipients[clone.ID] = &clone
	copy := clone
	return &copy, nil
}

func (r *mapRecipientRepo) FindAll(_ context.Context) ([]*domain.EmailRecipient, error) {
	out := make([]*domain.EmailRecipient, 0, len(r.recipients))
	for _, rec := range r.recipients {
		clone := *rec
		out = append(out, &clone)
	}
	return out, nil
}

func (r *mapRecipientRepo) FindByID(_ context.Context, id string) (*domain.EmailRecipient, error) {
	rec, ok := r.recipients[id]
	if !ok {
		return nil, domain.ErrRecipientNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *mapRecipientRepo) Update(_ context.Context, id string, update ports.UpdateRecipientInput) (*domain.EmailRecipient, error) {
	rec, ok := r.recipients[id]
	if !ok {
		return nil, domain.ErrRecipientNotFound
	}
	if update.Email != nil {
		rec.Email = *update.Email
	}
	if update.Name != nil {
		rec.Name = *update.Name
	}
	if update.Description != nil {
		rec.Description = *update.Description
	}
	if update.Active != nil {
		rec.Active = *update.Active
	}
	clone := *rec
	return &clone, nil
}

func (r *mapRecipientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.recipients[id]; !ok {
		return domain.ErrRecipientNotFound
	}
	delete(r.recipients, id)
	return nil
}

func (r *mapRecipientRepo) ActiveEmails(_ context.Context) ([]string, error) {
	var out []string
	for _, rec := range r.recipients {
		if rec.Active {
			out = append(out, rec.Email)
		}
	}
	return out, nil
}

func TestRecipientService_Create_DefaultsActive(t *testing.T) {
	svc := NewRecipientService(newMapRecipientRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateRecipientInput{
		Email: "Staff@Example.com",
		Name:  "Staff Inbox",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !created.Active {
		t.Fatalf("expected recipient to default to active")
	}
	if created.Email != "staff@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
}

func TestRecipientService_Create_ExplicitInactive(t *testing.T) {
	svc := NewRecipientService(newMapRecipientRepo(), zerolog.Nop())

	inactive := false
	created, err := svc.Create(context.Background(), ports.CreateRecipientInput{
		Email:  "muted@example.com",
		Name:   "Muted Inbox",
		Active: &inactive,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Active {
		t.Fatalf("expected recipient to be inactive")
	}
}

func TestRecipientService_Create_DuplicateEmail(t *testing.T) {
	svc := NewRecipientService(newMapRecipientRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateRecipientInput{Email: "dup@example.com", Name: "A"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	_, err := svc.Create(context.Background(), ports.CreateRecipientInput{Email: "DUP@example.com", Name: "B"})
	if !errors.Is(err, domain.ErrRecipientExists) {
		t.Fatalf("expected ErrRecipientExists, got %v", err)
	}
}

func TestRecipientService_UpdateAndRemove(t *testing.T) {
	repo := newMapRecipientRepo()
	svc := NewRecipientService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateRecipientInput{Email: "staff@example.com", Name: "Staff"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	inactive := false
	email := "Renamed@Example.com"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateRecipientInput{Email: &email, Active: &inactive})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != "renamed@example.com" {
		t.Fatalf("expected normalized email on update, got %q", updated.Email)
	}
	if updated.Active {
		t.Fatalf("expected recipient deactivated")
	}

	emails, err := repo.ActiveEmails(context.Background())
	if err != nil {
		t.Fatalf("ActiveEmails returned error: %v", err)
	}
	if len(emails) != 0 {
		t.Fatalf("deactivated recipient must not appear in active list, got %v", emails)
	}

	if err := svc.Remove(context.Background(), created.ID); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if _, err := svc.FindByID(context.Background(), created.ID); !errors.Is(err, domain.ErrRecipientNotFound) {
		t.Fatalf("expected ErrRecipientNotFound after delete, got %v", err)
	}
}
