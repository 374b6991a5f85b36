package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const leadsTable = "leads"

var leadColumns = []string{"id", "nome", "email", "telefone", "area", "status", "notas", "created_at", "updated_at"}

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query, args, err := psql.Insert(leadsTable).
		Columns(leadColumns...).
		Values(lead.ID, lead.Nome, lead.Email, lead.Telefone, lead.Area, string(lead.Status), lead.Notas, lead.CreatedAt, lead.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("montar insert de lead: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserir lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	return queryList(ctx, r.DB, r.selectLeads(), scanLead)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	return queryOne(ctx, r.DB, r.selectLeads().Where(sq.Eq{"id": id}), scanLead)
}

func (r *LeadRepository) Update(ctx context.Context, id string, changes entity.LeadChanges) error {
	b := psql.Update(leadsTable).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if changes.Status != nil {
		b = b.Set("status", string(*changes.Status))
	}
	if changes.Notas != nil {
		b = b.Set("notas", *changes.Notas)
	}

	return execUpdate(ctx, r.DB, b)
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.DB, leadsTable, id)
}

func (r *LeadRepository) selectLeads() sq.SelectBuilder {
	return psql.Select(leadColumns...).From(leadsTable).OrderBy("created_at DESC", "id DESC")
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(&l.ID, &l.Nome, &l.Email, &l.Telefone, &l.Area, &l.Status, &l.Notas, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
