package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const trialClassesTable = "trial_classes"

var trialClassColumns = []string{
	"id", "nome", "email", "telefone", "curso", "area", "data_agendamento",
	"horario", "observacoes", "status", "created_at", "updated_at",
}

type TrialClassRepository struct {
	DB *sql.DB
}

func NewTrialClassRepository(db *sql.DB) *TrialClassRepository {
	return &TrialClassRepository{DB: db}
}

func (r *TrialClassRepository) Create(ctx context.Context, tc *entity.TrialClass) error {
	query, args, err := psql.Insert(trialClassesTable).
		Columns(trialClassColumns...).
		Values(tc.ID, tc.Nome, tc.Email, tc.Telefone, tc.Curso, tc.Area, tc.DataAgendamento,
			tc.Horario, tc.Observacoes, string(tc.Status), tc.CreatedAt, tc.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("montar insert de aula experimental: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserir aula experimental: %w", err)
	}
	return nil
}

func (r *TrialClassRepository) FindAll(ctx context.Context) ([]*entity.TrialClass, error) {
	return queryList(ctx, r.DB, r.selectTrialClasses(), scanTrialClass)
}

func (r *TrialClassRepository) FindByID(ctx context.Context, id string) (*entity.TrialClass, error) {
	return queryOne(ctx, r.DB, r.selectTrialClasses().Where(sq.Eq{"id": id}), scanTrialClass)
}

func (r *TrialClassRepository) Update(ctx context.Context, id string, changes entity.TrialClassChanges) error {
	b := psql.Update(trialClassesTable).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if changes.Status != nil {
		b = b.Set("status", string(*changes.Status))
	}
	if changes.Observacoes != nil {
		b = b.Set("observacoes", *changes.Observacoes)
	}

	return execUpdate(ctx, r.DB, b)
}

func (r *TrialClassRepository) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.DB, trialClassesTable, id)
}

func (r *TrialClassRepository) selectTrialClasses() sq.SelectBuilder {
	return psql.Select(trialClassColumns...).From(trialClassesTable).OrderBy("created_at DESC", "id DESC")
}

func scanTrialClass(row rowScanner) (*entity.TrialClass, error) {
	var tc entity.TrialClass
	err := row.Scan(&tc.ID, &tc.Nome, &tc.Email, &tc.Telefone, &tc.Curso, &tc.Area, &tc.DataAgendamento,
		&tc.Horario, &tc.Observacoes, &tc.Status, &tc.CreatedAt, &tc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &tc, nil
}
