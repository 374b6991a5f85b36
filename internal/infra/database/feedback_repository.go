package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const feedbacksTable = "feedbacks"

var feedbackColumns = []string{"id", "nome", "email", "curso", "avaliacao", "comentario", "status", "created_at", "updated_at"}

type FeedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *entity.Feedback) error {
	query, args, err := psql.Insert(feedbacksTable).
		Columns(feedbackColumns...).
		Values(f.ID, f.Nome, f.Email, f.Curso, f.Avaliacao, f.Comentario, string(f.Status), f.CreatedAt, f.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("montar insert de feedback: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserir feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	return queryList(ctx, r.DB, r.selectFeedbacks(), scanFeedback)
}

func (r *FeedbackRepository) FindByStatus(ctx context.Context, status entity.FeedbackStatus) ([]*entity.Feedback, error) {
	return queryList(ctx, r.DB, r.selectFeedbacks().Where(sq.Eq{"status": string(status)}), scanFeedback)
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id string) (*entity.Feedback, error) {
	return queryOne(ctx, r.DB, r.selectFeedbacks().Where(sq.Eq{"id": id}), scanFeedback)
}

func (r *FeedbackRepository) Update(ctx context.Context, id string, changes entity.FeedbackChanges) error {
	b := psql.Update(feedbacksTable).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	if changes.Status != nil {
		b = b.Set("status", string(*changes.Status))
	}

	return execUpdate(ctx, r.DB, b)
}

func (r *FeedbackRepository) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.DB, feedbacksTable, id)
}

func (r *FeedbackRepository) selectFeedbacks() sq.SelectBuilder {
	return psql.Select(feedbackColumns...).From(feedbacksTable).OrderBy("created_at DESC", "id DESC")
}

func scanFeedback(row rowScanner) (*entity.Feedback, error) {
	var f entity.Feedback
	err := row.Scan(&f.ID, &f.Nome, &f.Email, &f.Curso, &f.Avaliacao, &f.Comentario, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
