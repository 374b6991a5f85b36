package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const curriculosTable = "curriculos"

var curriculoColumns = []string{
	"id", "nome", "email", "telefone", "area", "nome_arquivo", "caminho_arquivo",
	"tamanho_arquivo", "tipo_arquivo", "status", "notas", "created_at", "updated_at",
}

type CurriculoRepository struct {
	DB *sql.DB
}

func NewCurriculoRepository(db *sql.DB) *CurriculoRepository {
	return &CurriculoRepository{DB: db}
}

func (r *CurriculoRepository) Create(ctx context.Context, c *entity.Curriculo) error {
	query, args, err := psql.Insert(curriculosTable).
		Columns(curriculoColumns...).
		Values(c.ID, c.Nome, c.Email, c.Telefone, c.Area, c.NomeArquivo, c.CaminhoArquivo,
			c.TamanhoArquivo, c.TipoArquivo, string(c.Status), c.Notas, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("montar insert de currículo: %w", err)
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserir currículo: %w", err)
	}
	return nil
}

func (r *CurriculoRepository) FindAll(ctx context.Context) ([]*entity.Curriculo, error) {
	return queryList(ctx, r.DB, r.selectCurriculos(), scanCurriculo)
}

func (r *CurriculoRepository) FindByArea(ctx context.Context, area string) ([]*entity.Curriculo, error) {
	return queryList(ctx, r.DB, r.selectCurriculos().Where(sq.Eq{"area": area}), scanCurriculo)
}

func (r *CurriculoRepository) FindByID(ctx context.Context, id string) (*entity.Curriculo, error) {
	return queryOne(ctx, r.DB, r.selectCurriculos().Where(sq.Eq{"id": id}), scanCurriculo)
}

func (r *CurriculoRepository) Update(ctx context.Context, id string, changes entity.CurriculoChanges) error {
	b := psql.Update(curriculosTable).
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

func (r *CurriculoRepository) Delete(ctx context.Context, id string) error {
	return execDelete(ctx, r.DB, curriculosTable, id)
}

func (r *CurriculoRepository) selectCurriculos() sq.SelectBuilder {
	return psql.Select(curriculoColumns...).From(curriculosTable).OrderBy("created_at DESC", "id DESC")
}

func scanCurriculo(row rowScanner) (*entity.Curriculo, error) {
	var c entity.Curriculo
	err := row.Scan(&c.ID, &c.Nome, &c.Email, &c.Telefone, &c.Area, &c.NomeArquivo, &c.CaminhoArquivo,
		&c.TamanhoArquivo, &c.TipoArquivo, &c.Status, &c.Notas, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
