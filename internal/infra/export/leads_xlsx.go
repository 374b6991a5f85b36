package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/aliar-cursos/internal/entity"
)

const leadsSheet = "Leads"

var leadHeaders = []string{"Nome", "Email", "Telefone", "Área", "Status", "Notas", "Cadastrado em"}

// WriteLeadsXLSX gera a planilha de leads (na ordem recebida) e escreve em w.
func WriteLeadsXLSX(w io.Writer, leads []*entity.Lead, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", leadsSheet); err != nil {
		return fmt.Errorf("renomear planilha: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("criar estilo: %w", err)
	}

	for i, h := range leadHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(leadsSheet, cell, h); err != nil {
			return fmt.Errorf("escrever cabeçalho: %w", err)
		}
	}
	if err := f.SetRowStyle(leadsSheet, 1, 1, header); err != nil {
		return fmt.Errorf("aplicar estilo: %w", err)
	}

	for r, l := range leads {
		row := []any{
			l.Nome,
			l.Email,
			l.Telefone,
			deref(l.Area),
			string(l.Status),
			deref(l.Notas),
			l.CreatedAt.In(loc).Format("02/01/2006 15:04"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(leadsSheet, cell, &row); err != nil {
			return fmt.Errorf("escrever linha %d: %w", r+2, err)
		}
	}

	if err := f.SetColWidth(leadsSheet, "A", "G", 22); err != nil {
		return fmt.Errorf("ajustar colunas: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("gerar xlsx: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
