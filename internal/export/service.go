// Package export produces XLSX workbooks from the onboarding audit ledger.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/jmonzon-gt/distribuidores/internal/entity"
	"github.com/jmonzon-gt/distribuidores/internal/tracking"
)

// Ledger is the read side the exporter needs.
type Ledger interface {
	ListTracking(ctx context.Context, requestID uuid.UUID) ([]entity.TrackingEntry, error)
}

// Service turns a request's ledger into XLSX bytes.
type Service struct {
	ledger Ledger
	logger *slog.Logger
}

func NewService(ledger Ledger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{ledger: ledger, logger: logger}
}

// ExportTrackingXLSX returns a workbook with the full state history and a
// per-state dwell-time summary for one request.
func (s *Service) ExportTrackingXLSX(ctx context.Context, requestID uuid.UUID) ([]byte, error) {
	start := time.Now()

	entries, err := s.ledger.ListTracking(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("query tracking: %w", err)
	}

	f := excelize.NewFile()
	const historySheet = "Historial"
	const summarySheet = "Resumen"

	idx, err := f.NewSheet(historySheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	_ = f.DeleteSheet("Sheet1")

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	historyHeaders := []string{"Fecha", "Estado Anterior", "Estado Nuevo", "Actor", "Comentario"}
	for i, h := range historyHeaders {
		write(historySheet, i+1, 1, h)
	}
	row := 2
	for _, e := range entries {
		actor := "sistema"
		if e.Actor != nil {
			actor = e.Actor.String()
		}
		write(historySheet, 1, row, e.CreatedAt.UTC().Format(time.RFC3339))
		write(historySheet, 2, row, string(e.PreviousState))
		write(historySheet, 3, row, string(e.NewState))
		write(historySheet, 4, row, actor)
		write(historySheet, 5, row, e.Comment)
		row++
	}
	_ = f.SetColWidth(historySheet, "A", "A", 22)
	_ = f.SetColWidth(historySheet, "B", "C", 26)
	_ = f.SetColWidth(historySheet, "D", "D", 38)
	_ = f.SetColWidth(historySheet, "E", "E", 60)

	summaryHeaders := []string{"Estado", "Visitas", "Tiempo Total"}
	for i, h := range summaryHeaders {
		write(summarySheet, i+1, 1, h)
	}
	row = 2
	for _, b := range tracking.Summarize(entries, time.Now()) {
		write(summarySheet, 1, row, string(b.State))
		write(summarySheet, 2, row, b.Visits)
		write(summarySheet, 3, row, b.Duration.Round(time.Second).String())
		row++
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 26)
	_ = f.SetColWidth(summarySheet, "B", "C", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"request_id", requestID.String(),
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
