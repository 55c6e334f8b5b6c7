package appointments

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/santilopez19/TurneroPremium/internal/domain"
	"github.com/santilopez19/TurneroPremium/internal/service/appointments/models"
)

const exportSheet = "Turnos"

var exportColumns = []string{
	"Fecha", "Hora", "Nombre", "Apellido", "Teléfono", "Servicio", "Estado", "Recordatorio", "Asistió",
}

// Export пишет записи за период в XLSX
func (s *Service) Export(ctx context.Context, req *models.ListRequest, w io.Writer) error {
	list, err := s.list(ctx, "Export", req)
	if err != nil {
		return err
	}

	if err := writeWorkbook(w, list, s.timeProvider); err != nil {
		s.logger.Error("Export: failed to write workbook: %v", err)
		return fmt.Errorf("%w: Export - write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("Export: exported %d appointments", len(list))
	return nil
}

func writeWorkbook(w io.Writer, list []*domain.Appointment, tp TimeProvider) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeRow(file, 1, toRow(exportColumns)); err != nil {
		return err
	}

	style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
		_ = file.SetCellStyle(exportSheet, "A1", endCell, style)
	}

	loc := tp.Location()
	for i, a := range list {
		at := a.DateTime.In(loc)
		row := []interface{}{
			at.Format(domain.DateFormat),
			at.Format(domain.TimeFormat),
			a.FirstName,
			a.LastName,
			a.Phone,
			a.ServiceDescriptor,
			string(a.Status),
			yesNo(a.ReminderSent),
			yesNo(a.Attended),
		}
		if err := writeRow(file, i+2, row); err != nil {
			return err
		}
	}

	return file.Write(w)
}

func writeRow(file *excelize.File, rowNum int, values []interface{}) error {
	for col, val := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(exportSheet, cell, val); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func yesNo(v bool) string {
	if v {
		return "sí"
	}
	return "no"
}
