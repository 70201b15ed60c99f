package audit

import (
	"time"

	"github.com/jhoicas/Licorstock-api/internal/domain/entity"
)

// ReportGenerator puerto de los informes PDF de auditoría. La implementación
// vive en infraestructura; el caso de uso solo conoce los bytes resultantes.
type ReportGenerator interface {
	OpeningReport(date time.Time, rows []entity.OpeningResult) ([]byte, error)
	ClosingReport(date time.Time, rows []entity.ReconciliationResult) ([]byte, error)
}
