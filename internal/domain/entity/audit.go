package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fases de auditoría física.
const (
	AuditPhaseOpening = "APERTURA"
	AuditPhaseClosing = "CIERRE"
)

// Estados del ciclo de auditoría de una fecha. CONFIRMADA es terminal:
// el cierre confirmado se materializa como nueva línea base y no hay vuelta atrás.
const (
	AuditStatusOpeningPending  = "APERTURA_PENDIENTE"
	AuditStatusOpeningRecorded = "APERTURA_REGISTRADA"
	AuditStatusClosingPending  = "CIERRE_PENDIENTE"
	AuditStatusClosingRecorded = "CIERRE_REGISTRADO"
	AuditStatusConfirmed       = "CONFIRMADA"
)

var auditOrder = map[string]int{
	AuditStatusOpeningPending:  0,
	AuditStatusOpeningRecorded: 1,
	AuditStatusClosingPending:  2,
	AuditStatusClosingRecorded: 3,
	AuditStatusConfirmed:       4,
}

// CanTransition valida un avance del ciclo de auditoría. Solo se permite
// avanzar (nunca retroceder) y nada sale de CONFIRMADA.
func CanTransition(from, to string) bool {
	a, okA := auditOrder[from]
	b, okB := auditOrder[to]
	if !okA || !okB {
		return false
	}
	if from == AuditStatusConfirmed {
		return false
	}
	return b > a
}

// Audit estado del ciclo de auditoría de una fecha.
type Audit struct {
	Date      time.Time
	Status    string
	UpdatedAt time.Time
}

// AuditCount una fila de conteo físico por ítem y ubicación, ya convertida a
// unidad base. Un conteo negativo es una anomalía reportable, no un error duro.
type AuditCount struct {
	Date        time.Time
	Item        string
	Subcategory string
	Location    string
	Phase       string          // APERTURA o CIERRE
	Count       decimal.Decimal // conteo físico en unidad base
	Requisition decimal.Decimal // pedido interno declarado (unidad base)
}
