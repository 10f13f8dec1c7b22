package health

import (
	"time"

	"Garagem/internal/domain/maintenance"
)

// Status classifica a urgência de um item de manutenção.
type Status string

const (
	StatusNever   Status = "never"
	StatusGood    Status = "good"
	StatusDueSoon Status = "due-soon"
	StatusOverdue Status = "overdue"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNever, StatusGood, StatusDueSoon, StatusOverdue:
		return true
	}
	return false
}

// ItemStatus é o resultado do cálculo de status de um item: classificação,
// percentual de folga restante (0–100) e detalhes para exibição.
type ItemStatus struct {
	Status           Status     `json:"status"`
	PercentRemaining float64    `json:"percentRemaining"`
	Message          string     `json:"message"`
	MilesRemaining   *int       `json:"milesRemaining,omitempty"`
	NextMileage      *int       `json:"nextMileage,omitempty"`
	DaysRemaining    *int       `json:"daysRemaining,omitempty"`
	NextDate         *time.Time `json:"nextDate,omitempty"`
}

// VehicleHealth resume o estado de todos os itens de um veículo.
type VehicleHealth struct {
	Score        int    `json:"score"`
	Status       Status `json:"status"`
	ItemsDue     int    `json:"itemsDue"`
	ItemsOverdue int    `json:"itemsOverdue"`
}

// ItemWithLogs é o snapshot imutável consumido pelo cálculo: um item e
// seu histórico completo de execuções.
type ItemWithLogs struct {
	Item *maintenance.MaintenanceItem
	Logs []*maintenance.MaintenanceLog
}

// RankedItem é um item acompanhado do seu status, ordenado por urgência.
type RankedItem struct {
	Item   *maintenance.MaintenanceItem `json:"item"`
	Status *ItemStatus                  `json:"status"`
}

type StatusRange struct {
	Status Status
	Label  string
	Color  string
}

var StatusRanges = []StatusRange{
	{Status: StatusGood, Label: "Em dia", Color: "#10b981"},
	{Status: StatusDueSoon, Label: "Vence em breve", Color: "#f59e0b"},
	{Status: StatusOverdue, Label: "Atrasado", Color: "#ef4444"},
	{Status: StatusNever, Label: "Nunca realizado", Color: "#9ca3af"},
}

func GetStatusRange(s Status) StatusRange {
	for _, r := range StatusRanges {
		if r.Status == s {
			return r
		}
	}
	return StatusRanges[len(StatusRanges)-1]
}

// DisplayFill converte o percentual de folga em preenchimento visual de
// "progresso até o vencimento" (invertido e limitado a 0–100).
func DisplayFill(percentRemaining float64) float64 {
	if percentRemaining < 0 {
		percentRemaining = 0
	}
	if percentRemaining > 100 {
		percentRemaining = 100
	}
	return 100 - percentRemaining
}
