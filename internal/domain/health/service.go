package health

import (
	"fmt"
	"math"
	"sort"
	"time"

	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"
)

// DefaultUpcomingCount é o número de itens exibidos no cartão de resumo.
const DefaultUpcomingCount = 3

// dueSoonBand é a fração da frequência dentro da qual um item passa a
// "vence em breve" (inclusive no limite).
const dueSoonBand = 0.2

// Service calcula status de manutenção a partir de snapshots imutáveis.
// Now é o relógio injetável usado pelos cálculos baseados em tempo.
type Service struct {
	Now func() time.Time
}

func NewService() *Service {
	return &Service{Now: time.Now}
}

func (s *Service) today() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ComputeItemStatus calcula a classificação e o percentual de folga de um
// item dado o veículo e o histórico completo de logs. Histórico vazio
// resulta em "never" com percentual zero.
func (s *Service) ComputeItemStatus(v *vehicle.Vehicle, item *maintenance.MaintenanceItem, logs []*maintenance.MaintenanceLog) *ItemStatus {
	if len(logs) == 0 {
		return &ItemStatus{
			Status:           StatusNever,
			PercentRemaining: 0,
			Message:          GetStatusRange(StatusNever).Label,
		}
	}

	lastLog := mostRecentLog(logs)

	if item.MaintenanceType == maintenance.TypeMileage {
		return mileageStatus(v, item, lastLog)
	}
	return timeStatus(item, lastLog, s.today())
}

// ComputeVehicleHealth agrega os status de todos os itens de um veículo em
// um resumo único. Veículo sem itens é considerado saudável.
func (s *Service) ComputeVehicleHealth(v *vehicle.Vehicle, items []ItemWithLogs) *VehicleHealth {
	if len(items) == 0 {
		return &VehicleHealth{Score: 100, Status: StatusGood, ItemsDue: 0, ItemsOverdue: 0}
	}

	var totalPercent float64
	itemsDue := 0
	itemsOverdue := 0

	for _, entry := range items {
		status := s.ComputeItemStatus(v, entry.Item, entry.Logs)
		totalPercent += status.PercentRemaining

		switch status.Status {
		case StatusOverdue:
			itemsOverdue++
			itemsDue++
		case StatusDueSoon:
			itemsDue++
		}
	}

	avgPercent := totalPercent / float64(len(items))

	overall := StatusGood
	if itemsOverdue > 0 {
		overall = StatusOverdue
	} else if itemsDue > 0 || avgPercent < 50 {
		overall = StatusDueSoon
	}

	return &VehicleHealth{
		Score:        int(math.Round(avgPercent)),
		Status:       overall,
		ItemsDue:     itemsDue,
		ItemsOverdue: itemsOverdue,
	}
}

// RankUpcoming ordena os itens do mais urgente para o menos urgente e
// retorna os n primeiros. Itens nunca realizados ficam por último, apesar
// do percentual zero: "nunca feito" não é necessariamente mais urgente que
// "vence em breve". A ordenação é estável para itens de urgência igual.
func (s *Service) RankUpcoming(v *vehicle.Vehicle, items []ItemWithLogs, n int) []RankedItem {
	if n <= 0 {
		n = DefaultUpcomingCount
	}

	ranked := make([]RankedItem, 0, len(items))
	for _, entry := range items {
		ranked = append(ranked, RankedItem{
			Item:   entry.Item,
			Status: s.ComputeItemStatus(v, entry.Item, entry.Logs),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i].Status, ranked[j].Status
		if (a.Status == StatusNever) != (b.Status == StatusNever) {
			return b.Status == StatusNever
		}
		return a.PercentRemaining < b.PercentRemaining
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// mostRecentLog escolhe o log mais recente por data de realização, com
// desempate determinístico pelo id (ULIDs crescem com o tempo de criação).
func mostRecentLog(logs []*maintenance.MaintenanceLog) *maintenance.MaintenanceLog {
	last := logs[0]
	for _, log := range logs[1:] {
		if log.DatePerformed.After(last.DatePerformed) {
			last = log
			continue
		}
		if log.DatePerformed.Equal(last.DatePerformed) && log.Id.Compare(last.Id) > 0 {
			last = log
		}
	}
	return last
}

func mileageStatus(v *vehicle.Vehicle, item *maintenance.MaintenanceItem, lastLog *maintenance.MaintenanceLog) *ItemStatus {
	lastMileage := 0
	if lastLog.Mileage != nil {
		lastMileage = *lastLog.Mileage
	}

	nextMileage := lastMileage + item.FrequencyValue
	milesRemaining := nextMileage - v.CurrentMileage

	percent := math.Max(0, float64(milesRemaining)/float64(item.FrequencyValue)*100)

	status := StatusGood
	if milesRemaining <= 0 {
		status = StatusOverdue
	} else if float64(milesRemaining) <= float64(item.FrequencyValue)*dueSoonBand {
		status = StatusDueSoon
	}

	message := GetStatusRange(StatusOverdue).Label
	if milesRemaining > 0 {
		message = fmt.Sprintf("%d milhas restantes", milesRemaining)
	}

	return &ItemStatus{
		Status:           status,
		PercentRemaining: percent,
		Message:          message,
		MilesRemaining:   &milesRemaining,
		NextMileage:      &nextMileage,
	}
}

func timeStatus(item *maintenance.MaintenanceItem, lastLog *maintenance.MaintenanceLog, today time.Time) *ItemStatus {
	// Aproximação de calendário: meses de 30 dias, anos de 365
	frequencyInDays := item.FrequencyValue
	switch item.FrequencyUnit {
	case maintenance.UnitMonths:
		frequencyInDays = item.FrequencyValue * 30
	case maintenance.UnitYears:
		frequencyInDays = item.FrequencyValue * 365
	}

	daysSinceLast := int(math.Floor(today.Sub(lastLog.DatePerformed).Hours() / 24))
	daysRemaining := frequencyInDays - daysSinceLast

	percent := math.Max(0, float64(daysRemaining)/float64(frequencyInDays)*100)

	status := StatusGood
	if daysRemaining <= 0 {
		status = StatusOverdue
	} else if float64(daysRemaining) <= float64(frequencyInDays)*dueSoonBand {
		status = StatusDueSoon
	}

	message := GetStatusRange(StatusOverdue).Label
	if daysRemaining > 0 {
		message = fmt.Sprintf("%d dias restantes", daysRemaining)
	}

	nextDate := lastLog.DatePerformed.AddDate(0, 0, frequencyInDays)

	return &ItemStatus{
		Status:           status,
		PercentRemaining: percent,
		Message:          message,
		DaysRemaining:    &daysRemaining,
		NextDate:         &nextDate,
	}
}
