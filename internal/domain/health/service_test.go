package health_test

import (
	"testing"
	"time"

	"Garagem/internal/domain/health"
	"Garagem/internal/domain/maintenance"
	"Garagem/internal/domain/vehicle"

	"github.com/oklog/ulid/v2"
)

func fixedClock() func() time.Time {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func newMileageItem(frequency int) *maintenance.MaintenanceItem {
	return &maintenance.MaintenanceItem{
		Id:              ulid.Make(),
		VehicleId:       ulid.Make(),
		Name:            "Troca de óleo",
		MaintenanceType: maintenance.TypeMileage,
		FrequencyValue:  frequency,
		FrequencyUnit:   maintenance.UnitMiles,
	}
}

func newTimeItem(frequency int, unit maintenance.FrequencyUnit) *maintenance.MaintenanceItem {
	return &maintenance.MaintenanceItem{
		Id:              ulid.Make(),
		VehicleId:       ulid.Make(),
		Name:            "Revisão anual",
		MaintenanceType: maintenance.TypeTime,
		FrequencyValue:  frequency,
		FrequencyUnit:   unit,
	}
}

func mileageLog(mileage int) *maintenance.MaintenanceLog {
	return &maintenance.MaintenanceLog{
		Id:            ulid.Make(),
		DatePerformed: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Mileage:       &mileage,
	}
}

func dateLog(daysAgo int, now time.Time) *maintenance.MaintenanceLog {
	return &maintenance.MaintenanceLog{
		Id:            ulid.Make(),
		DatePerformed: now.AddDate(0, 0, -daysAgo),
	}
}

func TestComputeItemStatusNeverPerformed(t *testing.T) {
	t.Parallel()

	svc := health.NewService()
	v := &vehicle.Vehicle{Id: ulid.Make(), CurrentMileage: 50000}
	item := newMileageItem(5000)

	status := svc.ComputeItemStatus(v, item, nil)

	if status.Status != health.StatusNever {
		t.Errorf("status = %s, esperado %s", status.Status, health.StatusNever)
	}
	if status.PercentRemaining != 0 {
		t.Errorf("percentRemaining = %v, esperado 0", status.PercentRemaining)
	}
	if status.Message != "Nunca realizado" {
		t.Errorf("message = %q", status.Message)
	}
}

func TestComputeItemStatusMileage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		currentMileage     int
		frequency          int
		lastMileage        *int
		wantStatus         health.Status
		wantPercent        float64
		wantMilesRemaining int
	}{
		{
			name:               "due soon at exact threshold",
			currentMileage:     50000,
			frequency:          5000,
			lastMileage:        intPtr(46000),
			wantStatus:         health.StatusDueSoon,
			wantPercent:        20,
			wantMilesRemaining: 1000,
		},
		{
			name:               "good with wide margin",
			currentMileage:     46500,
			frequency:          5000,
			lastMileage:        intPtr(46000),
			wantStatus:         health.StatusGood,
			wantPercent:        90,
			wantMilesRemaining: 4500,
		},
		{
			name:               "overdue at zero remaining",
			currentMileage:     51000,
			frequency:          5000,
			lastMileage:        intPtr(46000),
			wantStatus:         health.StatusOverdue,
			wantPercent:        0,
			wantMilesRemaining: 0,
		},
		{
			name:               "overdue past next service",
			currentMileage:     53000,
			frequency:          5000,
			lastMileage:        intPtr(46000),
			wantStatus:         health.StatusOverdue,
			wantPercent:        0,
			wantMilesRemaining: -2000,
		},
		{
			name:               "missing mileage in log counts as zero",
			currentMileage:     3000,
			frequency:          5000,
			lastMileage:        nil,
			wantStatus:         health.StatusGood,
			wantPercent:        40,
			wantMilesRemaining: 2000,
		},
	}

	svc := health.NewService()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := &vehicle.Vehicle{Id: ulid.Make(), CurrentMileage: tt.currentMileage}
			item := newMileageItem(tt.frequency)
			log := &maintenance.MaintenanceLog{
				Id:            ulid.Make(),
				DatePerformed: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				Mileage:       tt.lastMileage,
			}

			status := svc.ComputeItemStatus(v, item, []*maintenance.MaintenanceLog{log})

			if status.Status != tt.wantStatus {
				t.Errorf("status = %s, esperado %s", status.Status, tt.wantStatus)
			}
			if status.PercentRemaining != tt.wantPercent {
				t.Errorf("percentRemaining = %v, esperado %v", status.PercentRemaining, tt.wantPercent)
			}
			if status.MilesRemaining == nil || *status.MilesRemaining != tt.wantMilesRemaining {
				t.Errorf("milesRemaining = %v, esperado %d", status.MilesRemaining, tt.wantMilesRemaining)
			}
		})
	}
}

func TestComputeItemStatusTime(t *testing.T) {
	t.Parallel()

	svc := health.NewService()
	svc.Now = fixedClock()
	now := svc.Now()

	tests := []struct {
		name              string
		frequency         int
		unit              maintenance.FrequencyUnit
		daysAgo           int
		wantStatus        health.Status
		wantDaysRemaining int
	}{
		{
			name:              "yearly item overdue after 400 days",
			frequency:         1,
			unit:              maintenance.UnitYears,
			daysAgo:           400,
			wantStatus:        health.StatusOverdue,
			wantDaysRemaining: -35,
		},
		{
			name:              "yearly item good at start",
			frequency:         1,
			unit:              maintenance.UnitYears,
			daysAgo:           10,
			wantStatus:        health.StatusGood,
			wantDaysRemaining: 355,
		},
		{
			name:              "six month item due soon at boundary",
			frequency:         6,
			unit:              maintenance.UnitMonths,
			daysAgo:           144,
			wantStatus:        health.StatusDueSoon,
			wantDaysRemaining: 36,
		},
		{
			name:              "thirty day item overdue on the exact day",
			frequency:         30,
			unit:              maintenance.UnitDays,
			daysAgo:           30,
			wantStatus:        health.StatusOverdue,
			wantDaysRemaining: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			v := &vehicle.Vehicle{Id: ulid.Make()}
			item := newTimeItem(tt.frequency, tt.unit)
			log := dateLog(tt.daysAgo, now)

			status := svc.ComputeItemStatus(v, item, []*maintenance.MaintenanceLog{log})

			if status.Status != tt.wantStatus {
				t.Errorf("status = %s, esperado %s", status.Status, tt.wantStatus)
			}
			if status.DaysRemaining == nil || *status.DaysRemaining != tt.wantDaysRemaining {
				t.Errorf("daysRemaining = %v, esperado %d", status.DaysRemaining, tt.wantDaysRemaining)
			}
			if status.NextDate == nil {
				t.Fatal("nextDate não deveria ser nil")
			}
		})
	}
}

func TestComputeItemStatusUsesMostRecentLog(t *testing.T) {
	t.Parallel()

	svc := health.NewService()
	v := &vehicle.Vehicle{Id: ulid.Make(), CurrentMileage: 50000}
	item := newMileageItem(5000)

	older := mileageLog(30000)
	older.DatePerformed = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	newer := mileageLog(48000)
	newer.DatePerformed = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	status := svc.ComputeItemStatus(v, item, []*maintenance.MaintenanceLog{older, newer})

	if status.NextMileage == nil || *status.NextMileage != 53000 {
		t.Errorf("nextMileage = %v, esperado 53000 (do log mais recente)", status.NextMileage)
	}
}

func TestComputeItemStatusTieBreaksByID(t *testing.T) {
	t.Parallel()

	svc := health.NewService()
	v := &vehicle.Vehicle{Id: ulid.Make(), CurrentMileage: 50000}
	item := newMileageItem(5000)

	sameDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	first := mileageLog(40000)
	first.DatePerformed = sameDate
	second := mileageLog(48000)
	second.DatePerformed = sameDate
	// ULIDs crescem com o tempo de criação; força a ordem esperada
	if first.Id.Compare(second.Id) > 0 {
		first.Id, second.Id = second.Id, first.Id
	}

	status := svc.ComputeItemStatus(v, item, []*maintenance.MaintenanceLog{second, first})

	if status.NextMileage == nil || *status.NextMileage != 53000 {
		t.Errorf("nextMileage = %v, esperado 53000 (log de id maior vence o empate)", status.NextMileage)
	}
}

func TestComputeVehicleHealth(t *testing.T) {
	t.Parallel()

	svc := health.NewService()
	svc.Now = fixedClock()

	v := &vehicle.Vehicle{Id: ulid.Make(), CurrentMileage: 50000}

	goodItem := health.ItemWithLogs{
		Item: newMileageItem(5000),
		Logs: []*maintenance.MaintenanceLog{mileageLog(49000)},
	}
	dueSoonItem := health.ItemWithLogs{
		Item: newMileageItem(5000),
		Logs: []*maintenance.MaintenanceLog{mileageLog(46000)},
	}
	overdueItem := health.ItemWithLogs{
		Item: newMileageItem(5000),
		Logs: []*maintenance.MaintenanceLog{mileageLog(40000)},
	}

	t.Run("no items means healthy", func(t *testing.T) {
		got := svc.ComputeVehicleHealth(v, nil)
		if got.Score != 100 || got.Status != health.StatusGood || got.ItemsDue != 0 || got.ItemsOverdue != 0 {
			t.Errorf("saúde = %+v, esperado score 100 e status good", got)
		}
	})

	t.Run("overdue item counts in both counters", func(t *testing.T) {
		got := svc.ComputeVehicleHealth(v, []health.ItemWithLogs{goodItem, overdueItem})
		if got.Status != health.StatusOverdue {
			t.Errorf("status = %s, esperado overdue", got.Status)
		}
		if got.ItemsOverdue != 1 || got.ItemsDue != 1 {
			t.Errorf("itemsOverdue = %d, itemsDue = %d, esperado 1 e 1", got.ItemsOverdue, got.ItemsDue)
		}
		// (80 + 0) / 2
		if got.Score != 40 {
			t.Errorf("score = %d, esperado 40", got.Score)
		}
	})

	t.Run("due soon item makes overall due soon", func(t *testing.T) {
		got := svc.ComputeVehicleHealth(v, []health.ItemWithLogs{goodItem, dueSoonItem})
		if got.Status != health.StatusDueSoon {
			t.Errorf("status = %s, esperado due-soon", got.Status)
		}
		if got.ItemsDue != 1 || got.ItemsOverdue != 0 {
			t.Errorf("itemsDue = %d, itemsOverdue = %d, esperado 1 e 0", got.ItemsDue, got.ItemsOverdue)
		}
	})

	t.Run("low average drags status down without due items", func(t *testing.T) {
		neverItem := health.ItemWithLogs{Item: newMileageItem(5000)}
		got := svc.ComputeVehicleHealth(v, []health.ItemWithLogs{goodItem, neverItem})
		// (80 + 0) / 2 = 40 < 50
		if got.Status != health.StatusDueSoon {
			t.Errorf("status = %s, esperado due-soon pela média baixa", got.Status)
		}
		if got.ItemsDue != 0 {
			t.Errorf("itemsDue = %d, esperado 0", got.ItemsDue)
		}
	})

	t.Run("score is rounded average", func(t *testing.T) {
		got := svc.ComputeVehicleHealth(v, []health.ItemWithLogs{goodItem, dueSoonItem, overdueItem})
		// (80 + 20 + 0) / 3 = 33.33 -> 33
		if got.Score != 33 {
			t.Errorf("score = %d, esperado 33", got.Score)
		}
	})
}

func TestRankUpcoming(t *testing.T) {
	t.Parallel()

	svc := health.NewService()
	svc.Now = fixedClock()

	v := &vehicle.Vehicle{Id: ulid.Make(), CurrentMileage: 50000}

	good := health.ItemWithLogs{
		Item: newMileageItem(5000),
		Logs: []*maintenance.MaintenanceLog{mileageLog(49000)},
	}
	dueSoon := health.ItemWithLogs{
		Item: newMileageItem(5000),
		Logs: []*maintenance.MaintenanceLog{mileageLog(46000)},
	}
	overdue := health.ItemWithLogs{
		Item: newMileageItem(5000),
		Logs: []*maintenance.MaintenanceLog{mileageLog(40000)},
	}
	never := health.ItemWithLogs{Item: newMileageItem(5000)}

	t.Run("orders by urgency with never last", func(t *testing.T) {
		ranked := svc.RankUpcoming(v, []health.ItemWithLogs{never, good, overdue, dueSoon}, 4)

		wantOrder := []health.Status{
			health.StatusOverdue,
			health.StatusDueSoon,
			health.StatusGood,
			health.StatusNever,
		}
		if len(ranked) != len(wantOrder) {
			t.Fatalf("len = %d, esperado %d", len(ranked), len(wantOrder))
		}
		for i, want := range wantOrder {
			if ranked[i].Status.Status != want {
				t.Errorf("posição %d: status = %s, esperado %s", i, ranked[i].Status.Status, want)
			}
		}
	})

	t.Run("truncates to requested count", func(t *testing.T) {
		ranked := svc.RankUpcoming(v, []health.ItemWithLogs{never, good, overdue, dueSoon}, 2)
		if len(ranked) != 2 {
			t.Fatalf("len = %d, esperado 2", len(ranked))
		}
		if ranked[0].Status.Status != health.StatusOverdue || ranked[1].Status.Status != health.StatusDueSoon {
			t.Errorf("top 2 = %s, %s", ranked[0].Status.Status, ranked[1].Status.Status)
		}
	})

	t.Run("applies default count", func(t *testing.T) {
		ranked := svc.RankUpcoming(v, []health.ItemWithLogs{never, good, overdue, dueSoon}, 0)
		if len(ranked) != health.DefaultUpcomingCount {
			t.Fatalf("len = %d, esperado %d", len(ranked), health.DefaultUpcomingCount)
		}
	})

	t.Run("stable for equal urgency", func(t *testing.T) {
		a := health.ItemWithLogs{
			Item: newMileageItem(5000),
			Logs: []*maintenance.MaintenanceLog{mileageLog(46000)},
		}
		b := health.ItemWithLogs{
			Item: newMileageItem(5000),
			Logs: []*maintenance.MaintenanceLog{mileageLog(46000)},
		}
		ranked := svc.RankUpcoming(v, []health.ItemWithLogs{a, b}, 2)
		if ranked[0].Item != a.Item || ranked[1].Item != b.Item {
			t.Error("itens de urgência igual deveriam manter a ordem de entrada")
		}
	})
}

func TestGetStatusRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status    health.Status
		wantColor string
	}{
		{health.StatusGood, "#10b981"},
		{health.StatusDueSoon, "#f59e0b"},
		{health.StatusOverdue, "#ef4444"},
		{health.StatusNever, "#9ca3af"},
	}

	for _, tt := range tests {
		r := health.GetStatusRange(tt.status)
		if r.Color != tt.wantColor {
			t.Errorf("cor de %s = %s, esperado %s", tt.status, r.Color, tt.wantColor)
		}
	}
}

func TestDisplayFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percent float64
		want    float64
	}{
		{100, 0},
		{20, 80},
		{0, 100},
		{150, 0},
		{-10, 100},
	}

	for _, tt := range tests {
		if got := health.DisplayFill(tt.percent); got != tt.want {
			t.Errorf("DisplayFill(%v) = %v, esperado %v", tt.percent, got, tt.want)
		}
	}
}

func intPtr(v int) *int { return &v }
