package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// bookableDays собирает открытые слоты для каждого рабочего дня горизонта бронирования.
// Дни без открытых слотов пропускаются.
func bookableDays(availability *domain.Availability, now time.Time, horizonWeekdays int) []Day {
	today := domain.Truncate(now)
	last := domain.HorizonEnd(today, horizonWeekdays)

	days := make([]Day, 0, horizonWeekdays)
	for d := today; !d.After(last); d = d.AddDate(0, 0, 1) {
		day, ok := bookableDay(availability, d, now)
		if !ok {
			continue
		}
		days = append(days, day)
	}
	return days
}

// bookableDay возвращает открытые слоты конкретной даты.
// Сегодняшние слоты, которые уже начались, не возвращаются.
func bookableDay(availability *domain.Availability, date, now time.Time) (Day, bool) {
	weekday, err := domain.WeekdayOf(date)
	if err != nil {
		return Day{}, false
	}

	slots := availability.BookableOn(date, now)
	if len(slots) == 0 {
		return Day{}, false
	}

	return Day{
		Date:    domain.Truncate(date),
		Weekday: weekday,
		Slots:   slots,
	}, true
}
