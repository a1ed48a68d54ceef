package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/domain"
)

// Config параметры просмотра расписания
type Config struct {
	HorizonWeekdays int            // сколько рабочих дней (включая сегодня) открыто для бронирования
	Location        *time.Location // часовой пояс учебного заведения
}

// Request модель запроса расписания преподавателя
type Request struct {
	UserID      uuid.UUID  // ID пользователя (для логирования, не влияет на результат)
	ProfessorID uuid.UUID  // ID преподавателя
	Date        *time.Time // Конкретная дата; nil - все даты горизонта бронирования
}

// Response модель ответа с расписанием и свободными слотами
type Response struct {
	Professor *domain.ProfessorDetail
	Blocks    []*domain.ScheduleBlock // Только видимые студентам блоки
	Week      []domain.DaySlots       // Недельная сетка по видимым блокам
	Days      []Day                   // Даты с открытыми для бронирования слотами
}

// Day слоты, доступные для бронирования в конкретную дату
type Day struct {
	Date    time.Time
	Weekday int
	Slots   []domain.SlotPair
}
