package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

// Config параметры создания бронирований
type Config struct {
	HorizonWeekdays int            // на сколько рабочих дней вперед (включая сегодня) можно бронировать
	Location        *time.Location // часовой пояс учебного заведения
	NotifyTimeout   time.Duration  // таймаут вызова функции уведомлений
}

// Request модель запроса на создание бронирования
type Request struct {
	StudentID   uuid.UUID        // ID студента (из токена)
	ProfessorID uuid.UUID        // ID преподавателя
	Date        time.Time        // Дата консультации (без времени)
	StartTime   types.TimeString // Начало слота сетки
	EndTime     types.TimeString // Конец слота сетки
	Mode        string           // online | onsite
	Topic       string           // Тема консультации
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	StudentID   uuid.UUID
	ProfessorID uuid.UUID
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Mode        string
	Topic       string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
