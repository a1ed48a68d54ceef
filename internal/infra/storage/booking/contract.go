package booking

import "github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics: запросы идут в транзакцию из контекста, если она есть
type DBExecutor = dbmetrics.DBExecutor
