package profile

import "github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов (БД или транзакция из контекста)
type DBExecutor = dbmetrics.DBExecutor
