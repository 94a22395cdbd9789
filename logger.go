package xorlist

import "github.com/google/uuid"

//go:generate mockgen -source=logger.go -destination=internal/mocks/logger_mock.go -package=mocks -mock_names Logger=LoggerMock

// Logger абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
// id идентификатор списка, выдаётся при создании списка с WithLogger.
type Logger interface {
	// ListMisuseIgnored ошибка использования проглоченная политикой PolicyUnchecked.
	ListMisuseIgnored(id uuid.UUID, err error)

	// ListAllocationFailed аллокатор отказал в выдаче узла.
	ListAllocationFailed(id uuid.UUID, err error)
}

type nopLogger struct{}

func (nopLogger) ListMisuseIgnored(uuid.UUID, error)    {}
func (nopLogger) ListAllocationFailed(uuid.UUID, error) {}
