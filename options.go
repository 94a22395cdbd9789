package xorlist

import "fmt"

// Policy политика реакции на некорректное использование и нехватку узлов.
// Выбирается один раз при создании списка.
type Policy int

const (
	// PolicyChecked ошибки возвращаются вызывающему, список остаётся неизменным.
	PolicyChecked Policy = iota

	// PolicyUnchecked ошибки не возвращаются: изменяющие операции становятся
	// пустыми, чтения отдают нулевое значение. О проглоченной ошибке
	// сообщается логгеру.
	PolicyUnchecked
)

func (p Policy) String() string {
	switch p {
	case PolicyChecked:
		return "checked"
	case PolicyUnchecked:
		return "unchecked"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Option тип опции для создания списка.
type Option interface {
	String() string
	apply(c *config)
}

// WithPolicy задаёт политику обработки ошибок, по умолчанию PolicyChecked.
func WithPolicy(p Policy) Option {
	return optionPolicy(p)
}

// WithLogger задаёт логгер событий списка. Список при этом получает
// собственный идентификатор, см. List.ID.
func WithLogger(log Logger) Option {
	return optionLogger{log: log}
}

type config struct {
	policy Policy
	log    Logger
}

func newConfig(opts []Option) config {
	c := config{
		policy: PolicyChecked,
	}
	for _, opt := range opts {
		opt.apply(&c)
	}

	return c
}

type optionPolicy Policy

func (o optionPolicy) String() string {
	return "set error policy to " + Policy(o).String()
}

func (o optionPolicy) apply(c *config) {
	c.policy = Policy(o)
}

type optionLogger struct {
	log Logger
}

func (o optionLogger) String() string {
	return fmt.Sprintf("set logger %T", o.log)
}

func (o optionLogger) apply(c *config) {
	c.log = o.log
}
