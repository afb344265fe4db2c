package logger

// Logger is the logging contract the application codes against.
// Concrete implementations live in subpackages (see zap_adapter).
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func NewField(key string, value interface{}) Field {
	return Field{
		Key:   key,
		Value: value,
	}
}

// Nop is a Logger that discards everything. Useful in tests.
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) Info(string, ...Field)  {}
func (Nop) Warn(string, ...Field)  {}
func (Nop) Error(string, ...Field) {}
func (Nop) With(...Field) Logger   { return Nop{} }
