package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Init создаёт JSON-логгер сервиса, пишущий в stdout
func Init(serviceName string) *logrus.Logger {
	return New(os.Stdout, serviceName, os.Getenv("LOG_LEVEL"))
}

func New(out io.Writer, serviceName, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	// JSON формат с привычными для сборщика логов ключами
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "ts",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	SetLevel(l, level)

	// Поле service добавляется к каждой записи
	l.AddHook(serviceHook{name: serviceName})
	return l
}

// SetLevel устанавливает уровень логирования; неизвестное значение - info
func SetLevel(l *logrus.Logger, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
}

// WithRequestID создаёт entry с request-id (если он есть)
func WithRequestID(logger *logrus.Logger, requestID string) *logrus.Entry {
	if requestID == "" {
		return logrus.NewEntry(logger)
	}
	return logger.WithField("request_id", requestID)
}

type serviceHook struct {
	name string
}

func (h serviceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.name
	return nil
}
