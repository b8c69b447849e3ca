// Package log envolve o logrus com o escopo da requisição em curso
package log

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

// Logger é o subconjunto do logrus usado pela aplicação
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
}

const (
	correlationIDField = "correlation_id"
	userIDField        = "user_id"
)

// logger filtra os campos em desenvolvimento; os níveis vêm do Entry embutido
type logger struct {
	*logrus.Entry
}

var L Logger = newLogger(logrus.StandardLogger())

func newLogger(base *logrus.Logger) Logger {
	return &logger{Entry: logrus.NewEntry(base)}
}

// campos mantidos em desenvolvimento
var devFields = map[string]bool{
	correlationIDField: true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"view":             true,
	"pg_code":          true,
}

// Setup define formato e nível do logger global a partir da configuração
func Setup(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = newLogger(logrus.StandardLogger())
	logrus.Infof("Nível de log configurado para: %s", logLevel)
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

func keep(key string) bool {
	if !IsDevelopment() {
		return true
	}
	return devFields[key] || strings.HasPrefix(key, "user_") || strings.HasPrefix(key, "invoice_")
}

func (l *logger) WithField(key string, value any) Logger {
	if !keep(key) {
		return l
	}
	return &logger{Entry: l.Entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if keep(k) {
			kept[k] = v
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

type requestKey struct{}

// Request é o escopo de log de uma requisição HTTP. UserID é preenchido pelo
// middleware de autenticação quando a sessão é válida.
type Request struct {
	CorrelationID string
	UserID        string
}

// StartRequest abre o escopo da requisição com um novo ID de correlação
func StartRequest(ctx context.Context) (context.Context, *Request) {
	req := &Request{CorrelationID: uuid.NewString()}
	return context.WithValue(ctx, requestKey{}, req), req
}

// RequestFrom devolve o escopo da requisição, ou nil fora de uma requisição
func RequestFrom(ctx context.Context) *Request {
	if ctx == nil {
		return nil
	}
	req, _ := ctx.Value(requestKey{}).(*Request)
	return req
}

// ForContext cria um logger com o ID de correlação e o usuário da requisição
func ForContext(ctx context.Context) Logger {
	req := RequestFrom(ctx)
	if req == nil {
		return L
	}

	fields := Fields{correlationIDField: req.CorrelationID}
	if req.UserID != "" {
		fields[userIDField] = req.UserID
	}
	return L.WithFields(fields)
}
