package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/invoice-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
	"github.com/vfg2006/invoice-dashboard-api/internal/domain"
	"github.com/vfg2006/invoice-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/invoice-dashboard-api/pkg/log"
	"github.com/vfg2006/invoice-dashboard-api/pkg/metrics"
	"github.com/vfg2006/invoice-dashboard-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Authorize(ctx context.Context, credentials domain.Credentials) (*domain.User, error)
	SignIn(ctx context.Context, credentials domain.Credentials) (*Session, error)
	Authenticate(ctx context.Context, prevState string, credentials domain.Credentials) (string, *Session, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Session é a sessão emitida após um login bem sucedido
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

type Service struct {
	userRepo   repository.UserRepository
	secret     []byte
	sessionTTL time.Duration
	validate   *validator.Validate
	now        func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	ttl := cfg.Auth.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		userRepo:   userRepo,
		secret:     []byte(cfg.Auth.Secret),
		sessionTTL: ttl,
		validate:   validator.New(),
		now:        time.Now,
	}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareWithDummy gasta o mesmo tempo de uma verificação real quando o email não existe
func compareWithDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("invoice-dashboard-dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Authorize retorna o usuário quando as credenciais conferem.
// Credenciais mal formadas, email desconhecido e senha errada retornam nil, nil.
// Somente falhas de leitura do usuário viram erro.
func (s *Service) Authorize(ctx context.Context, credentials domain.Credentials) (*domain.User, error) {
	credentials.Email = handleEmail(credentials.Email)

	if err := s.validate.Struct(credentials); err != nil {
		log.ForContext(ctx).Debug("Credenciais com formato inválido")
		return nil, nil
	}

	user, err := s.userRepo.GetUserByEmail(ctx, credentials.Email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		compareWithDummy(credentials.Password)
		return nil, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return nil, nil
	}

	return user, nil
}

// SignIn autoriza as credenciais e emite a sessão. Requisição cancelada não é falha de autenticação.
func (s *Service) SignIn(ctx context.Context, credentials domain.Credentials) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := s.Authorize(ctx, credentials)
	if err != nil {
		return nil, NewAuthError(CallbackRouteError, err, apiErrors.ErrInternalServer, "Erro ao consultar usuário")
	}

	if user == nil {
		return nil, NewAuthError(CredentialsSignin, ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "")
	}

	return s.IssueSession(user)
}

// IssueSession assina uma nova sessão para o usuário
func (s *Service) IssueSession(user *domain.User) (*Session, error) {
	expiresAt := s.now().Add(s.sessionTTL)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignSession, err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Authenticate é a ação do formulário de login. Falhas de autenticação viram
// mensagem; qualquer outro erro é propagado. prevState é ignorado.
func (s *Service) Authenticate(ctx context.Context, prevState string, credentials domain.Credentials) (string, *Session, error) {
	logger := log.ForContext(ctx)

	session, err := s.SignIn(ctx, credentials)
	if err == nil {
		metrics.RecordAuthAttempt("success")
		logger.WithField("user_id", session.User.ID).Info("Login realizado")
		return "", session, nil
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		if authErr.Type == CredentialsSignin {
			metrics.RecordAuthAttempt("invalid_credentials")
		} else {
			metrics.RecordAuthAttempt("error")
			logger.WithError(err).Error("Erro durante a autenticação")
		}
		return authErr.Message(), nil, nil
	}

	metrics.RecordAuthAttempt("error")
	return "", nil, err
}

func (s *Service) generateJWT(user *domain.User, expiresAt time.Time) (string, error) {
	jti, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		logrus.WithError(err).Debug("Token rejeitado")
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	return email
}
