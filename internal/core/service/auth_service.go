package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/workspherex/workforce-api/internal/core/domain"
	"github.com/workspherex/workforce-api/internal/core/ports"
)

// TokenDenylist abstracts the revoked-token store (Redis). Entries carry a
// TTL so revocations expire together with the token they block.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// AuthService implements signup, login, and logout.
type AuthService struct {
	repo        ports.EmployeeRepository
	denylist    TokenDenylist
	jwtSecret   string
	tokenTTL    time.Duration
	adminEmails map[string]struct{}
	log         zerolog.Logger
}

// NewAuthService builds an AuthService. adminEmails is the provisioning seed:
// accounts signing up with one of these addresses are stored with the admin
// role, everyone else as a regular employee.
func NewAuthService(repo ports.EmployeeRepository, denylist TokenDenylist, jwtSecret string, tokenTTL time.Duration, adminEmails []string, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	allow := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		allow[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &AuthService{
		repo:        repo,
		denylist:    denylist,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		adminEmails: allow,
		log:         log,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Employee, error) {
	fields := make(map[string]string)
	for name, v := range map[string]string{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
		"password":  input.Password,
	} {
		if strings.TrimSpace(v) == "" {
			fields[name] = name + " is required"
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	employeeID, err := s.uniqueEmployeeID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		EmployeeID:   employeeID,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         s.roleFor(input.Email),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("employee_id", created.EmployeeID).Str("role", created.Role).Msg("employee registered")
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	employee, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the caller.
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(employee)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("employee_id", employee.EmployeeID).Str("role", employee.Role).Msg("employee logged in")
	return token, employee, nil
}

// Logout adds the token to the denylist for its remaining lifetime. Revoking
// an already-revoked or unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrNoToken
	}
	return s.denylist.Revoke(ctx, token, s.remainingTTL(token))
}

func (s *AuthService) generateToken(employee *domain.Employee) (string, error) {
	claims := jwt.MapClaims{
		"id":          employee.ID,
		"employee_id": employee.EmployeeID,
		"role":        employee.Role,
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// remainingTTL reads exp from the token without verifying it; a token that
// does not parse is still denylisted for a full token lifetime.
func (s *AuthService) remainingTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s.tokenTTL
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.tokenTTL
	}
	ttl := time.Until(exp.Time)
	if ttl <= 0 || ttl > s.tokenTTL {
		return s.tokenTTL
	}
	return ttl
}

func (s *AuthService) roleFor(email string) string {
	if _, ok := s.adminEmails[strings.ToLower(strings.TrimSpace(email))]; ok {
		return domain.RoleAdmin
	}
	return domain.RoleEmployee
}

// uniqueEmployeeID draws EMP<0-99999> ids until one is free. No retry cap:
// draws are cheap and the id space stays sparse at this system's scale.
func (s *AuthService) uniqueEmployeeID(ctx context.Context) (string, error) {
	for {
		id := generateEmployeeID()
		exists, err := s.repo.ExistsByEmployeeID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check employee id: %w", err)
		}
		if !exists {
			return id, nil
		}
	}
}

func generateEmployeeID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("EMP%d", time.Now().UnixNano()%100000)
	}
	return fmt.Sprintf("EMP%d", binary.BigEndian.Uint32(b)%100000)
}
