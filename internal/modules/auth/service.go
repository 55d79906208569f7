package auth

import (
	"context"
	"errors"
	"strings"

	"petsitter/internal/domain"
	"petsitter/internal/middleware"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service owns registration, login, logout, user updates and address book
// operations for the identity store.
type Service struct {
	users     UserRepository
	tokens    TokenRepository
	addresses AddressRepository
	jwt       jwtService
}

func NewService(users UserRepository, tokens TokenRepository, addresses AddressRepository, jwt jwtService) *Service {
	return &Service{users: users, tokens: tokens, addresses: addresses, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, *domain.Profile, string, error) {
	if req.Password != req.Password2 {
		return nil, nil, "", ErrPasswordMismatch
	}

	role := domain.RoleNormalUser
	if req.Role != "" {
		parsed, ok := domain.ParseUserRole(req.Role)
		if !ok {
			return nil, nil, "", ErrInvalidRole
		}
		role = parsed
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, "", err
	}
	if exists {
		return nil, nil, "", ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", err
	}

	u := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, nil, "", ErrEmailAlreadyExists
		}
		return nil, nil, "", err
	}

	p, err := s.SyncProfile(ctx, u)
	if err != nil {
		return nil, nil, "", err
	}
	p.Name = req.Name
	p.PhoneNumber = req.PhoneNumber
	p.PAN = req.PAN
	p.Aadhar = req.Aadhar
	// Trust policy: petsitters require operational vetting before they are
	// marketplace-visible, customers do not.
	p.Verified = role != domain.RolePetsitter
	if err := s.users.SaveProfile(ctx, p); err != nil {
		return nil, nil, "", err
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, nil, "", err
	}
	return u, p, token, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, *domain.Profile, string, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, "", ErrInvalidCredentials
		}
		return nil, nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, "", ErrInvalidCredentials
	}

	p, err := s.users.GetProfile(ctx, u.ID)
	if err != nil {
		return nil, nil, "", err
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, nil, "", err
	}
	return u, p, token, nil
}

// Logout revokes the presented token. A token that was never recorded or is
// already revoked yields ErrNotFound.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	err := s.tokens.Revoke(ctx, middleware.HashToken(rawToken))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// UpdateMe applies username/email changes and re-syncs the denormalized
// profile copies.
func (s *Service) UpdateMe(ctx context.Context, userID int64, req UpdateMeRequest) (*domain.User, *domain.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	if req.Username != nil {
		u.Username = strings.TrimSpace(*req.Username)
	}
	if req.Email != nil {
		newEmail := strings.TrimSpace(*req.Email)
		if !strings.EqualFold(newEmail, u.Email) {
			exists, err := s.users.ExistsByEmail(ctx, newEmail)
			if err != nil {
				return nil, nil, err
			}
			if exists {
				return nil, nil, ErrEmailAlreadyExists
			}
		}
		u.Email = newEmail
	}

	if err := s.users.Update(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, nil, ErrEmailAlreadyExists
		}
		return nil, nil, err
	}

	p, err := s.SyncProfile(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, p, nil
}

// SyncProfile creates the user's profile if absent and refreshes the
// denormalized email/username copies when they drifted. Every user-write
// path calls this explicitly; there is no persistence hook.
func (s *Service) SyncProfile(ctx context.Context, u *domain.User) (*domain.Profile, error) {
	p, err := s.users.GetProfile(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &domain.Profile{
			UserID:   u.ID,
			Role:     u.Role,
			Verified: u.Role != domain.RolePetsitter,
		}
	}

	if p.Email != u.Email || p.Username != u.Username {
		p.Email = u.Email
		p.Username = u.Username
		if err := s.users.SaveProfile(ctx, p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (s *Service) ListAddresses(ctx context.Context, userID int64) ([]domain.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

func (s *Service) CreateAddress(ctx context.Context, userID int64, req CreateAddressRequest) (*domain.Address, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	a := &domain.Address{
		UserID:    userID,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zipcode:   req.Zipcode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Country:   req.Country,
	}
	if err := s.addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) issueToken(ctx context.Context, u *domain.User) (string, error) {
	token, jti, expiresAt, err := s.jwt.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return "", err
	}

	rec := &domain.AuthToken{
		UserID:    u.ID,
		TokenHash: middleware.HashToken(token),
		JTI:       jti,
		ExpiresAt: expiresAt,
	}
	if err := s.tokens.Create(ctx, rec); err != nil {
		return "", err
	}
	return token, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// SQLite path: gorm surfaces the constraint name in the message.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
