// Package services contains the store's business logic: accounts and
// sessions in UserService, user-scoped CRUD in DataService.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/cryptox"
	"github.com/dmitrijs2005/touchbase/internal/dbx"
	"github.com/dmitrijs2005/touchbase/internal/logging"
	"github.com/dmitrijs2005/touchbase/internal/server/auth"
	"github.com/dmitrijs2005/touchbase/internal/server/config"
	"github.com/dmitrijs2005/touchbase/internal/server/models"
	"github.com/dmitrijs2005/touchbase/internal/server/repositories/repomanager"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Session is what a successful sign-in or refresh hands back.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UserID       string
	Email        string
}

type credentials struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6,max=72"`
}

type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	validate                     *validator.Validate
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	autoConfirm                  bool
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		logger:                       logger,
		validate:                     validator.New(validator.WithRequiredStructEnabled()),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		autoConfirm:                  cfg.AutoConfirm,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates an account. Unless auto-confirm is on, the account stays
// unconfirmed and the returned bool is true; the confirmation token is
// written to the log in place of an email.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, bool, error) {
	c := credentials{Email: normalizeEmail(email), Password: password}
	if err := s.validate.Struct(c); err != nil {
		return nil, false, validationError(err)
	}

	salt := cryptox.NewSalt()
	user := &models.User{
		Email:        c.Email,
		Salt:         salt,
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
		Confirmed:    s.autoConfirm,
	}
	if !s.autoConfirm {
		token := uuid.NewString()
		user.ConfirmationToken = &token
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, false, common.ErrAlreadyRegistered
		}
		return nil, false, fmt.Errorf("error creating user: %w", err)
	}

	if user.ConfirmationToken != nil {
		s.logger.Info(ctx, "confirmation token issued", "email", u.Email, "token", *user.ConfirmationToken)
	}
	return u, !s.autoConfirm, nil
}

// Confirm finishes a sign-up started without auto-confirm.
func (s *UserService) Confirm(ctx context.Context, token string) error {
	if token == "" {
		return common.ErrInvalidConfirmation
	}
	id, err := s.repomanager.Users(s.db).Confirm(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidConfirmation
		}
		return fmt.Errorf("error confirming user: %w", err)
	}
	s.logger.Info(ctx, "user confirmed", "user_id", id)
	return nil
}

// SignIn checks credentials and mints a session. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// burn comparable time on a random salt
			cryptox.HashPassword([]byte(password), cryptox.NewSalt())
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}
	if !user.Confirmed {
		return nil, common.ErrEmailNotConfirmed
	}
	return s.newSession(ctx, user, s.db)
}

// Refresh rotates refreshToken inside a transaction and returns a new
// session. Expired tokens are removed and yield ErrRefreshTokenExpired.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Find(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		if err := repo.Delete(ctx, refreshToken); err != nil {
			s.logger.Warn(ctx, "failed to delete expired refresh token", "error", err)
		}
		return nil, common.ErrRefreshTokenExpired
	}

	var session *Session
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.RefreshTokens(tx).Delete(ctx, refreshToken); err != nil {
			return fmt.Errorf("error deleting refresh token: %w", err)
		}
		user, err := s.repomanager.Users(tx).GetByID(ctx, token.UserID)
		if err != nil {
			return fmt.Errorf("error loading user: %w", err)
		}
		session, err = s.newSession(ctx, user, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// SignOut revokes refreshToken. Unknown tokens are not an error.
func (s *UserService) SignOut(ctx context.Context, refreshToken string) error {
	if err := s.repomanager.RefreshTokens(s.db).Delete(ctx, refreshToken); err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// UserIDFromAccessToken validates an access token for the interceptor.
func (s *UserService) UserIDFromAccessToken(token string) (string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (s *UserService) newSession(ctx context.Context, user *models.User, tx dbx.DBTX) (*Session, error) {
	access, expires, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, user.ID, refresh, time.Now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}
	return &Session{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expires,
		UserID:       user.ID,
		Email:        user.Email,
	}, nil
}
