package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trading-journal/config"
	"trading-journal/internal/model"
	"trading-journal/internal/repository"
	"trading-journal/pkg/cache"
	"trading-journal/pkg/logger"
	"trading-journal/pkg/utils"
)

const sessionCacheKey = "session:%s"

type AuthService interface {
	SignUp(ctx context.Context, email, password, displayName string) (*model.User, *model.Session, error)
	SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error)
	SignOut(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (*model.Session, error)
	CleanupExpired(ctx context.Context) (int64, error)
}

type authService struct {
	cfg         *config.Config
	log         *logger.Logger
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	uow         repository.UnitOfWork
	cache       cache.Cache
}

func NewAuthService(
	cfg *config.Config,
	log *logger.Logger,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	uow repository.UnitOfWork,
	inmemoryCache cache.Cache,
) AuthService {
	return &authService{
		cfg:         cfg,
		log:         log,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		uow:         uow,
		cache:       inmemoryCache,
	}
}

func (s *authService) SignUp(ctx context.Context, email, password, displayName string) (*model.User, *model.Session, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}

	// The user row and its first session commit together.
	var session *model.Session
	err = s.uow.Run(func(opts ...utils.DBOption) error {
		if err := s.userRepo.Create(ctx, user, opts...); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		session, err = s.issueSession(ctx, user, opts...)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	s.cacheSession(session)

	s.log.InfoContext(ctx, "User signed up", logger.StringField("email", email))
	return user, session, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.cacheSession(session)
	return user, session, nil
}

func (s *authService) SignOut(ctx context.Context, token string) error {
	s.cache.Delete(fmt.Sprintf(sessionCacheKey, token))

	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Resolve maps a bearer token to its session, consulting the cache first.
func (s *authService) Resolve(ctx context.Context, token string) (*model.Session, error) {
	key := fmt.Sprintf(sessionCacheKey, token)
	if session, ok := cache.GetTyped[*model.Session](s.cache, key); ok {
		if session.Expired(time.Now()) {
			s.cache.Delete(key)
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil || session.Expired(time.Now()) {
		return nil, ErrSessionNotFound
	}

	s.cache.Set(key, session, s.cfg.Cache.DefaultExpiration)
	return session, nil
}

func (s *authService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	if removed > 0 {
		s.log.InfoContext(ctx, "Removed expired sessions", logger.IntField("count", int(removed)))
	}
	return removed, nil
}

func (s *authService) issueSession(ctx context.Context, user *model.User, opts ...utils.DBOption) (*model.Session, error) {
	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		User:      *user,
		ExpiresAt: time.Now().Add(s.cfg.Auth.SessionTTL),
	}
	if err := s.sessionRepo.Create(ctx, session, opts...); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// cacheSession is called only after the session is committed.
func (s *authService) cacheSession(session *model.Session) {
	s.cache.Set(fmt.Sprintf(sessionCacheKey, session.Token), session, s.cfg.Cache.DefaultExpiration)
}
