package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"taskboard/internal/application/command"
	"taskboard/internal/application/interfaces"
	"taskboard/internal/application/mapper"
	"taskboard/internal/application/query"
	"taskboard/internal/domain/apperrors"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
	"taskboard/internal/infrastructure"
)

const profileCacheTTL = 24 * time.Hour

type AuthService struct {
	userRepo     repositories.UserRepository
	jwtService   *infrastructure.JWTService
	redisService *infrastructure.RedisService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	redisService *infrastructure.RedisService,
) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		redisService: redisService,
	}
}

func (s *AuthService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.ErrValidation
	}

	// The unique index is the real guard against duplicate emails; this
	// lookup only gives the common case a friendlier path.
	existing, err := s.userRepo.FindByEmail(ctx, cmd.Email, false)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailExists
	}

	newUser := entities.NewUser(cmd.Username, cmd.Email, cmd.Password)
	if err := newUser.HashPassword(); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(createdUser.Id.Hex())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &command.RegisterUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, apperrors.ErrValidation
	}

	user, err := s.userRepo.FindByEmail(ctx, cmd.Email, true)
	if err != nil {
		return nil, err
	}
	// Same failure for unknown email and wrong password so callers cannot
	// probe which accounts exist.
	if user == nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.Id.Hex())
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*query.UserQueryResult, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Cache first, Mongo on a miss
	cached, err := s.redisService.GetProfile(ctx, userID)
	if err == nil && cached != nil {
		return &query.UserQueryResult{
			Result: mapper.NewUserResultFromEntity(cached),
		}, nil
	}

	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if err := s.redisService.SetProfile(ctx, userID, user, profileCacheTTL); err != nil {
		log.Printf("Failed to cache user profile: %v", err)
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
