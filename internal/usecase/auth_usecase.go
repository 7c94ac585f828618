package usecase

import (
	"context"
	"errors"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	//400 入力不足
	ErrValidation = errors.New("validation error")
	//401 メール・パスワードどちらが違うかは教えない
	ErrInvalidCredentials = errors.New("invalid email or password")
	//409 email重複
	ErrEmailTaken = errors.New("email already exists")
	//500
	ErrInternal = errors.New("internal error")
)

// tokenの有効期限は7日
const tokenTTL = 7 * 24 * time.Hour

// bcryptコスト
const bcryptCost = 10

type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthOutput struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase struct {
	cfg   config.Config
	users repository.UserRepository
}

func NewAuthUsecase(cfg config.Config, users repository.UserRepository) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users}
}

// Registerは「先に検索して409、それから挿入」の順。
// 同時登録でunique制約に当たった場合も409に畳む。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*AuthOutput, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, ErrValidation
	}

	existing, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInternal
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, ErrInternal
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(pwHash),
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, ErrInternal
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, ErrInternal
	}

	return &AuthOutput{
		Token: token,
		User:  UserDTO{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*AuthOutput, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrValidation
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	//パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, ErrInternal
	}

	return &AuthOutput{
		Token: token,
		User:  UserDTO{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

// HS256で {sub, email, name} を7日期限で署名する
func (u *AuthUsecase) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(u.cfg.JWTSecret))
}
