package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"davetiye.store/configs/configslog"
	"davetiye.store/models"
	"davetiye.store/repositories"
)

// AuthServiceError özel servis hataları.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidInput       AuthServiceError = "e-posta ve parola zorunludur"
	ErrAuthEmailTaken         AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrAuthInvalidCredentials AuthServiceError = "e-posta ya da parola hatalı"
	ErrAuthTokenFailed        AuthServiceError = "oturum anahtarı üretilemedi"
)

// tokenTTL oturum token'ının geçerlilik süresi.
const tokenTTL = 24 * time.Hour

// Claims JWT gövdesi. Yetki bilgisi token'da taşınır, middleware her
// istekte imzayı doğrular.
type Claims struct {
	UserID  uint `json:"uid"`
	IsAdmin bool `json:"adm"`
	jwt.RegisteredClaims
}

// IAuthService kayıt ve giriş işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	userRepo  repositories.IUserRepository
	jwtSecret []byte
}

// NewAuthService bağımlılıkları ile bir AuthService oluşturur.
func NewAuthService(userRepo repositories.IUserRepository, jwtSecret string) IAuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: []byte(jwtSecret)}
}

// Register yeni bir müşteri hesabı açar. Admin hesapları seed ile gelir,
// bu yoldan açılamaz.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, ErrAuthInvalidInput
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrAuthEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		configslog.Log.Error("Kullanıcı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Login kimlik bilgilerini doğrular ve imzalı bir JWT döner. Hangi
// adımın başarısız olduğu dışarı sızdırılmaz.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrAuthInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrAuthInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		configslog.Log.Error("JWT imzalanamadı", zap.Uint("userID", user.ID), zap.Error(err))
		return "", nil, ErrAuthTokenFailed
	}
	return token, user, nil
}
