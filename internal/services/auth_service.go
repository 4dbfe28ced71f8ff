package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ita-growin/growin/internal/kakao"
	"github.com/ita-growin/growin/internal/models"
	"github.com/ita-growin/growin/internal/security"
	"golang.org/x/crypto/bcrypt"
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, bool, error)
	FindByNormalizedEmail(email string) (models.User, bool, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	Create(user *models.User) error
	UpdateProfile(userID uint, updates map[string]any) error
	UpdateRefreshToken(userID uint, refreshHash string, expiry *time.Time) error
	ClearRefreshToken(userID uint) error
	UpdateStatus(userID uint, status string) error
}

type SignupInput struct {
	AccessToken   string
	Work          string
	InterestField string
	Target        string
	DeviceToken   string
}

type ProfileUpdateInput struct {
	Nickname      *string
	Work          *string
	InterestField *string
	Target        *string
}

type AuthService struct {
	users      AuthUserRepository
	kakao      kakao.Client
	refreshTTL time.Duration
}

func NewAuthService(users AuthUserRepository, kakaoClient kakao.Client, refreshTTL time.Duration) *AuthService {
	return &AuthService{users: users, kakao: kakaoClient, refreshTTL: refreshTTL}
}

// KakaoSignup exchanges the Kakao access token for a profile, creates the
// user, and issues an opaque refresh token.
func (service *AuthService) KakaoSignup(ctx context.Context, input SignupInput) (models.User, string, error) {
	if strings.TrimSpace(input.AccessToken) == "" {
		return models.User{}, "", ErrInvalidField
	}
	if !models.IsValidWork(input.Work) || !models.IsValidInterestField(input.InterestField) || !models.IsValidTarget(input.Target) {
		return models.User{}, "", ErrInvalidField
	}

	info, err := service.kakao.UserInfo(ctx, input.AccessToken)
	if err != nil {
		return models.User{}, "", err
	}
	if info.Email == "" {
		return models.User{}, "", ErrInvalidField
	}

	exists, err := service.users.ExistsByNormalizedEmail(info.Email)
	if err != nil {
		return models.User{}, "", err
	}
	if exists {
		return models.User{}, "", ErrUserAlreadyExists
	}

	user := models.User{
		Email:         info.Email,
		Nickname:      info.Nickname,
		LoginType:     models.LoginTypeKakao,
		Status:        models.UserStatusActive,
		Work:          input.Work,
		InterestField: input.InterestField,
		Target:        input.Target,
		DeviceToken:   strings.TrimSpace(input.DeviceToken),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, "", err
	}

	refreshToken, err := service.issueRefreshToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, refreshToken, nil
}

// KakaoLogin resolves an existing user by the Kakao account email and
// rotates the refresh token.
func (service *AuthService) KakaoLogin(ctx context.Context, accessToken string, deviceToken string) (models.User, string, error) {
	if strings.TrimSpace(accessToken) == "" {
		return models.User{}, "", ErrInvalidField
	}

	info, err := service.kakao.UserInfo(ctx, accessToken)
	if err != nil {
		return models.User{}, "", err
	}

	user, found, err := service.users.FindByNormalizedEmail(info.Email)
	if err != nil {
		return models.User{}, "", err
	}
	if !found {
		return models.User{}, "", ErrUserNotFound
	}
	if user.Status != models.UserStatusActive {
		return models.User{}, "", ErrUserSuspended
	}

	if token := strings.TrimSpace(deviceToken); token != "" && token != user.DeviceToken {
		if err := service.users.UpdateProfile(user.ID, map[string]any{"device_token": token}); err != nil {
			return models.User{}, "", err
		}
		user.DeviceToken = token
	}

	refreshToken, err := service.issueRefreshToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, refreshToken, nil
}

// Refresh validates an opaque refresh token and rotates it. The token's user
// id prefix keys the lookup, so validation costs one bcrypt comparison.
func (service *AuthService) Refresh(refreshToken string) (models.User, string, error) {
	userID, secret, ok := splitRefreshToken(refreshToken)
	if !ok {
		return models.User{}, "", ErrInvalidRefreshToken
	}

	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, "", err
	}
	if !found || user.RefreshTokenHash == "" {
		return models.User{}, "", ErrInvalidRefreshToken
	}
	if bcrypt.CompareHashAndPassword([]byte(user.RefreshTokenHash), []byte(secret)) != nil {
		return models.User{}, "", ErrInvalidRefreshToken
	}
	if user.RefreshTokenExpiry == nil || user.RefreshTokenExpiry.Before(time.Now()) {
		return models.User{}, "", ErrInvalidRefreshToken
	}
	if user.Status != models.UserStatusActive {
		return models.User{}, "", ErrUserSuspended
	}

	rotated, err := service.issueRefreshToken(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	return user, rotated, nil
}

// Logout revokes the stored refresh token.
func (service *AuthService) Logout(userID uint) error {
	return service.users.ClearRefreshToken(userID)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the provided profile edits after enum validation.
func (service *AuthService) UpdateProfile(userID uint, input ProfileUpdateInput) (models.User, error) {
	updates := make(map[string]any)

	if input.Nickname != nil {
		nickname := strings.TrimSpace(*input.Nickname)
		if nickname == "" {
			return models.User{}, ErrInvalidField
		}
		updates["nickname"] = nickname
	}
	if input.Work != nil {
		if !models.IsValidWork(*input.Work) {
			return models.User{}, ErrInvalidField
		}
		updates["work"] = *input.Work
	}
	if input.InterestField != nil {
		if !models.IsValidInterestField(*input.InterestField) {
			return models.User{}, ErrInvalidField
		}
		updates["interest_field"] = *input.InterestField
	}
	if input.Target != nil {
		if !models.IsValidTarget(*input.Target) {
			return models.User{}, ErrInvalidField
		}
		updates["target"] = *input.Target
	}

	if len(updates) == 0 {
		return models.User{}, ErrInvalidField
	}

	if err := service.users.UpdateProfile(userID, updates); err != nil {
		return models.User{}, err
	}
	return service.FindByID(userID)
}

// Withdraw soft-deletes the account: the row stays, the status flips and the
// refresh token is revoked.
func (service *AuthService) Withdraw(userID uint) error {
	if err := service.users.UpdateStatus(userID, models.UserStatusWithdrawn); err != nil {
		return err
	}
	return service.users.ClearRefreshToken(userID)
}

// issueRefreshToken stores a bcrypt hash of a fresh secret and returns the
// composite token handed to the client.
func (service *AuthService) issueRefreshToken(userID uint) (string, error) {
	secret, err := security.NewRefreshToken()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(service.refreshTTL)
	if err := service.users.UpdateRefreshToken(userID, string(hash), &expiry); err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(userID), 10) + "." + secret, nil
}

func splitRefreshToken(value string) (uint, string, bool) {
	rawID, secret, found := strings.Cut(strings.TrimSpace(value), ".")
	if !found || secret == "" {
		return 0, "", false
	}
	userID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil || userID == 0 {
		return 0, "", false
	}
	return uint(userID), secret, true
}
