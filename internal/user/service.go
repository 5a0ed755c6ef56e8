package user

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/sahayak-lambda/internal/auth"
	"github.com/saulo-duarte/sahayak-lambda/internal/config"
	"golang.org/x/oauth2"
)

const userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

var ErrUserNotFound = errors.New("user not found")

type googleUserInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, string, error)
	RefreshToken(ctx context.Context, userID string) (string, error)
	GetUser(ctx context.Context, userID string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
	tokenTTL    time.Duration
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &userService{
		repo:        repo,
		oauthConfig: oauthConfig,
		tokenTTL:    24 * time.Hour,
	}
}

// GoogleLogin exchanges the OAuth authorization code, upserts the user record
// with encrypted Google tokens and returns a session JWT.
func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, string, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, "", err
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, "", err
	}

	u, err := s.repo.FindByEmail(info.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		u = &User{
			ID:    uuid.New(),
			Email: info.Email,
			Role:  "teacher",
		}
	}

	u.Name = info.Name
	u.AvatarURL = info.Picture
	if err := s.storeTokens(u, token); err != nil {
		log.WithError(err).Error("Failed to encrypt Google tokens")
		return nil, "", err
	}

	if u.CreatedAt.IsZero() {
		err = s.repo.Create(u)
	} else {
		err = s.repo.Update(u)
	}
	if err != nil {
		log.WithError(err).Error("Failed to persist user")
		return nil, "", err
	}

	jwtToken, err := auth.GenerateJWT(u.ID.String(), u.Role, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}

	log.WithField("user_id", u.ID.String()).Info("User logged in with Google")
	return u, jwtToken, nil
}

func (s *userService) RefreshToken(ctx context.Context, userID string) (string, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	jwtToken, err := auth.GenerateJWT(u.ID.String(), u.Role, s.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to issue refreshed token")
		return "", err
	}
	return jwtToken, nil
}

func (s *userService) GetUser(ctx context.Context, userID string) (*User, error) {
	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(userInfoEndpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, errors.New("google user info has no email")
	}
	return &info, nil
}

func (s *userService) storeTokens(u *User, token *oauth2.Token) error {
	access, err := config.Encrypt(token.AccessToken)
	if err != nil {
		return err
	}
	u.GoogleAccessToken = access

	if token.RefreshToken != "" {
		refresh, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			return err
		}
		u.GoogleRefreshToken = refresh
	}

	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		u.TokenExpiry = &expiry
	}
	return nil
}
