// Package kakao fetches user profiles from the Kakao OAuth API.
package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var ErrInvalidAccessToken = errors.New("kakao access token rejected")

// UserInfo is the subset of the Kakao profile this service needs.
type UserInfo struct {
	ID       int64
	Email    string
	Nickname string
}

type userInfoResponse struct {
	ID           int64 `json:"id"`
	KakaoAccount struct {
		Email   string `json:"email"`
		Profile struct {
			Nickname string `json:"nickname"`
		} `json:"profile"`
	} `json:"kakao_account"`
}

// Client resolves a Kakao access token to the account's profile.
type Client interface {
	UserInfo(ctx context.Context, accessToken string) (UserInfo, error)
}

type clientImpl struct {
	userInfoURL string
	httpClient  *http.Client
}

func NewClient(userInfoURL string) Client {
	return &clientImpl{
		userInfoURL: userInfoURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (client *clientImpl) UserInfo(ctx context.Context, accessToken string) (UserInfo, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.userInfoURL, nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("build kakao request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+strings.TrimSpace(accessToken))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return UserInfo{}, fmt.Errorf("call kakao user info: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		return UserInfo{}, ErrInvalidAccessToken
	}
	if response.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("kakao user info returned status %d", response.StatusCode)
	}

	var payload userInfoResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return UserInfo{}, fmt.Errorf("decode kakao user info: %w", err)
	}

	return UserInfo{
		ID:       payload.ID,
		Email:    strings.ToLower(strings.TrimSpace(payload.KakaoAccount.Email)),
		Nickname: strings.TrimSpace(payload.KakaoAccount.Profile.Nickname),
	}, nil
}
