package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vignesh-ravichandran/Crimson/internal/config"
	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/response_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type AccountServiceInterface interface {
	GoogleLoginURL(ctx context.Context) (string, error)
	GoogleCallback(ctx context.Context, state, code string) (*response_models.AuthResponse, error)
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accounts repositories.AccountRepository
	rdb      *redis.Client
	cfg      *config.Config
	logger   *zap.Logger
}

func NewAccountService(accounts repositories.AccountRepository, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{accounts: accounts, rdb: rdb, cfg: cfg, logger: logger}
}

func (a *AccountService) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     a.cfg.GoogleClientID,
		ClientSecret: a.cfg.GoogleClientSecret,
		RedirectURL:  fmt.Sprintf("%s/auth/google/callback", a.cfg.OAuthRedirectBase),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GoogleLoginURL stores a single-use state token in redis and returns
// the consent URL to redirect the client to.
func (a *AccountService) GoogleLoginURL(ctx context.Context) (string, error) {
	state, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if err := a.rdb.Set(ctx, "oauth:state:"+state, "1", 10*time.Minute).Err(); err != nil {
		return "", utils.ErrDatabaseError
	}
	return a.oauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (a *AccountService) GoogleCallback(ctx context.Context, state, code string) (*response_models.AuthResponse, error) {
	if state == "" || code == "" {
		return nil, utils.ErrInvalidInput
	}
	// GETDEL keeps the state single-use.
	if v, err := a.rdb.GetDel(ctx, "oauth:state:"+state).Result(); err != nil || v == "" {
		return nil, utils.ErrBadCredentials
	}

	token, err := a.oauthConfig().Exchange(ctx, code)
	if err != nil {
		a.logger.Warn("oauth exchange failed", zap.Error(err))
		return nil, utils.ErrBadCredentials
	}

	gu, err := fetchGoogleUser(ctx, token)
	if err != nil {
		a.logger.Warn("google userinfo fetch failed", zap.Error(err))
		return nil, utils.ErrBadCredentials
	}
	if gu.Email == "" {
		return nil, utils.ErrInvalidInput
	}

	account, err := a.accounts.FindByEmailOrOAuthID(ctx, gu.Email, gu.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	switch {
	case account == nil:
		suffix, _ := utils.GenerateSecureToken(3)
		account = &dbm.Account{
			Email:           gu.Email,
			Username:        strings.Split(gu.Email, "@")[0] + "_" + suffix,
			DisplayName:     firstNonEmpty(gu.Name, gu.Email),
			AvatarURL:       gu.Picture,
			OAuthProvider:   "google",
			OAuthProviderID: gu.ID,
		}
		if err := a.accounts.Create(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
		a.logger.Info("account created via google", zap.String("account_id", account.ID.String()))
	case account.OAuthProviderID == "":
		account.OAuthProvider = "google"
		account.OAuthProviderID = gu.ID
		if account.AvatarURL == "" {
			account.AvatarURL = gu.Picture
		}
		if err := a.accounts.Update(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
		a.logger.Info("account linked to google", zap.String("account_id", account.ID.String()))
	}

	return a.issueToken(account)
}

type googleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func fetchGoogleUser(ctx context.Context, token *oauth2.Token) (*googleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google user info request failed: %s", resp.Status)
	}

	var gu googleUser
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return nil, err
	}
	return &gu, nil
}

func (a *AccountService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	existing, err := a.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &dbm.Account{
		Email:        req.Email,
		Username:     req.Username,
		DisplayName:  firstNonEmpty(req.DisplayName, req.Username),
		PasswordHash: hash,
	}
	if err := a.accounts.Create(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("account registered", zap.String("account_id", account.ID.String()))
	return a.issueToken(account)
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	account, err := a.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || account.PasswordHash == "" {
		return nil, utils.ErrBadCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrBadCredentials
	}
	return a.issueToken(account)
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	account, err := a.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if req.DisplayName != nil {
		account.DisplayName = *req.DisplayName
	}
	if req.AvatarURL != nil {
		account.AvatarURL = *req.AvatarURL
	}
	if err := a.accounts.Update(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toAccountResponse(account)
	return &resp, nil
}

func (a *AccountService) issueToken(account *dbm.Account) (*response_models.AuthResponse, error) {
	token, err := utils.CreateToken(account.ID, account.Username,
		time.Duration(a.cfg.JWTTTLMinutes)*time.Minute)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.AuthResponse{
		AccessToken: token,
		User:        toAccountResponse(account),
	}, nil
}

func toAccountResponse(account *dbm.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:          account.ID.String(),
		Username:    account.Username,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		AvatarURL:   account.AvatarURL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
