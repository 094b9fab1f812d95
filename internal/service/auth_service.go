package service

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/Emman225/bos/internal/api"
	"github.com/Emman225/bos/internal/domain"
	"github.com/Emman225/bos/internal/repository"
)

// AuthService owns login/session probing against the auth endpoints and
// the admin-side user CRUD.
type AuthService struct {
	client *api.Client
	repo   repository.UserRepository
	log    *zap.Logger
}

func NewAuthService(client *api.Client, repo repository.UserRepository, log *zap.Logger) *AuthService {
	return &AuthService{client: client, repo: repo, log: log}
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	User        domain.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ValidationError("L'email est requis.")
	}
	if password == "" {
		return nil, ValidationError("Le mot de passe est requis.")
	}

	var res loginResponse
	body := map[string]string{"email": email, "password": password}
	if err := s.client.Post(ctx, "/auth/login", body, &res); err != nil {
		s.log.Warn("échec de la connexion", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	s.client.SetToken(res.AccessToken)
	return &res.User, nil
}

// Logout tells the server best-effort, then drops the token either way.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.log.Debug("échec de la déconnexion côté serveur", zap.Error(err))
	}
	s.client.ClearToken()
}

// Probe validates the held token against /auth/me.
func (s *AuthService) Probe(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.client.Get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) GetAllUsers(ctx context.Context) []domain.User {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des utilisateurs", zap.Error(err))
		return []domain.User{}
	}
	return users
}

func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ValidationError("L'email est requis.")
	}
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors de la recherche de l'utilisateur", zap.String("email", email), zap.Error(err))
		return nil, nil
	}
	for _, user := range users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (s *AuthService) CreateUser(ctx context.Context, user domain.User) error {
	if strings.TrimSpace(user.Name) == "" {
		return ValidationError("Le nom est requis.")
	}
	if strings.TrimSpace(user.Email) == "" {
		return ValidationError("L'email est requis.")
	}
	if user.Role == "" {
		return ValidationError("Le rôle est requis.")
	}
	if err := s.repo.Save(ctx, user); err != nil {
		s.log.Error("erreur lors de la création de l'utilisateur", zap.Error(err))
		return err
	}
	return nil
}

func (s *AuthService) UpdateUser(ctx context.Context, id string, user domain.User) error {
	if strings.TrimSpace(id) == "" {
		return ValidationError("L'identifiant est requis.")
	}
	if strings.TrimSpace(user.Name) == "" {
		return ValidationError("Le nom est requis.")
	}
	if strings.TrimSpace(user.Email) == "" {
		return ValidationError("L'email est requis.")
	}
	if err := s.repo.Update(ctx, id, user); err != nil {
		s.log.Error("erreur lors de la mise à jour de l'utilisateur", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteUser refuses to remove the last remaining admin; the back-office
// must always keep one account able to administer it. Returns false when
// the guard blocked the deletion.
func (s *AuthService) DeleteUser(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, ValidationError("L'identifiant est requis.")
	}
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		s.log.Error("erreur lors du chargement des utilisateurs", zap.Error(err))
		return false, err
	}
	var target *domain.User
	admins := 0
	for i, user := range users {
		if user.Role == domain.RoleAdmin {
			admins++
		}
		if user.ID == id {
			target = &users[i]
		}
	}
	if target != nil && target.Role == domain.RoleAdmin && admins <= 1 {
		return false, nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("erreur lors de la suppression de l'utilisateur", zap.String("id", id), zap.Error(err))
		return false, err
	}
	return true, nil
}

type ProfileUpdate struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*domain.User, error) {
	if strings.TrimSpace(update.Name) == "" {
		return nil, ValidationError("Le nom est requis.")
	}
	if strings.TrimSpace(update.Email) == "" {
		return nil, ValidationError("L'email est requis.")
	}
	var user domain.User
	if err := s.client.Put(ctx, "/auth/profile", update, &user); err != nil {
		s.log.Error("erreur lors de la mise à jour du profil", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) UploadAvatar(ctx context.Context, fileName string, file io.Reader) (*domain.User, error) {
	var user domain.User
	if err := s.client.PostForm(ctx, "/auth/avatar", nil, "avatar", fileName, file, &user); err != nil {
		s.log.Error("erreur lors de l'envoi de l'avatar", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// ChangePassword sends the current password only when the caller has one;
// a forced first-login change has none.
func (s *AuthService) ChangePassword(ctx context.Context, currentPassword, password, passwordConfirmation string) error {
	if password == "" {
		return ValidationError("Le mot de passe est requis.")
	}
	if password != passwordConfirmation {
		return ValidationError("Les mots de passe ne correspondent pas.")
	}
	body := map[string]string{
		"password":              password,
		"password_confirmation": passwordConfirmation,
	}
	if currentPassword != "" {
		body["current_password"] = currentPassword
	}
	if err := s.client.Put(ctx, "/auth/password", body, nil); err != nil {
		s.log.Error("erreur lors du changement de mot de passe", zap.Error(err))
		return err
	}
	return nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ValidationError("L'email est requis.")
	}
	return s.client.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password, passwordConfirmation string) error {
	if strings.TrimSpace(token) == "" {
		return ValidationError("Le jeton de réinitialisation est requis.")
	}
	if password == "" {
		return ValidationError("Le mot de passe est requis.")
	}
	if password != passwordConfirmation {
		return ValidationError("Les mots de passe ne correspondent pas.")
	}
	body := map[string]string{
		"token":                 token,
		"password":              password,
		"password_confirmation": passwordConfirmation,
	}
	return s.client.Post(ctx, "/auth/reset-password", body, nil)
}
