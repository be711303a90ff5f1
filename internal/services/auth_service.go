package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"aquashop/internal/config"
	"aquashop/internal/domain"
	"aquashop/internal/store"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService is the placeholder authentication scheme: one fixed admin
// credential pair plus a lenient customer heuristic. It is deliberately not
// a security boundary; swapping it for real auth should not touch anything
// else.
type AuthService struct {
	Sessions *store.SessionStore
	Carts    *store.CartStore

	admin     domain.User
	adminHash []byte
}

func NewAuthService(sessions *store.SessionStore, carts *store.CartStore, admin config.Admin) *AuthService {
	hash, _ := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	return &AuthService{
		Sessions: sessions,
		Carts:    carts,
		admin: domain.User{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
			Role:  domain.RoleAdmin,
		},
		adminHash: hash,
	}
}

// Login binds an identity to the session. Branches, in order:
//  1. exact admin credential match -> the administrator identity
//  2. email containing '@' with a password of at least 4 chars -> a fresh
//     customer identity named after the email's local part
//  3. anything else -> ErrBadCreds, no state change
//
// An admin email with the wrong password still falls through to branch 2,
// same as the original storefront.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	if email == s.admin.Email && bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil {
		u := s.admin
		s.Sessions.Bind(sid, u)
		return &u, nil
	}
	if at := strings.Index(email, "@"); at >= 0 && len(password) >= 4 {
		u := domain.User{
			ID:    "cust-" + uuid.NewString(),
			Name:  email[:at],
			Email: email,
			Role:  domain.RoleCustomer,
		}
		s.Sessions.Bind(sid, u)
		return &u, nil
	}
	return nil, ErrBadCreds
}

// Logout drops the identity and empties the session's cart. The cart wipe is
// a product decision, not a side effect of session expiry.
func (s *AuthService) Logout(sid string) {
	s.Sessions.Unbind(sid)
	s.Carts.Clear(sid)
}

// CurrentUser resolves the identity bound to sid, nil for anonymous viewers.
func (s *AuthService) CurrentUser(sid string) *domain.User {
	u, ok := s.Sessions.User(sid)
	if !ok {
		return nil
	}
	return u
}
