package user

import "golang.org/x/crypto/bcrypt"

// ServiceInterface lets other packages depend on the account operations
// without dragging in the concrete service (handlers, tests).
type ServiceInterface interface {
	GetByID(id int) (User, error)
	Register(user User) (User, error)
	Authenticate(email, password string) (User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// Register hashes the credential and creates the account. A taken email
// yields ErrEmailExists and persists nothing.
func (s *Service) Register(user User) (User, error) {
	if _, err := s.repo.GetByEmail(user.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user.Password = string(hashed)
	return s.repo.Create(user)
}

// Authenticate compares the supplied password against the stored hash.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
