package address

import "errors"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}

func (s *Service) Create(userID int, label, line1, city, phone string) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrNotFound
	}
	if line1 == "" || city == "" {
		return Address{}, errors.New("line1 and city are required")
	}
	return s.repo.Create(Address{UserID: userID, Label: label, Line1: line1, City: city, Phone: phone})
}

func (s *Service) Delete(userID, addressID int) error {
	if userID <= 0 || addressID <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(userID, addressID)
}
