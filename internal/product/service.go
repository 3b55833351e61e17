package product

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

// Search applies the pure Filter over the full catalog. Recomputed on every
// call; no index is kept at this scale.
func (s *Service) Search(query, category string) []Product {
	return Filter(s.repo.List(), query, category)
}

func (s *Service) Create(p Product) (Product, error) {
	return s.repo.Create(p)
}
