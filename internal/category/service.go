package category

// Service returns the storefront's category list. The wildcard "All" entry
// is prepended for the client's category filter control.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []string {
	names, err := s.repo.List()
	if err != nil {
		return []string{"All"}
	}
	return append([]string{"All"}, names...)
}
