package services

import (
	"strings"

	"github.com/Xae97/TaskFundi/internal/models"
	"github.com/Xae97/TaskFundi/internal/services/dto"
	"github.com/Xae97/TaskFundi/internal/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SearchService answers discovery queries for both sides of the
// marketplace: clients looking for fundis, fundis looking for jobs.
type SearchService interface {
	SearchJobs(req *dto.SearchJobsRequest) *dto.PaginatedResponse
	SearchFundis(req *dto.SearchFundisRequest) *dto.PaginatedResponse
}

type searchService struct {
	jobStore  store.JobStore
	userStore store.UserStore
}

func NewSearchService(jobStore store.JobStore, userStore store.UserStore) SearchService {
	return &searchService{
		jobStore:  jobStore,
		userStore: userStore,
	}
}

// SearchJobs applies the free-text query first (OR across fields,
// case-insensitive), then AND-combines the structured criteria, then
// paginates. An empty query with no criteria returns every posting.
func (s *searchService) SearchJobs(req *dto.SearchJobsRequest) *dto.PaginatedResponse {
	jobs := s.jobStore.Search(req.Query)

	criteria := store.JobFilter{
		Category:  req.Category,
		MinBudget: req.MinBudget,
		MaxBudget: req.MaxBudget,
		Skills:    req.Skills,
	}
	if hasJobCriteria(&criteria) {
		jobs = intersectJobs(jobs, s.jobStore.Filter(criteria))
	}

	page, pageSize := normalizePagination(req.Page, req.PageSize)
	total := int64(len(jobs))
	paged := pageOfJobs(jobs, page, pageSize)

	return dto.NewPaginatedResponse(paged, total, page, pageSize)
}

// SearchFundis matches the query as a case-insensitive substring of a
// fundi's name, skills, or location address, mirroring job search
// semantics. Empty query lists every fundi.
func (s *searchService) SearchFundis(req *dto.SearchFundisRequest) *dto.PaginatedResponse {
	term := strings.ToLower(req.Query)

	var matched []models.User
	for _, fundi := range s.userStore.FindByRole(models.UserRoleFundi) {
		if term == "" ||
			strings.Contains(strings.ToLower(fundi.Name), term) ||
			strings.Contains(strings.ToLower(fundi.Skills), term) ||
			strings.Contains(strings.ToLower(fundi.Location.Address), term) {
			matched = append(matched, fundi)
		}
	}

	page, pageSize := normalizePagination(req.Page, req.PageSize)
	total := int64(len(matched))

	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	paged := matched[start:end]
	if paged == nil {
		paged = []models.User{}
	}

	return dto.NewPaginatedResponse(paged, total, page, pageSize)
}

func hasJobCriteria(criteria *store.JobFilter) bool {
	return criteria.Category != "" ||
		criteria.MinBudget != nil ||
		criteria.MaxBudget != nil ||
		len(criteria.Skills) > 0
}

// intersectJobs keeps the postings of a that also appear in b, preserving
// a's order.
func intersectJobs(a, b []models.JobPosting) []models.JobPosting {
	inB := make(map[string]struct{}, len(b))
	for _, job := range b {
		inB[job.ID] = struct{}{}
	}
	var out []models.JobPosting
	for _, job := range a {
		if _, ok := inB[job.ID]; ok {
			out = append(out, job)
		}
	}
	return out
}

func pageOfJobs(jobs []models.JobPosting, page, pageSize int) []models.JobPosting {
	start := (page - 1) * pageSize
	if start > len(jobs) {
		start = len(jobs)
	}
	end := start + pageSize
	if end > len(jobs) {
		end = len(jobs)
	}
	out := jobs[start:end]
	if out == nil {
		out = []models.JobPosting{}
	}
	return out
}

func normalizePagination(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
