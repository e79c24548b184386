package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Xae97/TaskFundi/internal/models"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job posting not found")

// JobFilter carries independently optional filter criteria. Provided
// criteria are AND-combined; absent criteria impose no constraint.
// Budget bounds are pointers so a zero bound still constrains.
type JobFilter struct {
	// Category is matched exactly, case-sensitive. Free-text Search is
	// case-insensitive; the distinction is deliberate (exact label match
	// vs fuzzy text search).
	Category  string
	MinBudget *float64
	MaxBudget *float64
	// Skills matches a posting when ANY of its required skills equals any
	// entry here (OR semantics, exact element equality).
	Skills []string
}

// JobStore holds the authoritative set of job postings.
type JobStore interface {
	GetAll() []models.JobPosting
	GetByID(id string) (*models.JobPosting, error)
	Search(query string) []models.JobPosting
	Filter(criteria JobFilter) []models.JobPosting
	Create(job *models.JobPosting) error
	Update(job *models.JobPosting) error
	Delete(id string) error
}

type jobStoreImpl struct {
	mu   sync.RWMutex
	jobs []models.JobPosting
}

// NewJobStore builds a store over the given seed postings, preserving their
// order. The seed slice is copied; callers keep no handle into the store.
func NewJobStore(seed []models.JobPosting) JobStore {
	s := &jobStoreImpl{
		jobs: make([]models.JobPosting, 0, len(seed)),
	}
	for _, job := range seed {
		s.jobs = append(s.jobs, cloneJob(job))
	}
	return s
}

// GetAll returns every posting in insertion order.
func (s *jobStoreImpl) GetAll() []models.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.JobPosting, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, cloneJob(job))
	}
	return out
}

func (s *jobStoreImpl) GetByID(id string) (*models.JobPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id {
			c := cloneJob(job)
			return &c, nil
		}
	}
	return nil, ErrJobNotFound
}

// Search returns postings where the query is a case-insensitive substring of
// the title, description, category, location address, or ANY required skill
// (OR across fields). An empty query matches every posting.
func (s *jobStoreImpl) Search(query string) []models.JobPosting {
	term := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.JobPosting
	for _, job := range s.jobs {
		if jobMatchesTerm(&job, term) {
			out = append(out, cloneJob(job))
		}
	}
	return out
}

func jobMatchesTerm(job *models.JobPosting, term string) bool {
	if strings.Contains(strings.ToLower(job.Title), term) ||
		strings.Contains(strings.ToLower(job.Description), term) ||
		strings.Contains(strings.ToLower(job.Category), term) ||
		strings.Contains(strings.ToLower(job.Location.Address), term) {
		return true
	}
	for _, skill := range job.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

// Filter never errors; unmatched criteria simply narrow the result to empty.
func (s *jobStoreImpl) Filter(criteria JobFilter) []models.JobPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.JobPosting
	for _, job := range s.jobs {
		if jobMatchesFilter(&job, &criteria) {
			out = append(out, cloneJob(job))
		}
	}
	return out
}

func jobMatchesFilter(job *models.JobPosting, criteria *JobFilter) bool {
	if criteria.Category != "" && job.Category != criteria.Category {
		return false
	}
	if criteria.MinBudget != nil && job.Budget.Amount < *criteria.MinBudget {
		return false
	}
	if criteria.MaxBudget != nil && job.Budget.Amount > *criteria.MaxBudget {
		return false
	}
	if len(criteria.Skills) > 0 {
		found := false
		for _, want := range criteria.Skills {
			for _, have := range job.RequiredSkills {
				if have == want {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Create assigns an ID and creation time when absent and appends the posting.
func (s *jobStoreImpl) Create(job *models.JobPosting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}
	s.jobs = append(s.jobs, cloneJob(*job))
	return nil
}

func (s *jobStoreImpl) Update(job *models.JobPosting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == job.ID {
			s.jobs[i] = cloneJob(*job)
			return nil
		}
	}
	return ErrJobNotFound
}

func (s *jobStoreImpl) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return nil
		}
	}
	return ErrJobNotFound
}

func cloneJob(job models.JobPosting) models.JobPosting {
	c := job
	c.RequiredSkills = append([]string(nil), job.RequiredSkills...)
	return c
}
