package store

import (
	"testing"

	"github.com/Xae97/TaskFundi/internal/models"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

func seedJobs() []models.JobPosting {
	return []models.JobPosting{
		{
			ID:             "j1",
			Title:          "Kitchen Plumbing Repair",
			Description:    "Fix a leaking sink and replace faulty faucet.",
			Budget:         models.Budget{Amount: 5000, Currency: "KES"},
			Location:       models.Location{Address: "Westlands, Nairobi"},
			Category:       "Plumbing",
			RequiredSkills: []string{"Plumbing", "Home Repair"},
			ClientID:       "c1",
			Status:         models.JobStatusOpen,
		},
		{
			ID:             "j2",
			Title:          "House Painting",
			Description:    "Interior paint for a 3-bedroom house.",
			Budget:         models.Budget{Amount: 35000, Currency: "KES"},
			Location:       models.Location{Address: "Kilimani, Nairobi"},
			Category:       "Painting",
			RequiredSkills: []string{"Painting", "Interior Design"},
			ClientID:       "c2",
			Status:         models.JobStatusOpen,
		},
		{
			ID:             "j3",
			Title:          "Website Development",
			Description:    "Responsive e-commerce website with payment integration.",
			Budget:         models.Budget{Amount: 75000, Currency: "KES"},
			Location:       models.Location{Address: "Remote"},
			Category:       "Programming",
			RequiredSkills: []string{"Web Development", "JavaScript"},
			ClientID:       "c2",
			Status:         models.JobStatusOpen,
			IsRemote:       true,
		},
		{
			ID:             "j4",
			Title:          "Free Community Cleanup",
			Description:    "Volunteer cleanup day, materials provided.",
			Budget:         models.Budget{Amount: 0, Currency: "KES"},
			Location:       models.Location{Address: "Karen, Nairobi"},
			Category:       "Cleaning",
			RequiredSkills: []string{"Cleaning"},
			ClientID:       "c1",
			Status:         models.JobStatusOpen,
		},
	}
}

func jobIDs(jobs []models.JobPosting) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestJobStoreGetAllPreservesOrder(t *testing.T) {
	s := NewJobStore(seedJobs())

	all := s.GetAll()
	assert.Equal(t, []string{"j1", "j2", "j3", "j4"}, jobIDs(all))
}

func TestJobStoreGetByID(t *testing.T) {
	s := NewJobStore(seedJobs())

	job, err := s.GetByID("j2")
	assert.NoError(t, err)
	assert.Equal(t, "House Painting", job.Title)

	_, err = s.GetByID("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobStoreSearchMatchesAcrossFields(t *testing.T) {
	s := NewJobStore(seedJobs())

	// Title, case-insensitive.
	assert.Equal(t, []string{"j1"}, jobIDs(s.Search("PLUMBING repair")))

	// Description.
	assert.Equal(t, []string{"j3"}, jobIDs(s.Search("payment integration")))

	// Category.
	assert.Equal(t, []string{"j2"}, jobIDs(s.Search("painting")))

	// Location address.
	assert.Equal(t, []string{"j1"}, jobIDs(s.Search("westlands")))

	// A required skill.
	assert.Equal(t, []string{"j3"}, jobIDs(s.Search("javascript")))
}

func TestJobStoreSearchEmptyQueryReturnsAll(t *testing.T) {
	s := NewJobStore(seedJobs())

	assert.Len(t, s.Search(""), 4)
}

func TestJobStoreSearchNoMatches(t *testing.T) {
	s := NewJobStore(seedJobs())

	assert.Empty(t, s.Search("underwater welding"))
}

func TestJobStoreFilterCategoryIsCaseSensitive(t *testing.T) {
	s := NewJobStore(seedJobs())

	assert.Equal(t, []string{"j1"}, jobIDs(s.Filter(JobFilter{Category: "Plumbing"})))
	assert.Empty(t, s.Filter(JobFilter{Category: "plumbing"}))
}

func TestJobStoreFilterBudgetBounds(t *testing.T) {
	s := NewJobStore(seedJobs())

	assert.Equal(t, []string{"j2", "j3"}, jobIDs(s.Filter(JobFilter{MinBudget: f64(10000)})))
	assert.Equal(t, []string{"j1", "j4"}, jobIDs(s.Filter(JobFilter{MaxBudget: f64(10000)})))
	assert.Equal(t, []string{"j2"}, jobIDs(s.Filter(JobFilter{MinBudget: f64(10000), MaxBudget: f64(40000)})))

	// Bounds are inclusive.
	assert.Equal(t, []string{"j2"}, jobIDs(s.Filter(JobFilter{MinBudget: f64(35000), MaxBudget: f64(35000)})))
}

func TestJobStoreFilterZeroMinBudgetStillConstrains(t *testing.T) {
	s := NewJobStore(seedJobs())

	// min_budget=0 admits the zero-budget posting but is an active bound.
	assert.Len(t, s.Filter(JobFilter{MinBudget: f64(0)}), 4)

	// A zero max excludes everything priced above zero.
	assert.Equal(t, []string{"j4"}, jobIDs(s.Filter(JobFilter{MaxBudget: f64(0)})))
}

func TestJobStoreFilterSkillsAnyOf(t *testing.T) {
	s := NewJobStore(seedJobs())

	// One matching skill is enough.
	assert.Equal(t, []string{"j1", "j2"}, jobIDs(s.Filter(JobFilter{Skills: []string{"Plumbing", "Painting"}})))

	// Skill comparison is exact, not substring.
	assert.Empty(t, s.Filter(JobFilter{Skills: []string{"Plumb"}}))
}

func TestJobStoreFilterCriteriaAreANDCombined(t *testing.T) {
	s := NewJobStore(seedJobs())

	got := s.Filter(JobFilter{
		Category:  "Painting",
		MinBudget: f64(10000),
		Skills:    []string{"Painting"},
	})
	assert.Equal(t, []string{"j2"}, jobIDs(got))

	// Same criteria with a budget that excludes the only category match.
	assert.Empty(t, s.Filter(JobFilter{Category: "Painting", MaxBudget: f64(10000)}))
}

func TestJobStoreFilterEmptyCriteriaReturnsAll(t *testing.T) {
	s := NewJobStore(seedJobs())

	assert.Len(t, s.Filter(JobFilter{}), 4)
}

func TestJobStoreCreateAssignsIDAndDefaults(t *testing.T) {
	s := NewJobStore(nil)

	job := &models.JobPosting{Title: "New Job", ClientID: "c1"}
	assert.NoError(t, s.Create(job))
	assert.NotEmpty(t, job.ID)
	assert.False(t, job.CreatedAt.IsZero())
	assert.Equal(t, models.JobStatusOpen, job.Status)

	stored, err := s.GetByID(job.ID)
	assert.NoError(t, err)
	assert.Equal(t, "New Job", stored.Title)
}

func TestJobStoreUpdateAndDelete(t *testing.T) {
	s := NewJobStore(seedJobs())

	job, err := s.GetByID("j1")
	assert.NoError(t, err)
	job.Status = models.JobStatusAssigned
	assert.NoError(t, s.Update(job))

	updated, err := s.GetByID("j1")
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusAssigned, updated.Status)

	assert.NoError(t, s.Delete("j1"))
	_, err = s.GetByID("j1")
	assert.ErrorIs(t, err, ErrJobNotFound)

	assert.ErrorIs(t, s.Delete("j1"), ErrJobNotFound)
	assert.ErrorIs(t, s.Update(&models.JobPosting{ID: "missing"}), ErrJobNotFound)
}

func TestJobStoreResultsAreCopies(t *testing.T) {
	s := NewJobStore(seedJobs())

	job, err := s.GetByID("j1")
	assert.NoError(t, err)
	job.Title = "mutated"
	job.RequiredSkills[0] = "mutated"

	fresh, err := s.GetByID("j1")
	assert.NoError(t, err)
	assert.Equal(t, "Kitchen Plumbing Repair", fresh.Title)
	assert.Equal(t, "Plumbing", fresh.RequiredSkills[0])
}
