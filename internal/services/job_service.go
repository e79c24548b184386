package services

import (
	"github.com/Xae97/TaskFundi/internal/logger"
	"github.com/Xae97/TaskFundi/internal/models"
	"github.com/Xae97/TaskFundi/internal/services/dto"
	"github.com/Xae97/TaskFundi/internal/store"
	"github.com/Xae97/TaskFundi/pkg/apperrors"
)

type JobService interface {
	GetAll() []models.JobPosting
	GetByID(id string) (*models.JobPosting, error)
	GetByClient(clientID string) []models.JobPosting
	Create(clientID string, req *dto.CreateJobRequest) (*models.JobPosting, error)
	Update(userID, jobID string, req *dto.UpdateJobRequest) (*models.JobPosting, error)
	UpdateStatus(userID, jobID string, status models.JobStatus) (*models.JobPosting, error)
	Delete(userID, jobID string) error
}

type jobService struct {
	jobStore  store.JobStore
	userStore store.UserStore
}

func NewJobService(jobStore store.JobStore, userStore store.UserStore) JobService {
	return &jobService{
		jobStore:  jobStore,
		userStore: userStore,
	}
}

func (s *jobService) GetAll() []models.JobPosting {
	return s.jobStore.GetAll()
}

func (s *jobService) GetByID(id string) (*models.JobPosting, error) {
	job, err := s.jobStore.GetByID(id)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return job, nil
}

func (s *jobService) GetByClient(clientID string) []models.JobPosting {
	var out []models.JobPosting
	for _, job := range s.jobStore.GetAll() {
		if job.ClientID == clientID {
			out = append(out, job)
		}
	}
	return out
}

func (s *jobService) Create(clientID string, req *dto.CreateJobRequest) (*models.JobPosting, error) {
	user, err := s.userStore.FindByID(clientID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if user.Role != models.UserRoleClient {
		return nil, apperrors.NewForbiddenError("Only clients can post jobs")
	}

	job := &models.JobPosting{
		Title:       req.Title,
		Description: req.Description,
		Budget:      models.Budget{Amount: req.Amount, Currency: req.Currency},
		Location: models.Location{
			Address:   req.Address,
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		},
		Category:       req.Category,
		RequiredSkills: req.Skills,
		ClientID:       clientID,
		Status:         models.JobStatusOpen,
		IsRemote:       req.IsRemote,
	}

	if err := s.jobStore.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("job posted", "job_id", job.ID, "client_id", clientID, "category", job.Category)
	return job, nil
}

func (s *jobService) Update(userID, jobID string, req *dto.UpdateJobRequest) (*models.JobPosting, error) {
	job, err := s.ownedJob(userID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Amount != nil {
		job.Budget.Amount = *req.Amount
	}
	if req.Address != nil {
		job.Location.Address = *req.Address
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Skills != nil {
		job.RequiredSkills = req.Skills
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}

	if err := s.jobStore.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// UpdateStatus sets the posting's status label. There is no transition
// guard: any known status can follow any other.
func (s *jobService) UpdateStatus(userID, jobID string, status models.JobStatus) (*models.JobPosting, error) {
	if !models.ValidJobStatus(status) {
		return nil, apperrors.ErrInvalidStatus("jobs", "Unknown job status: "+string(status))
	}

	job, err := s.ownedJob(userID, jobID)
	if err != nil {
		return nil, err
	}

	job.Status = status
	if err := s.jobStore.Update(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) Delete(userID, jobID string) error {
	if _, err := s.ownedJob(userID, jobID); err != nil {
		return err
	}
	if err := s.jobStore.Delete(jobID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("job deleted", "job_id", jobID, "client_id", userID)
	return nil
}

// ownedJob loads the posting and enforces that userID is its owner.
func (s *jobService) ownedJob(userID, jobID string) (*models.JobPosting, error) {
	job, err := s.jobStore.GetByID(jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	if job.ClientID != userID {
		return nil, apperrors.NewForbiddenError("You do not own this job posting")
	}
	return job, nil
}
