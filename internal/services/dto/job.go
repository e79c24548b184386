package dto

type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=200"`
	Description string   `json:"description" validate:"required,min=10"`
	Amount      float64  `json:"amount" validate:"required,gte=0"`
	Currency    string   `json:"currency" validate:"required,len=3"`
	Address     string   `json:"address" validate:"required"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Category    string   `json:"category" validate:"required,max=100"`
	Skills      []string `json:"skills" validate:"omitempty,dive,min=1"`
	IsRemote    bool     `json:"is_remote"`
}

type UpdateJobRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	Amount      *float64 `json:"amount" validate:"omitempty,gte=0"`
	Address     *string  `json:"address"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Skills      []string `json:"skills" validate:"omitempty,dive,min=1"`
	IsRemote    *bool    `json:"is_remote"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open assigned in-progress completed"`
}
