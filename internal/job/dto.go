package job

import "github.com/google/uuid"

type CreateJobRequest struct {
	JobTitle string  `json:"job_title"`
	Salary   float64 `json:"salary"`
}

type UpdateJobRequest struct {
	JobTitle *string  `json:"job_title"`
	Salary   *float64 `json:"salary"`
}

type JobResponse struct {
	ID        uuid.UUID `json:"id"`
	JobTitle  string    `json:"job_title"`
	Salary    float64   `json:"salary"`
	PayrollID uuid.UUID `json:"payroll_id"`
}

func (r CreateJobRequest) ToParams() CreateParams {
	return CreateParams{
		JobTitle: r.JobTitle,
		Salary:   r.Salary,
	}
}

func (r UpdateJobRequest) ToParams() UpdateParams {
	return UpdateParams{
		JobTitle: r.JobTitle,
		Salary:   r.Salary,
	}
}

func ToResponse(j *Job) JobResponse {
	return JobResponse{
		ID:        j.ID,
		JobTitle:  j.JobTitle,
		Salary:    j.Salary,
		PayrollID: j.PayrollID,
	}
}

func ToResponses(jobs []*Job) []JobResponse {
	responses := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, ToResponse(j))
	}
	return responses
}
