package dto

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   *bool    `json:"completed"`
	Tags        []string `json:"tags"`
	DueDate     *string  `json:"dueDate"`
}

// UpdateTaskRequest carries a partial patch: nil fields are left untouched.
// An empty DueDate string clears the deadline.
type UpdateTaskRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Completed   *bool     `json:"completed"`
	Tags        *[]string `json:"tags"`
	DueDate     *string   `json:"dueDate"`
}

func (r UpdateTaskRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Completed == nil && r.Tags == nil && r.DueDate == nil
}

type TaskFilterRequest struct {
	Completed *bool   `json:"completed"`
	DateFrom  *string `json:"dateFrom"`
	DateTo    *string `json:"dateTo"`
}

// Merge fills fields missing from r with the ones in fallback.
func (r TaskFilterRequest) Merge(fallback TaskFilterRequest) TaskFilterRequest {
	if r.Completed == nil {
		r.Completed = fallback.Completed
	}
	if r.DateFrom == nil {
		r.DateFrom = fallback.DateFrom
	}
	if r.DateTo == nil {
		r.DateTo = fallback.DateTo
	}
	return r
}
