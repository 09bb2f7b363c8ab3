package dto

type CreateProjectInput struct {
	Name       string `json:"name" binding:"required"`
	ClientName string `json:"clientName"`
	Address    string `json:"address"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate"`
	Notes      string `json:"notes"`
}

type UpdateProjectInput struct {
	ID         uint    `json:"id" binding:"required"`
	Name       *string `json:"name"`
	ClientName *string `json:"clientName"`
	Address    *string `json:"address"`
	StartDate  *string `json:"startDate"`
	EndDate    *string `json:"endDate"`
	Notes      *string `json:"notes"`
}

type ChangeProjectStatusInput struct {
	ID          uint `json:"id" binding:"required"`
	IsCompleted bool `json:"isCompleted"`
}
