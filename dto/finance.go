package dto

type CreateReceiptInput struct {
	ProjectID   uint   `json:"projectId" form:"projectId" binding:"required"`
	Date        string `json:"date" form:"date" binding:"required"`
	Amount      int64  `json:"amountVnd" form:"amountVnd" binding:"required"`
	Description string `json:"description" form:"description"`
}

type UpdateReceiptInput struct {
	ID          uint    `json:"id" binding:"required"`
	Date        *string `json:"date"`
	Amount      *int64  `json:"amountVnd"`
	Description *string `json:"description"`
}

type CreateExpenseInput struct {
	ProjectID   uint   `json:"projectId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Amount      int64  `json:"amountVnd" binding:"required"`
	Description string `json:"description"`
}

type UpdateExpenseInput struct {
	ID          uint    `json:"id" binding:"required"`
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	Amount      *int64  `json:"amountVnd"`
	Description *string `json:"description"`
}

type CreateMaterialInput struct {
	ProjectID    uint   `json:"projectId" binding:"required"`
	Date         string `json:"date" binding:"required"`
	ItemName     string `json:"itemName" binding:"required"`
	QuantityText string `json:"quantityText"`
	Unit         string `json:"unit"`
	UnitPrice    int64  `json:"unitPriceVnd"`
	Total        int64  `json:"totalVnd" binding:"required"`
	Supplier     string `json:"supplier"`
}

type UpdateMaterialInput struct {
	ID           uint    `json:"id" binding:"required"`
	Date         *string `json:"date"`
	ItemName     *string `json:"itemName"`
	QuantityText *string `json:"quantityText"`
	Unit         *string `json:"unit"`
	UnitPrice    *int64  `json:"unitPriceVnd"`
	Total        *int64  `json:"totalVnd"`
	Supplier     *string `json:"supplier"`
}

type CreateExternalHireInput struct {
	ProjectID uint   `json:"projectId" binding:"required"`
	Title     string `json:"title" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate"`
	Amount    int64  `json:"amountVnd" binding:"required"`
}

type UpdateExternalHireInput struct {
	ID        uint    `json:"id" binding:"required"`
	Title     *string `json:"title"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Amount    *int64  `json:"amountVnd"`
}
