package models

type MenuItem struct {
	ID          int32    `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *int32   `json:"categoryId,omitempty"`
	Produceable int32    `json:"produceable"`
}

type Category struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type BestSeller struct {
	ProductID int32   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	TotalSold int32   `json:"totalSold"`
}
