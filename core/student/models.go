package student

// NewStudent is the registration input.
type NewStudent struct {
	Matricule   string  `json:"matricule" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	ClassName   string  `json:"className" validate:"required"`
	TotalAmount float64 `json:"totalAmount" validate:"gte=0,finite"`
}
