package dto

// DepositRequest records a capital contribution. DepositedAt defaults to now
// when omitted.
type DepositRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	DepositedAt string  `json:"deposited_at" validate:"omitempty,datetime=2006-01-02"`
}
