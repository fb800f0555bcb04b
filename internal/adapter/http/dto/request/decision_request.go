package request

// DecisionRequest records the back-office verdict on a reconciliation line.
// `actual_total` and `reason` are required when the decision is "adjust".
type DecisionRequest struct {
	Decision    string   `json:"decision" binding:"required"`
	ActualTotal *float64 `json:"actual_total"`
	Reason      string   `json:"reason"`
}
