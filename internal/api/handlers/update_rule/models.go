package update_rule

// UpdateRuleRequest HTTP request model
type UpdateRuleRequest struct {
	IsActive *bool `json:"isActive"`
}

// UpdateRuleResponse HTTP response model
type UpdateRuleResponse struct {
	ID       int64 `json:"id"`
	IsActive bool  `json:"isActive"`
}
