package salaryconfig

type ListSalaryConfigsRequest struct {
	PayType string `form:"pay_type" binding:"required,oneof=monthly hourly"`
}

type SalaryConfigResponse struct {
	ID          string  `json:"id"`
	PayType     string  `json:"pay_type"`
	ConfigKey   string  `json:"config_key"`
	ConfigValue string  `json:"config_value"`
	NumberValue float64 `json:"number_value"`
	Description *string `json:"description,omitempty"`
}

func mapToListResponse(rows []SalaryConfig) []SalaryConfigResponse {
	res := make([]SalaryConfigResponse, len(rows))
	for i, row := range rows {
		res[i] = SalaryConfigResponse{
			ID:          row.ID.String(),
			PayType:     row.PayType,
			ConfigKey:   row.ConfigKey,
			ConfigValue: row.ConfigValue,
			NumberValue: GetConfigValue(rows[i:i+1], row.ConfigKey),
			Description: row.Description,
		}
	}
	return res
}
