package handler

// Response-only types owned by the transport layer. Monetary fields are
// decimal strings with two fractional digits; dates are YYYY-MM-DD strings.

type clientBalanceResponse struct {
	ClientID            int64  `json:"clientId"`
	ClientFullName      string `json:"clientFullName"`
	TotalSessionsPrice  string `json:"totalSessionsPrice"`
	TotalPaidAmount     string `json:"totalPaidAmount"`
	Balance             string `json:"balance"`
	TotalSessionsCount  int    `json:"totalSessionsCount"`
	PaidSessionsCount   int    `json:"paidSessionsCount"`
	UnpaidSessionsCount int    `json:"unpaidSessionsCount"`
}

type incomeBySessionsResponse struct {
	PeriodFrom         string `json:"periodFrom"`
	PeriodTo           string `json:"periodTo"`
	TotalSessionsCount int    `json:"totalSessionsCount"`
	TotalIncome        string `json:"totalIncome"`
	PaidIncome         string `json:"paidIncome"`
	UnpaidIncome       string `json:"unpaidIncome"`
}

type incomeByPaymentsResponse struct {
	PeriodFrom         string `json:"periodFrom"`
	PeriodTo           string `json:"periodTo"`
	TotalPaymentsCount int    `json:"totalPaymentsCount"`
	TotalIncome        string `json:"totalIncome"`
}
