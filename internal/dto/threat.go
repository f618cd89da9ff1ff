package dto

type UpdateThreatStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new investigating resolved"`
}

type ListThreatsQuery struct {
	Severity string `query:"severity"`
	Status   string `query:"status"`
}
