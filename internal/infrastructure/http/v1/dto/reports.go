package dto

// OrderItemQuery carries the optional order-item report window.
type OrderItemQuery struct {
	Period string `form:"period"`
}

// DefectReportQuery carries the required defect report date range.
// Both bounds must be present before any store query is issued.
type DefectReportQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
