package dto

// DeleteResponse 删除结果，附带级联删除的子记录数量
type DeleteResponse struct {
	ID              string `json:"id"`
	Deleted         bool   `json:"deleted"`
	RemovedUnits    int64  `json:"removedUnits"`
	RemovedSessions int64  `json:"removedSessions"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
