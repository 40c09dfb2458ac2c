package dto

// ── 班级（Cohort）模块 DTO ──

// CreateCohortRequest 创建班级请求
// year 接受数字或数字字符串，由服务层转换
type CreateCohortRequest struct {
	Name        string      `json:"name"`
	Term        string      `json:"term"`
	Year        interface{} `json:"year"`
	Description *string     `json:"description"`
	Color       *string     `json:"color"`
}

// UpdateCohortRequest 更新班级请求（部分更新）
type UpdateCohortRequest struct {
	Name        StringField `json:"name"`
	Term        StringField `json:"term"`
	Year        RawField    `json:"year"`
	Description StringField `json:"description"`
	Color       StringField `json:"color"`
}

// CohortSummary 班级摘要，随子记录一起返回
type CohortSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Term string `json:"term"`
	Year int    `json:"year"`
}

// CohortResponse 班级基本信息
type CohortResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Term        string  `json:"term"`
	Year        int     `json:"year"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CohortListItem 班级列表项：附带课程单元及各单元课次数
type CohortListItem struct {
	CohortResponse
	Units []UnitWithCountResponse `json:"units"`
}

// CohortDetailResponse 班级详情：课程单元按 ordem 排序，每个单元附课次摘要
type CohortDetailResponse struct {
	CohortResponse
	Units []UnitWithSessionSummaries `json:"units"`
}
