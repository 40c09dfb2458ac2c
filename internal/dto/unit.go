package dto

// ── 课程单元（Curricular Unit）模块 DTO ──

// CreateUnitRequest 创建课程单元请求
// 所属班级可用 cohortId 或 turmaId 指定
type CreateUnitRequest struct {
	Name          string      `json:"name"`
	Code          *string     `json:"code"`
	Description   *string     `json:"description"`
	WorkloadHours interface{} `json:"workloadHours"`
	Instructor    *string     `json:"instructor"`
	Color         *string     `json:"color"`
	Ordem         interface{} `json:"ordem"`
	CohortID      string      `json:"cohortId"`
	TurmaID       string      `json:"turmaId"`
}

// ParentID 返回所属班级 ID，cohortId 优先
func (r *CreateUnitRequest) ParentID() string {
	if r.CohortID != "" {
		return r.CohortID
	}
	return r.TurmaID
}

// UpdateUnitRequest 更新课程单元请求（部分更新）
// 不包含所属班级字段：单元不可更换班级，请求中的 cohortId 会被忽略
type UpdateUnitRequest struct {
	Name          StringField `json:"name"`
	Code          StringField `json:"code"`
	Description   StringField `json:"description"`
	WorkloadHours RawField    `json:"workloadHours"`
	Instructor    StringField `json:"instructor"`
	Color         StringField `json:"color"`
	Ordem         RawField    `json:"ordem"`
}

// UnitListRequest 课程单元列表查询参数
type UnitListRequest struct {
	CohortID string `form:"cohortId"`
	TurmaID  string `form:"turmaId"`
}

// Filter 返回班级过滤条件，cohortId 优先
func (r *UnitListRequest) Filter() string {
	if r.CohortID != "" {
		return r.CohortID
	}
	return r.TurmaID
}

// UnitRef 课程单元引用（id/name/code），随课次返回
type UnitRef struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Code *string `json:"code"`
}

// UnitResponse 课程单元基本信息
type UnitResponse struct {
	ID            string  `json:"id"`
	CohortID      string  `json:"cohortId"`
	Name          string  `json:"name"`
	Code          *string `json:"code"`
	Description   *string `json:"description"`
	WorkloadHours *int    `json:"workloadHours"`
	Instructor    *string `json:"instructor"`
	Color         *string `json:"color"`
	Ordem         int     `json:"ordem"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// UnitWithCohortResponse 课程单元 + 所属班级摘要（创建、更新返回）
type UnitWithCohortResponse struct {
	UnitResponse
	Cohort CohortSummary `json:"cohort"`
}

// UnitWithCountResponse 课程单元 + 课次数（班级列表内嵌）
type UnitWithCountResponse struct {
	UnitResponse
	SessionCount int64 `json:"sessionCount"`
}

// UnitListItemResponse 课程单元列表项
type UnitListItemResponse struct {
	UnitResponse
	Cohort       CohortSummary `json:"cohort"`
	SessionCount int64         `json:"sessionCount"`
}

// UnitWithSessionSummaries 课程单元 + 课次摘要（班级详情内嵌）
type UnitWithSessionSummaries struct {
	UnitResponse
	Sessions []SessionSummary `json:"sessions"`
}

// UnitDetailResponse 课程单元详情：完整课次按 (ordem, date) 排序
type UnitDetailResponse struct {
	UnitResponse
	Cohort   CohortSummary     `json:"cohort"`
	Sessions []SessionResponse `json:"sessions"`
}

// UnitProgressResponse 课程单元进度
type UnitProgressResponse struct {
	UnitID     string           `json:"unitId"`
	Total      int64            `json:"total"`
	Completed  int64            `json:"completed"`
	InProgress int64            `json:"inProgress"`
	Percent    int              `json:"percent"`
	ByStatus   map[string]int64 `json:"byStatus"`
}
