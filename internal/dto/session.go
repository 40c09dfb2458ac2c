package dto

// ── 课次（Session）模块 DTO ──

// CreateSessionRequest 创建课次请求
// date 接受 RFC 3339 或 YYYY-MM-DD；所属单元可用 unitId 或 unidadeCurricularId 指定
type CreateSessionRequest struct {
	Title               string      `json:"title"`
	Subject             string      `json:"subject"`
	Summary             *string     `json:"summary"`
	Date                string      `json:"date"`
	Status              string      `json:"status"`
	DurationMinutes     interface{} `json:"durationMinutes"`
	Objectives          *string     `json:"objectives"`
	SupportMaterial     *string     `json:"supportMaterial"`
	Notes               *string     `json:"notes"`
	Ordem               interface{} `json:"ordem"`
	Slug                *string     `json:"slug"`
	UnitID              string      `json:"unitId"`
	UnidadeCurricularID string      `json:"unidadeCurricularId"`
}

// ParentID 返回所属课程单元 ID，unitId 优先
func (r *CreateSessionRequest) ParentID() string {
	if r.UnitID != "" {
		return r.UnitID
	}
	return r.UnidadeCurricularID
}

// UpdateSessionRequest 更新课次请求（部分更新），不包含所属单元字段
type UpdateSessionRequest struct {
	Title           StringField `json:"title"`
	Subject         StringField `json:"subject"`
	Summary         StringField `json:"summary"`
	Date            StringField `json:"date"`
	Status          StringField `json:"status"`
	DurationMinutes RawField    `json:"durationMinutes"`
	Objectives      StringField `json:"objectives"`
	SupportMaterial StringField `json:"supportMaterial"`
	Notes           StringField `json:"notes"`
	Ordem           RawField    `json:"ordem"`
	Slug            StringField `json:"slug"`
}

// SessionListRequest 课次列表查询参数，多个条件取交集
type SessionListRequest struct {
	UnitID              string `form:"unitId"`
	UnidadeCurricularID string `form:"unidadeCurricularId"`
	Status              string `form:"status"`
}

// UnitFilter 返回单元过滤条件，unitId 优先
func (r *SessionListRequest) UnitFilter() string {
	if r.UnitID != "" {
		return r.UnitID
	}
	return r.UnidadeCurricularID
}

// SessionSummary 课次摘要（班级详情内嵌）
type SessionSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
}

// SessionResponse 课次完整信息
type SessionResponse struct {
	ID              string  `json:"id"`
	UnitID          string  `json:"unitId"`
	Title           string  `json:"title"`
	Subject         string  `json:"subject"`
	Summary         *string `json:"summary"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	DurationMinutes *int    `json:"durationMinutes"`
	Objectives      *string `json:"objectives"`
	SupportMaterial *string `json:"supportMaterial"`
	Notes           *string `json:"notes"`
	Ordem           int     `json:"ordem"`
	Slug            *string `json:"slug"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// SessionWithUnitResponse 课次 + 所属单元引用（创建、更新返回）
type SessionWithUnitResponse struct {
	SessionResponse
	Unit UnitRef `json:"unit"`
}

// UnitRefWithCohort 单元引用 + 班级摘要
type UnitRefWithCohort struct {
	UnitRef
	Cohort CohortSummary `json:"cohort"`
}

// SessionListItemResponse 课次列表项
type SessionListItemResponse struct {
	SessionResponse
	Unit UnitRefWithCohort `json:"unit"`
}

// SessionDetailResponse 课次详情：完整所属单元 + 班级摘要
type SessionDetailResponse struct {
	SessionResponse
	Unit UnitWithCohortResponse `json:"unit"`
}
