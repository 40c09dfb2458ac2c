package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/model"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/repository"
	pkgerrors "github.com/FelipeSantos92Dev/senai-2025-2/pkg/errors"
)

// 未填写时长的课次在日历中按 50 分钟计
const defaultSessionMinutes = 50

// ExportService 导出业务接口
//
// 设计说明：
//   - 班级教学计划导出为 Excel (.xlsx)：明细表 + 各单元进度汇总表
//   - 课程单元课次导出为 iCalendar (.ics)，已取消的课次不导出
//   - 导出内容以内存缓冲返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportCohortPlan 导出班级教学计划，返回 (内容, 建议文件名, error)
	ExportCohortPlan(ctx context.Context, cohortID string) (*bytes.Buffer, string, error)
	// UnitCalendar 导出课程单元日历，返回 (内容, 建议文件名, error)
	UnitCalendar(ctx context.Context, unitID string) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// ExportCohortPlan 导出班级教学计划为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Plano de Aulas"：标题行 + 表头 + 每个课次一行（单元按 ordem，课次按 ordem/date）
//     没有课次的单元单独占一行
//   - Sheet "Progresso"：每个单元的课次总数、已完成数与完成率

func (s *exportService) ExportCohortPlan(ctx context.Context, cohortID string) (*bytes.Buffer, string, error) {
	if !isRecordID(cohortID) {
		return nil, "", ErrCohortNotFound
	}

	cohort, err := s.repo.Cohort.GetDetail(ctx, cohortID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrCohortNotFound
		}
		s.logger.Error("查询班级失败", zap.String("id", cohortID), zap.Error(err))
		return nil, "", pkgerrors.Internal("buscar turma", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const planSheet = "Plano de Aulas"
	idx, err := f.NewSheet(planSheet)
	if err != nil {
		return nil, "", s.generateFailed(err)
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Unidade Curricular", "Código", "Ordem UC", "Data", "Título", "Assunto", "Status", "Duração (min)"}
	widths := []float64{32, 12, 10, 14, 36, 40, 14, 14}
	for i, w := range widths {
		col := colName(i)
		_ = f.SetColWidth(planSheet, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})

	// 标题行
	_ = f.SetCellValue(planSheet, "A1", fmt.Sprintf("%s (%s / %d)", cohort.Name, cohort.Term, cohort.Year))
	_ = f.MergeCell(planSheet, "A1", cell(colName(len(headers)-1), 1))
	_ = f.SetCellStyle(planSheet, "A1", "A1", titleStyle)

	// 表头
	row := 2
	for i, h := range headers {
		_ = f.SetCellValue(planSheet, cell(colName(i), row), h)
	}
	_ = f.SetCellStyle(planSheet, cell("A", row), cell(colName(len(headers)-1), row), headerStyle)

	// 数据行
	row = 3
	for i := range cohort.Units {
		u := &cohort.Units[i]
		if len(u.Sessions) == 0 {
			s.writeUnitCells(f, planSheet, row, u)
			row++
			continue
		}
		for j := range u.Sessions {
			sess := &u.Sessions[j]
			s.writeUnitCells(f, planSheet, row, u)
			_ = f.SetCellValue(planSheet, cell("D", row), sess.Date.UTC().Format("2006-01-02"))
			_ = f.SetCellValue(planSheet, cell("E", row), sess.Title)
			_ = f.SetCellValue(planSheet, cell("F", row), sess.Subject)
			_ = f.SetCellValue(planSheet, cell("G", row), sess.Status.Label())
			if sess.DurationMinutes != nil {
				_ = f.SetCellValue(planSheet, cell("H", row), *sess.DurationMinutes)
			}
			row++
		}
	}

	if err := s.writeProgressSheet(f, cohort, headerStyle); err != nil {
		return nil, "", s.generateFailed(err)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", s.generateFailed(err)
	}

	filename := fmt.Sprintf("plano-%s.xlsx", fileStem(cohort.Name, cohort.CohortID))
	return buf, filename, nil
}

func (s *exportService) writeUnitCells(f *excelize.File, sheet string, row int, u *model.CurricularUnit) {
	_ = f.SetCellValue(sheet, cell("A", row), u.Name)
	if u.Code != nil {
		_ = f.SetCellValue(sheet, cell("B", row), *u.Code)
	}
	_ = f.SetCellValue(sheet, cell("C", row), u.Ordem)
}

func (s *exportService) writeProgressSheet(f *excelize.File, cohort *model.Cohort, headerStyle int) error {
	const sheet = "Progresso"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Unidade Curricular", "Total", "Concluídas", "Em Andamento", "Progresso (%)"}
	for i, h := range headers {
		_ = f.SetCellValue(sheet, cell(colName(i), 1), h)
	}
	_ = f.SetCellStyle(sheet, "A1", cell(colName(len(headers)-1), 1), headerStyle)
	_ = f.SetColWidth(sheet, "A", "A", 32)

	for i := range cohort.Units {
		u := &cohort.Units[i]
		counts := make(map[model.SessionStatus]int64)
		for j := range u.Sessions {
			counts[u.Sessions[j].Status]++
		}
		p := buildProgress(u.UnitID, counts)

		row := i + 2
		_ = f.SetCellValue(sheet, cell("A", row), u.Name)
		_ = f.SetCellValue(sheet, cell("B", row), p.Total)
		_ = f.SetCellValue(sheet, cell("C", row), p.Completed)
		_ = f.SetCellValue(sheet, cell("D", row), p.InProgress)
		_ = f.SetCellValue(sheet, cell("E", row), p.Percent)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// UnitCalendar 导出课程单元课次为 iCalendar
// ═══════════════════════════════════════════════════════════
//
// 每个未取消的课次对应一个 VEVENT：
//   - DTSTART = 课次日期；DTEND = DTSTART + 时长（未填写按 50 分钟）
//   - SUMMARY = 标题；DESCRIPTION = 主题

func (s *exportService) UnitCalendar(ctx context.Context, unitID string) ([]byte, string, error) {
	if !isRecordID(unitID) {
		return nil, "", ErrUnitNotFound
	}

	unit, err := s.repo.Unit.GetDetail(ctx, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUnitNotFound
		}
		s.logger.Error("查询课程单元失败", zap.String("id", unitID), zap.Error(err))
		return nil, "", pkgerrors.Internal("buscar unidade curricular", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//plano-aulas//calendario//PT")
	cal.SetXWRCalName(unit.Name)

	stamp := s.now().UTC()
	for i := range unit.Sessions {
		sess := &unit.Sessions[i]
		if sess.Status == model.StatusCancelled {
			continue
		}

		minutes := defaultSessionMinutes
		if sess.DurationMinutes != nil && *sess.DurationMinutes > 0 {
			minutes = *sess.DurationMinutes
		}
		start := sess.Date.UTC()

		event := cal.AddEvent(sess.SessionID + "@plano-aulas")
		event.SetDtStampTime(stamp)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Duration(minutes) * time.Minute))
		event.SetSummary(sess.Title)
		event.SetDescription(sess.Subject)
		if sess.Status == model.StatusPostponed {
			event.SetStatus(ics.ObjectStatusTentative)
		} else {
			event.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	filename := fmt.Sprintf("%s.ics", fileStem(unit.Name, unit.UnitID))
	return []byte(cal.Serialize()), filename, nil
}

// ── 辅助函数 ──

func (s *exportService) generateFailed(err error) error {
	s.logger.Error("生成导出文件失败", zap.Error(err))
	return pkgerrors.Internal("gerar arquivo", err)
}

// fileStem 由名称生成文件名主体，名称无法生成 slug 时退回到 ID
func fileStem(name, fallback string) string {
	if slug := GenerateSlug(name); slug != "" {
		return slug
	}
	return fallback
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
