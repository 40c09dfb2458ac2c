// Package seed 清空并重新写入演示数据（2 个班级、4 个课程单元、13 个课次）。
//
// 所有数据经由 Service 层写入，与 HTTP 接口走同一套校验与默认值逻辑。
package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FelipeSantos92Dev/senai-2025-2/internal/dto"
	"github.com/FelipeSantos92Dev/senai-2025-2/internal/service"
)

// Summary 写入结果统计
type Summary struct {
	RemovedCohorts int
	Cohorts        int
	Units          int
	Sessions       int
}

type sessionSeed struct {
	title      string
	subject    string
	summary    string
	date       string
	status     string
	duration   int
	objectives string
}

type unitSeed struct {
	name        string
	code        string
	description string
	hours       int
	instructor  string
	color       string
	sessions    []sessionSeed
}

type cohortSeed struct {
	name        string
	term        string
	year        int
	description string
	color       string
	units       []unitSeed
}

var demoData = []cohortSeed{
	{
		name:        "Desenvolvimento Web Full Stack",
		term:        "2025.1",
		year:        2025,
		description: "Turma focada no desenvolvimento completo de aplicações web modernas",
		color:       "#3B82F6",
		units: []unitSeed{
			{
				name: "Programação Front-End", code: "FRONT001", hours: 80,
				description: "Desenvolvimento de interfaces modernas com React e Next.js",
				instructor:  "Prof. Maria Silva", color: "#8B5CF6",
				sessions: []sessionSeed{
					{"Introdução ao React", "Fundamentos do React e JSX", "Primeira aula sobre React, conceitos básicos e estrutura de componentes", "2025-02-03", "COMPLETED", 120, "Compreender os conceitos básicos do React e criar o primeiro componente"},
					{"Componentes e Props", "Como criar e usar componentes com propriedades", "Aprofundamento em componentes React e passagem de dados via props", "2025-02-05", "COMPLETED", 120, "Dominar a criação de componentes reutilizáveis"},
					{"Estado e Hooks", "useState e useEffect", "Gerenciamento de estado em componentes funcionais", "2025-02-07", "IN_PROGRESS", 150, "Implementar estado local e efeitos colaterais"},
					{"Roteamento com Next.js", "App Router e navegação", "Sistema de rotas do Next.js 15", "2025-02-10", "PLANNED", 120, "Configurar navegação entre páginas"},
					{"Styling com TailwindCSS", "Utility-first CSS framework", "Estilização moderna com classes utilitárias", "2025-02-12", "PLANNED", 120, "Criar interfaces responsivas com Tailwind"},
				},
			},
			{
				name: "Programação Back-End", code: "BACK001", hours: 100,
				description: "Desenvolvimento de APIs e serviços com Node.js",
				instructor:  "Prof. João Santos", color: "#F59E0B",
				sessions: []sessionSeed{
					{"Introdução ao Node.js", "Runtime JavaScript no servidor", "Configuração do ambiente e primeiros scripts", "2025-02-04", "COMPLETED", 120, "Configurar ambiente Node.js e entender o runtime"},
					{"Express.js Básico", "Framework web para Node.js", "Criando servidor HTTP e definindo rotas", "2025-02-06", "COMPLETED", 150, "Criar API REST básica com Express"},
					{"Middleware e Validação", "Interceptadores de requisições", "Implementando validação de dados e autenticação", "2025-02-11", "PLANNED", 120, "Implementar validação robusta de APIs"},
				},
			},
			{
				name: "Banco de Dados", code: "BD001", hours: 60,
				description: "Modelagem e administração de bancos de dados relacionais",
				instructor:  "Prof. Ana Costa", color: "#EF4444",
				sessions: []sessionSeed{
					{"Modelagem Conceitual", "Diagrama ER e normalização", "Princípios de modelagem de dados relacionais", "2025-02-08", "PLANNED", 120, "Criar modelos de dados eficientes"},
					{"SQL Básico", "Consultas e manipulação de dados", "SELECT, INSERT, UPDATE e DELETE", "2025-02-13", "PLANNED", 150, "Dominar comandos SQL essenciais"},
				},
			},
		},
	},
	{
		name:        "Análise e Desenvolvimento de Sistemas",
		term:        "2025.1",
		year:        2025,
		description: "Curso técnico em desenvolvimento de sistemas",
		color:       "#10B981",
		units: []unitSeed{
			{
				name: "Lógica de Programação", code: "LOG001", hours: 80,
				description: "Fundamentos da programação e algoritmos",
				instructor:  "Prof. Carlos Lima", color: "#06B6D4",
				sessions: []sessionSeed{
					{"Algoritmos Básicos", "Estruturas sequenciais", "Entrada, processamento e saída de dados", "2025-02-05", "COMPLETED", 120, "Compreender a lógica sequencial"},
					{"Estruturas Condicionais", "If, else e switch case", "Tomada de decisões em algoritmos", "2025-02-07", "IN_PROGRESS", 120, "Implementar lógica condicional"},
					{"Estruturas de Repetição", "Loops: for, while e do-while", "Automatização de tarefas repetitivas", "2025-02-12", "PLANNED", 150, "Dominar estruturas de repetição"},
				},
			},
		},
	},
}

// Run 删除现有全部班级（级联删除子记录）后写入演示数据
func Run(ctx context.Context, svc *service.Service, logger *zap.Logger) (*Summary, error) {
	sum := &Summary{}

	existing, err := svc.Cohort.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("列出现有班级失败: %w", err)
	}
	for i := range existing {
		if _, err := svc.Cohort.Delete(ctx, existing[i].ID); err != nil {
			return nil, fmt.Errorf("删除班级 %s 失败: %w", existing[i].ID, err)
		}
		sum.RemovedCohorts++
	}

	for _, cs := range demoData {
		cohort, err := svc.Cohort.Create(ctx, &dto.CreateCohortRequest{
			Name:        cs.name,
			Term:        cs.term,
			Year:        cs.year,
			Description: &cs.description,
			Color:       &cs.color,
		})
		if err != nil {
			return nil, fmt.Errorf("创建班级 %q 失败: %w", cs.name, err)
		}
		sum.Cohorts++

		for ui, us := range cs.units {
			unit, err := svc.Unit.Create(ctx, &dto.CreateUnitRequest{
				Name:          us.name,
				Code:          &us.code,
				Description:   &us.description,
				WorkloadHours: us.hours,
				Instructor:    &us.instructor,
				Color:         &us.color,
				Ordem:         ui + 1,
				CohortID:      cohort.ID,
			})
			if err != nil {
				return nil, fmt.Errorf("创建课程单元 %q 失败: %w", us.name, err)
			}
			sum.Units++

			for si, ss := range us.sessions {
				slug := service.GenerateSlug(ss.title)
				if _, err := svc.Session.Create(ctx, &dto.CreateSessionRequest{
					Title:           ss.title,
					Subject:         ss.subject,
					Summary:         &ss.summary,
					Date:            ss.date,
					Status:          ss.status,
					DurationMinutes: ss.duration,
					Objectives:      &ss.objectives,
					Ordem:           si + 1,
					Slug:            &slug,
					UnitID:          unit.ID,
				}); err != nil {
					return nil, fmt.Errorf("创建课次 %q 失败: %w", ss.title, err)
				}
				sum.Sessions++
			}
		}
	}

	logger.Info("演示数据写入完成",
		zap.Int("removed_cohorts", sum.RemovedCohorts),
		zap.Int("cohorts", sum.Cohorts),
		zap.Int("units", sum.Units),
		zap.Int("sessions", sum.Sessions),
	)
	return sum, nil
}
