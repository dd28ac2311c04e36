package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

type ReportService interface {
	GenerateScorecard(projectID uint) (string, error)
}

type reportService struct {
	projectService ProjectService
	outputDir      string
}

func NewReportService(projectService ProjectService, outputDir string) ReportService {
	if outputDir == "" {
		outputDir = "working/reports"
	}
	return &reportService{projectService: projectService, outputDir: outputDir}
}

// GenerateScorecard renders the project's ASG scorecard as a PDF and returns
// the file path.
func (s *reportService) GenerateScorecard(projectID uint) (string, error) {
	project, err := s.projectService.GetProject(projectID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch project: %w", err)
	}
	result, err := s.projectService.GetProjectScore(projectID)
	if err != nil {
		return "", fmt.Errorf("failed to compute scores: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "ASG Scorecard")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, project.Name)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%s | Phase: %s | Generated %s",
		project.Location, project.CurrentPhase, time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Overall score: %d / 100 (risk: %s)", result.Score.Overall, result.RiskLevel))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Pillar scores")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	rows := []struct {
		label string
		value int
	}{
		{"Environmental", result.Score.Environmental},
		{"Social", result.Score.Social},
		{"Governance", result.Score.Governance},
	}
	for _, row := range rows {
		pdf.Cell(60, 6, row.label)
		pdf.Cell(0, 6, fmt.Sprintf("%d", row.value))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Phase scores")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	phases := []struct {
		label string
		value int
	}{
		{"Feasibility", result.Score.ByPhase.Feasibility},
		{"Design", result.Score.ByPhase.Design},
		{"Construction", result.Score.ByPhase.Construction},
	}
	for _, row := range phases {
		pdf.Cell(60, 6, row.label)
		pdf.Cell(0, 6, fmt.Sprintf("%d", row.value))
		pdf.Ln(6)
	}

	risks, err := s.projectService.GetRisks(projectID)
	if err == nil && len(risks) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, "Open risks")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 9)
		for _, risk := range risks {
			if risk.Status == "closed" || risk.Status == "mitigated" {
				continue
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s: %s", risk.Severity, risk.RiskType, risk.Description), "", "L", false)
			pdf.Ln(1)
		}
	}

	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	// Unique file name so concurrent downloads never overwrite each other.
	outputPath := filepath.Join(s.outputDir, fmt.Sprintf("asg_scorecard_%d_%s.pdf", projectID, uuid.NewString()))
	if err := pdf.OutputFileAndClose(outputPath); err != nil {
		return "", fmt.Errorf("failed to save PDF: %w", err)
	}
	return outputPath, nil
}
