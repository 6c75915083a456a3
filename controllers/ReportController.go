package controllers

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/gofiber/fiber/v2"

	"startupfuel.com/dto"
	"startupfuel.com/middlewares"
	"startupfuel.com/storage"
	"startupfuel.com/types"
)

type staticReport struct {
	ID            uint
	Name          string
	Filename      string
	S3Key         string
	Type          string
	Description   string
	GeneratedDate string
}

// The report catalog is fixed; files are produced out-of-band and uploaded
// to the bucket by the reporting pipeline.
var staticReports = []staticReport{
	{
		ID:            1,
		Name:          "Financial Performance Report 2024",
		Filename:      "financial-performance-2024.pdf",
		S3Key:         "reports/financial-performance-2024.pdf",
		Type:          "ANNUAL",
		Description:   "Comprehensive annual financial performance analysis",
		GeneratedDate: "2024-12-31",
	},
	{
		ID:            2,
		Name:          "Quarterly Investment Summary Q4 2024",
		Filename:      "investment-summary-q4-2024.pdf",
		S3Key:         "reports/investment-summary-q4-2024.pdf",
		Type:          "QUARTERLY",
		Description:   "Q4 2024 investment portfolio summary and insights",
		GeneratedDate: "2024-12-31",
	},
	{
		ID:            3,
		Name:          "Monthly Portfolio Analysis December 2024",
		Filename:      "portfolio-analysis-dec-2024.pdf",
		S3Key:         "reports/portfolio-analysis-dec-2024.pdf",
		Type:          "MONTHLY",
		Description:   "Detailed monthly portfolio performance breakdown",
		GeneratedDate: "2024-12-31",
	},
}

type ReportController struct {
	storage *storage.S3Storage
}

func NewReportController() *ReportController {
	return &ReportController{
		storage: storage.NewFromEnv(),
	}
}

// ListReports godoc
//
//	@Summary		Available report downloads
//	@Description	Fixed report catalog with time-limited presigned download links (1 hour expiry).
//	@Tags			Reports
//	@Produce		json
//	@Success		200	{object}	types.Response{data=dto.ReportsResponse}
//	@Security		BearerAuth
//	@Router			/reports [get]
func (rc *ReportController) ListReports(c *fiber.Ctx) error {
	reports := make([]dto.ReportDescriptor, 0, len(staticReports))

	for _, report := range staticReports {
		downloadURL := report.S3Key
		if rc.storage != nil {
			url, err := rc.storage.PresignDownload(report.S3Key, time.Hour)
			if err != nil {
				log.Printf("Failed to presign %s: %v", report.S3Key, err)
				return c.Status(500).JSON(types.Response{
					Success: false,
					Error:   "An error occurred while fetching report data",
				})
			}
			downloadURL = url
		}

		formattedDate := report.GeneratedDate
		if parsed, err := time.Parse("2006-01-02", report.GeneratedDate); err == nil {
			formattedDate = parsed.Format("January 2, 2006")
		}

		reports = append(reports, dto.ReportDescriptor{
			ID:            report.ID,
			Name:          report.Name,
			Filename:      report.Filename,
			Type:          report.Type,
			Description:   report.Description,
			GeneratedDate: report.GeneratedDate,
			FormattedDate: formattedDate,
			DownloadURL:   downloadURL,
			Status:        "ready",
			IsRecent:      true,
		})
	}

	return c.JSON(types.Response{
		Success: true,
		Data:    dto.ReportsResponse{Reports: reports},
	})
}

// RunReportCatalogCronJob re-checks the catalog against the bucket once a
// month so stale links get noticed before users do.
func RunReportCatalogCronJob(rc *ReportController) {
	if rc.storage == nil {
		return
	}

	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(1).Month(1).At("06:00").Do(func() {
		for _, report := range staticReports {
			if _, err := rc.storage.PresignDownload(report.S3Key, time.Minute); err != nil {
				log.Printf("Report catalog check failed for %s: %v", report.S3Key, err)
			}
		}
	})
	if err != nil {
		log.Printf("Failed to schedule report catalog check: %v", err)
		return
	}

	go scheduler.StartBlocking()
}

func InitReportRoutes(app *fiber.App) {
	reportController := NewReportController()

	app.Get("/reports", middlewares.Auth, reportController.ListReports)

	RunReportCatalogCronJob(reportController)
}
