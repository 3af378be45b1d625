package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/repositories"
)

// ExportService writes a buyer's confirmed purchases to a spreadsheet.
// Pending orders are excluded: the buyer has not been granted the contact
// data yet, so it must not leave the system through the export either.
type ExportService struct {
	orders *repositories.OrderRepository
}

func NewExportService(orders *repositories.OrderRepository) *ExportService {
	return &ExportService{orders: orders}
}

const exportSheet = "Purchased Leads"

var exportHeader = []string{
	"First Name", "Last Name", "Email", "Role", "Company", "Website",
	"Industry", "Location", "LinkedIn", "Instagram", "Price Paid", "Purchase Date",
}

// ExportFilename names the download, e.g. LeadHub_Export_2026-08-31.xlsx.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("LeadHub_Export_%s.xlsx", now.Format("2006-01-02"))
}

// Export builds the workbook for one buyer and returns it as bytes.
func (s *ExportService) Export(ctx context.Context, userID string) ([]byte, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repositories.ErrNotFound
	}
	orders, err := s.orders.ByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)
	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, fmt.Errorf("services: export header: %w", err)
		}
	}

	row := 2
	for _, o := range orders {
		if o.IsPending() {
			continue
		}
		values := []interface{}{
			o.LeadData.FirstName,
			o.LeadData.LastName,
			o.LeadData.Email,
			o.LeadData.JobTitle,
			o.LeadData.WebsiteName,
			o.LeadData.WebsiteURL,
			o.LeadData.Industry,
			o.LeadData.Location,
			o.LeadData.LinkedIn,
			o.LeadData.Instagram,
			o.Price,
			o.PurchasedAt.Format("2006-01-02"),
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, fmt.Errorf("services: export row %d: %w", row, err)
			}
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("services: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
