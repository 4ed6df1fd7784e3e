// Package pdf renders salary slips as downloadable PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
)

// RenderPayslip produces an A4 payslip document for the slip and returns
// the raw PDF bytes.
func RenderPayslip(slip salaryslip.SalarySlip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Salary Slip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if slip.EmployeeName != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", *slip.EmployeeName))
		pdf.Ln(6)
	}
	if slip.EmployeeCode != nil {
		pdf.Cell(0, 7, fmt.Sprintf("Employee Code: %s", *slip.EmployeeCode))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", slip.PeriodMonth))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings and Deductions")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	amountRow(pdf, "Basic Salary", slip.BasicSalary)
	amountRow(pdf, "Allowance", slip.Allowance)
	amountRow(pdf, "Deduction", slip.Deduction.Neg())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	amountRow(pdf, "Total Salary", slip.TotalSalary)
	pdf.Ln(6)

	if slip.Remarks != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Remarks: %s", slip.Remarks), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	return buf.Bytes(), nil
}

func amountRow(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(90, 7, label)
	pdf.CellFormat(60, 7, fmt.Sprintf("Rp %s", amount.StringFixed(2)), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
