// Package document renders salary slips and stores generated files.
package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrIncompleteSlip = errors.New("salary slip is missing required fields")

type SalarySlip struct {
	OrganizationName  string
	EmployeeName      string
	EmployeeNumber    string
	Designation       string
	BankAccountNumber string
	BankName          string
	Month             string
	Year              int
	TransactionID     string
	PaymentDate       time.Time

	BasicSalary       decimal.Decimal
	HousingAllowance  decimal.Decimal
	DearnessAllowance decimal.Decimal
	OtherAllowances   decimal.Decimal
	GrossSalary       decimal.Decimal
	ProvidentFund     decimal.Decimal
	NetSalary         decimal.Decimal
}

//go:generate mockgen -source=renderer.go -destination=mock/renderer_mock.go -package=mock
type Renderer interface {
	RenderSalarySlip(slip SalarySlip) ([]byte, error)
}

type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderSalarySlip(slip SalarySlip) ([]byte, error) {
	if strings.TrimSpace(slip.EmployeeName) == "" || slip.Month == "" || slip.Year == 0 || slip.TransactionID == "" {
		return nil, ErrIncompleteSlip
	}

	lines := []pdfLine{
		{text: slip.OrganizationName, bold: true},
		{text: fmt.Sprintf("Salary Slip - %s %d", slip.Month, slip.Year), bold: true},
		{},
		{text: "Employee: " + slip.EmployeeName},
		{text: "Employee No: " + slip.EmployeeNumber},
	}
	if slip.Designation != "" {
		lines = append(lines, pdfLine{text: "Designation: " + slip.Designation})
	}
	if slip.BankAccountNumber != "" {
		lines = append(lines, pdfLine{text: fmt.Sprintf("Bank Account: %s (%s)", maskAccount(slip.BankAccountNumber), slip.BankName)})
	}
	lines = append(lines,
		pdfLine{text: "Transaction ID: " + slip.TransactionID},
		pdfLine{text: "Payment Date: " + slip.PaymentDate.Format("02 Jan 2006")},
		pdfLine{},
		pdfLine{text: "Earnings", bold: true},
		amountLine("Basic Salary", slip.BasicSalary),
		amountLine("House Rent Allowance", slip.HousingAllowance),
		amountLine("Dearness Allowance", slip.DearnessAllowance),
		amountLine("Other Allowances", slip.OtherAllowances),
		amountLine("Gross Salary", slip.GrossSalary),
		pdfLine{},
		pdfLine{text: "Deductions", bold: true},
		amountLine("Provident Fund", slip.ProvidentFund),
		pdfLine{},
		pdfLine{text: "Net Salary: " + slip.NetSalary.StringFixed(2), bold: true},
		pdfLine{},
		pdfLine{text: "This is a system generated document and does not require a signature."},
	)

	return buildPDF(lines), nil
}

func amountLine(label string, v decimal.Decimal) pdfLine {
	return pdfLine{text: fmt.Sprintf("%-24s %12s", label+":", v.StringFixed(2))}
}

func maskAccount(acc string) string {
	if len(acc) <= 4 {
		return acc
	}
	return strings.Repeat("X", len(acc)-4) + acc[len(acc)-4:]
}
