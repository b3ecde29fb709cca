package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Renderer produces payslip and monthly summary PDFs.
type Renderer struct {
	issuer string
}

func NewRenderer(issuer string) *Renderer {
	return &Renderer{issuer: issuer}
}

type line struct {
	label  string
	amount decimal.Decimal
}

func earningLines(s payroll.SalarySummary) []line {
	return []line{
		{"Basic Salary", s.Earnings.Basic},
		{fmt.Sprintf("Overtime 9hr (%s h)", s.Quantities.OvertimeHours), s.Earnings.Overtime},
		{fmt.Sprintf("Overtime 12hr (%s h)", s.Quantities.Overtime12hrHours), s.Earnings.Overtime12hr},
		{fmt.Sprintf("Sunday (%s d)", s.Quantities.SundayDays), s.Earnings.Sunday},
		{fmt.Sprintf("Public Holiday (%s d)", s.Quantities.PHDays), s.Earnings.PublicHoliday},
		{fmt.Sprintf("Sunday/PH OT (%s h)", s.Quantities.SundayPHOTHours), s.Earnings.SundayPHOT},
		{"Fixed Allowance", s.Earnings.FixedAllowance},
		{"Back Pay", s.Earnings.BackPay},
		{"Special Allowance", s.Earnings.SpecialAllowance},
		{"Night Shift Allowance", s.Earnings.NightShiftAllowance},
		{"Other Claim", s.Earnings.OtherClaim},
	}
}

func deductionLines(s payroll.SalarySummary) []line {
	return []line{
		{fmt.Sprintf("No-Pay Leave (%s d)", s.Quantities.NPLDays), s.Deductions.NPL},
		{"EPF", s.Deductions.EPF},
		{"SOCSO", s.Deductions.SOCSO},
		{"SIP", s.Deductions.SIP},
		{"Hostel Fee", s.Deductions.HostelFee},
		{"Utility Charges", s.Deductions.UtilityCharges},
		{fmt.Sprintf("Advance (x%d)", s.AdvanceCount), s.Deductions.Advance},
		{fmt.Sprintf("Medical (x%d)", s.MedicalCount), s.Deductions.Medical},
		{"Other Deductions", s.Deductions.OtherDeductions},
		{"Deduction", s.Deductions.DefaultDeduction},
		{"Insurance", s.Deductions.Insurance},
	}
}

// Payslip renders a single A4 payslip. Zero line items are omitted.
func (r *Renderer) Payslip(s payroll.SalarySummary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s", s.Period), true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "PAYSLIP", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if r.issuer != "" {
		pdf.CellFormat(0, 6, r.issuer, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	employeeName := fmt.Sprintf("Employee #%d", s.EmployeeID)
	if s.EmployeeName != nil {
		employeeName = *s.EmployeeName
	}
	header := [][2]string{
		{"Company", s.CompanyName},
		{"Employee", employeeName},
		{"Period", s.Period.String()},
	}
	if s.EmployeePosition != nil {
		header = append(header, [2]string{"Position", *s.EmployeePosition})
	}
	if s.AccountNo != nil {
		header = append(header, [2]string{"Account No", *s.AccountNo})
	}
	if s.PaymentDate != nil {
		header = append(header, [2]string{"Payment Date", s.PaymentDate.Format("02 Jan 2006")})
	}
	for _, h := range header {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, h[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, h[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	writeSection(pdf, "Earnings", s.Currency, earningLines(s), s.Earnings.Total)
	pdf.Ln(3)
	writeSection(pdf, "Deductions", s.Currency, deductionLines(s), s.Deductions.Total)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(130, 9, "NET PAY", "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 9, money(s.Currency, s.NetPay), "1", 1, "R", true, 0, "")

	return output(pdf)
}

func writeSection(pdf *gofpdf.Fpdf, title, currency string, lines []line, total decimal.Decimal) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, l := range lines {
		if l.amount.IsZero() {
			continue
		}
		pdf.CellFormat(130, 6, l.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, money(currency, l.amount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(130, 7, "Total "+strings.ToLower(title), "T", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, money(currency, total), "T", 1, "R", false, 0, "")
}

var reportColumns = []struct {
	title string
	width float64
}{
	{"No", 10},
	{"Employee", 60},
	{"Company", 55},
	{"Basic", 30},
	{"Earnings", 30},
	{"Deductions", 30},
	{"Net Pay", 30},
}

// MonthlyReport renders the summary listing in landscape with a totals row.
func (r *Renderer) MonthlyReport(filter payroll.SummaryFilter, summaries []payroll.SalarySummary, totals payroll.SummaryTotals) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Monthly Salary Summary", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, reportTitle(filter), "", 1, "C", false, 0, "")
	if r.issuer != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, r.issuer, "", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range reportColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i, s := range summaries {
		name := fmt.Sprintf("#%d", s.EmployeeID)
		if s.EmployeeName != nil {
			name = *s.EmployeeName
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			name,
			s.CompanyName,
			s.Earnings.Basic.StringFixed(2),
			s.Earnings.Total.StringFixed(2),
			s.Deductions.Total.StringFixed(2),
			s.NetPay.StringFixed(2),
		}
		for j, c := range reportColumns {
			align := "R"
			if j == 1 || j == 2 {
				align = "L"
			}
			pdf.CellFormat(c.width, 6, cells[j], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(reportColumns[0].width+reportColumns[1].width+reportColumns[2].width, 7,
		fmt.Sprintf("TOTAL (%d)", totals.Count), "1", 0, "L", true, 0, "")
	for _, v := range []decimal.Decimal{totals.Basic, totals.EarningsTotal, totals.DeductionsTotal, totals.NetPay} {
		pdf.CellFormat(30, 7, v.StringFixed(2), "1", 0, "R", true, 0, "")
	}
	pdf.Ln(-1)

	return output(pdf)
}

func reportTitle(filter payroll.SummaryFilter) string {
	title := "Monthly Salary Summary"
	var parts []string
	if filter.Month != nil {
		parts = append(parts, *filter.Month)
	}
	if filter.Year != nil {
		parts = append(parts, fmt.Sprintf("%d", *filter.Year))
	}
	if filter.EmployeeType != nil {
		parts = append(parts, "("+*filter.EmployeeType+")")
	}
	if len(parts) > 0 {
		title += " - " + strings.Join(parts, " ")
	}
	return title
}

func money(currency string, amount decimal.Decimal) string {
	return currency + " " + amount.StringFixed(2)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
