package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bitsphere-automation/LD-InvGen/internal/config"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/entity"
	"github.com/bitsphere-automation/LD-InvGen/internal/domain/enum"
)

func testInvoiceConfig() *config.InvoiceConfig {
	return &config.InvoiceConfig{
		AssetDir: "testdata",
		Companies: map[string]config.CompanyConfig{
			"LD": {
				Name:         "Leads Digital",
				AddressLines: []string{"S.M. Sarani, Kolkata", "PIN-700127"},
				Phone:        "8296343757",
				Email:        "support@leadstocompany.com",
			},
			"LTC": {
				Name: "Leads To Company",
			},
		},
		TermsIntro: "Payments will be made to the following account through NEFT:",
		TermsLines: []string{"MANAS DATTA", "176010100013621"},
	}
}

func testInvoiceState() *entity.InvoiceState {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	state := entity.NewInvoiceState(now)
	state.SerialNumber = 7
	state.Client = entity.Client{Name: "Acme Corp", City: "Kolkata", State: "WB"}
	state.Items = []entity.LineItem{
		{Description: "Design work", Quantity: 2, UnitPrice: 500},
	}
	state.RefreshInvoiceNumber()
	return state
}

func TestBuildDocumentTaxInvoice(t *testing.T) {
	svc := NewExportService(newMockSessionRepo(), testInvoiceConfig())
	doc := svc.BuildDocument(testInvoiceState())

	if doc.Title != "Tax Invoice" {
		t.Errorf("title = %q, want Tax Invoice", doc.Title)
	}
	if doc.Company.Name != "Leads Digital" {
		t.Errorf("company = %q, want Leads Digital", doc.Company.Name)
	}
	if doc.NumberDisplay != "OvP/2024-7" {
		t.Errorf("number display = %q, want OvP/2024-7", doc.NumberDisplay)
	}
	if doc.DateDisplay != "15/03/2024" {
		t.Errorf("date display = %q, want 15/03/2024", doc.DateDisplay)
	}
	if doc.ProjectName != "Ongoing Work" {
		t.Errorf("empty project name should default to Ongoing Work, got %q", doc.ProjectName)
	}
	if len(doc.Items) != 1 || doc.Items[0].Amount != "Rs.1000.00" {
		t.Errorf("items = %+v, want one row of Rs.1000.00", doc.Items)
	}
	if !doc.ShowTax || doc.TaxLabel != "GST (18%):" || doc.TaxAmount != "Rs.180.00" {
		t.Errorf("tax block = %v %q %q, want GST (18%%): Rs.180.00", doc.ShowTax, doc.TaxLabel, doc.TaxAmount)
	}
	if doc.Total != "Rs.1180.00" || doc.BalanceDue != "Rs.1180.00" {
		t.Errorf("total = %q balance = %q, want Rs.1180.00 both", doc.Total, doc.BalanceDue)
	}
	if doc.FileName() != "Invoice-LD-OvP-2024-7.pdf" {
		t.Errorf("file name = %q, want Invoice-LD-OvP-2024-7.pdf", doc.FileName())
	}
	if len(doc.ClientLines) != 2 {
		t.Errorf("client lines = %v, want name plus city/state", doc.ClientLines)
	}
}

func TestBuildDocumentPaymentMade(t *testing.T) {
	svc := NewExportService(newMockSessionRepo(), testInvoiceConfig())

	state := testInvoiceState()
	state.PaymentMade = 200
	doc := svc.BuildDocument(state)

	if doc.PaymentMade != "Rs.200.00" {
		t.Errorf("payment made = %q, want Rs.200.00", doc.PaymentMade)
	}
	if doc.BalanceDue != "Rs.980.00" {
		t.Errorf("balance due = %q, want Rs.980.00", doc.BalanceDue)
	}

	// Negative payment sanitizes to zero before it reaches the document.
	state.PaymentMade = -50
	doc = svc.BuildDocument(state)
	if doc.PaymentMade != "Rs.0.00" {
		t.Errorf("negative payment rendered %q, want Rs.0.00", doc.PaymentMade)
	}
}

func TestBuildDocumentBillOfSupply(t *testing.T) {
	svc := NewExportService(newMockSessionRepo(), testInvoiceConfig())

	state := testInvoiceState()
	state.InvoiceType = enum.InvoiceTypeBillOfSupply
	doc := svc.BuildDocument(state)

	if doc.Title != "Bill of Supply" {
		t.Errorf("title = %q, want Bill of Supply", doc.Title)
	}
	if doc.ShowTax || doc.TaxLabel != "" || doc.TaxAmount != "" {
		t.Errorf("bill of supply must carry no tax block, got %v %q %q", doc.ShowTax, doc.TaxLabel, doc.TaxAmount)
	}
	if doc.Total != "Rs.1000.00" {
		t.Errorf("total = %q, want Rs.1000.00 without GST", doc.Total)
	}
}

func TestBuildDocumentCompanyByProjectCode(t *testing.T) {
	svc := NewExportService(newMockSessionRepo(), testInvoiceConfig())

	state := testInvoiceState()
	state.Project.Code = enum.ProjectCodeLTC
	state.RefreshInvoiceNumber()
	doc := svc.BuildDocument(state)

	if doc.Company.Name != "Leads To Company" {
		t.Errorf("company = %q, want Leads To Company for LTC", doc.Company.Name)
	}
	if doc.InvoiceNumber != "Invoice-LTC-OvP-2024-7" {
		t.Errorf("invoice number = %q, want Invoice-LTC-OvP-2024-7", doc.InvoiceNumber)
	}
}

func TestPreviewSharesLayoutWithExport(t *testing.T) {
	repo := newMockSessionRepo()
	svc := NewExportService(repo, testInvoiceConfig())
	ctx := context.Background()

	state := testInvoiceState()
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	pages, err := svc.Preview(ctx, state.ID)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(pages))
	}

	var sawTotal bool
	for _, op := range pages[0].Ops {
		if op.Kind == "text" && op.Text == "Rs.1180.00" {
			sawTotal = true
		}
	}
	if !sawTotal {
		t.Error("preview ops should contain the formatted total Rs.1180.00")
	}
}

func TestPreviewUnknownSession(t *testing.T) {
	svc := NewExportService(newMockSessionRepo(), testInvoiceConfig())

	if _, err := svc.Preview(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected not found error")
	}
}

func TestExportPDFProducesDocument(t *testing.T) {
	repo := newMockSessionRepo()
	svc := NewExportService(repo, testInvoiceConfig())
	ctx := context.Background()

	state := testInvoiceState()
	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("Save: %v", err)
	}

	result, err := svc.ExportPDF(ctx, state.ID)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if result.FileName != "Invoice-LD-OvP-2024-7.pdf" {
		t.Errorf("file name = %q, want Invoice-LD-OvP-2024-7.pdf", result.FileName)
	}
	if len(result.Data) == 0 || string(result.Data[:5]) != "%PDF-" {
		t.Error("export should produce a non-empty PDF stream")
	}
}
