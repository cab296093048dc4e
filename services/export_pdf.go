package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// CompanyInfo is the letterhead block printed on quotation documents.
type CompanyInfo struct {
	CompanyName    string
	CompanyAddress string
	CompanyContact string
	QuoteTitle     string
	AppVersion     string
	PreparedBy     string
	FooterNote     string
}

// DefaultCompanyInfo is the fallback letterhead used when no company profile
// is configured.
var DefaultCompanyInfo = CompanyInfo{
	CompanyName:    "Your Company Name",
	CompanyAddress: "Your Address Line 1, City, Country",
	CompanyContact: "Phone: +63-000-000-0000 | Email: info@example.com",
	QuoteTitle:     "TECHNICAL QUOTATION",
	AppVersion:     "V5.0.0",
	PreparedBy:     "Prepared by: Quotation System",
	FooterNote:     "Thank you for your business.",
}

// GenerateQuotesPDF renders the committed quotes as a multi-page quotation
// document: a summary page listing every quote's selling price and delivery
// estimate, then one detail page per quote with its full cost breakdown.
func GenerateQuotesPDF(quotes []Quote, info CompanyInfo, createdAt time.Time) ([]byte, error) {
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quotes to render")
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addSummaryPage(m, quotes, info, createdAt)
	for _, q := range quotes {
		detail := page.New()
		detail.Add(quoteDetailRows(q, info)...)
		m.AddPages(detail)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addSummaryPage(m core.Maroto, quotes []Quote, info CompanyInfo, createdAt time.Time) {
	// Title banner
	bannerBg := &props.Color{Red: 0, Green: 102, Blue: 204}
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(info.QuoteTitle, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(&props.Cell{BackgroundColor: bannerBg}),
		),
	)
	m.AddRows(row.New(3))

	valueStyle := props.Text{Size: 8, Align: align.Left}
	rightValueStyle := props.Text{Size: 8, Align: align.Right}

	m.AddRows(
		row.New(7).Add(
			col.New(8).Add(text.New(info.CompanyName, props.Text{
				Size:  11,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(4).Add(text.New(createdAt.Format("2006-01-02"), rightValueStyle)),
		),
		row.New(6).Add(
			col.New(8).Add(text.New(info.CompanyAddress, valueStyle)),
			col.New(4).Add(text.New(info.AppVersion, rightValueStyle)),
		),
		row.New(6).Add(
			col.New(8).Add(text.New(info.CompanyContact, valueStyle)),
			col.New(4).Add(text.New(info.PreparedBy, rightValueStyle)),
		),
	)
	m.AddRows(row.New(4))

	// Quote table header
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New("Quote", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Service", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Rush", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Delivery", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Selling price", headerTextRight)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	grandTotal := 0.0

	for i, q := range quotes {
		bodyText := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		selling := SellingPrice(q.Result)
		grandTotal += selling

		colName := col.New(4).Add(text.New(q.Name, bodyText))
		colService := col.New(3).Add(text.New(q.ServiceTypeLabel, bodyText))
		colRush := col.New(1).Add(text.New(rushMark(q.Result), bodyText))
		colDelivery := col.New(2).Add(text.New(deliveryText(q.Result), bodyText))
		colPrice := col.New(2).Add(text.New(FormatPHP(selling), bodyTextRight))

		if cellStyle != nil {
			colName = colName.WithStyle(cellStyle)
			colService = colService.WithStyle(cellStyle)
			colRush = colRush.WithStyle(cellStyle)
			colDelivery = colDelivery.WithStyle(cellStyle)
			colPrice = colPrice.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colName, colService, colRush, colDelivery, colPrice))
	}

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("Grand total", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatPHP(grandTotal), grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(info.FooterNote, props.Text{
				Size:  7,
				Align: align.Center,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
	)
}

func quoteDetailRows(q Quote, info CompanyInfo) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(8).Add(text.New(q.Name, props.Text{
				Size:  13,
				Style: fontstyle.Bold,
				Align: align.Left,
			})),
			col.New(4).Add(text.New(q.ServiceTypeLabel, props.Text{
				Size:  10,
				Align: align.Right,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			})),
		),
		row.New(3),
	}

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerCell := props.Cell{BackgroundColor: headerBg}

	rows = append(rows,
		row.New(8).Add(
			col.New(8).Add(text.New("Item", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Amount", headerTextRight)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}
	for i, item := range q.Result.LineItems {
		bodyText := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		display := item.Display
		if display == "" {
			display = FormatAmount(item.Amount)
		}

		colLabel := col.New(8).Add(text.New(item.Label, bodyText))
		colAmount := col.New(4).Add(text.New(display, bodyTextRight))
		if i%2 == 1 {
			cellStyle := &props.Cell{BackgroundColor: altBg}
			colLabel = colLabel.WithStyle(cellStyle)
			colAmount = colAmount.WithStyle(cellStyle)
		}
		rows = append(rows, row.New(6).Add(colLabel, colAmount))
	}

	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	summaryLabel := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	summaryValue := props.Text{Size: 8, Align: align.Right}

	rows = append(rows,
		row.New(2),
		row.New(7).Add(
			col.New(9).Add(text.New("Subtotal expenses", summaryLabel)).WithStyle(summaryCell),
			col.New(3).Add(text.New(FormatPHP(q.Result.Subtotal), summaryValue)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	rows = append(rows,
		row.New(8).Add(
			col.New(9).Add(text.New("Selling price", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(FormatPHP(SellingPrice(q.Result)), grandStyle)).WithStyle(grandCell),
		),
	)

	if notes := strings.TrimSpace(q.Inputs["notes"]); notes != "" {
		rows = append(rows,
			row.New(3),
			row.New(6).Add(col.New(12).Add(text.New("NOTES", props.Text{
				Size:  7,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: &props.Color{Red: 100, Green: 100, Blue: 100},
			}))),
			row.New(7).Add(col.New(12).Add(text.New(notes, props.Text{Size: 8, Align: align.Left}))),
		)
	}

	return rows
}

// rushMark renders the rush column of the summary table.
func rushMark(res QuoteResult) string {
	if res.Detail != nil && res.Detail.Figures().Rush {
		return "Yes"
	}
	return "No"
}

// deliveryText renders the delivery estimate shown on the summary page: the
// rush schedule when rush is enabled, otherwise the normal one.
func deliveryText(res QuoteResult) string {
	if res.Detail == nil {
		return "-"
	}
	fig := res.Detail.Figures()
	days := fig.DeliveryDays
	if fig.Rush {
		days = fig.RushDeliveryDays
	}
	if days <= 0 {
		return "-"
	}
	return FormatDays(days)
}
