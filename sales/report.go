/*
report.go - Time-ranged summaries over sales orders

PURPOSE:
  Given a {from, to} date range (inclusive, calendar-day strings),
  derives three views from the sales-order collection:

    sales_trends   one point per date with orders, amounts summed
    top_customers  customers ranked by summed order totals, descending
    top_items      items ranked by total amount sold, descending,
                   with quantities

  Everything is computed from current store state on every call.
  Customer references resolve to display names when a matching
  customer record exists; otherwise the raw reference is kept, which
  also covers seed documents that carry display names directly.

SEE ALSO:
  - kpi.go: the scalar dashboard metrics
*/
package sales

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// DateRange bounds a report, inclusive on both ends.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Contains reports whether the calendar-day string falls in the
// range. ISO dates compare correctly as strings.
func (r DateRange) Contains(date string) bool {
	return date >= r.From && date <= r.To
}

type TrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

type CustomerSales struct {
	Customer   string          `json:"customer"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

type ItemSales struct {
	ItemCode    string          `json:"item_code"`
	ItemName    string          `json:"item_name"`
	QtySold     decimal.Decimal `json:"qty_sold"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ReportData is one report snapshot.
type ReportData struct {
	DateRange    DateRange       `json:"date_range"`
	SalesTrends  []TrendPoint    `json:"sales_trends"`
	TopCustomers []CustomerSales `json:"top_customers"`
	TopItems     []ItemSales     `json:"top_items"`
}

// Report derives trends, top customers and top items for the range.
func (s *Service) Report(ctx context.Context, rng DateRange) (ReportData, error) {
	var report ReportData
	err := s.transport.Do(ctx, func() error {
		var inner error
		report, inner = s.computeReport(ctx, rng)
		return inner
	})
	return report, err
}

func (s *Service) computeReport(ctx context.Context, rng DateRange) (ReportData, error) {
	report := ReportData{DateRange: rng}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return report, err
	}

	customerNames, err := s.customerDisplayNames(ctx)
	if err != nil {
		return report, err
	}
	itemNames, err := s.itemDisplayNames(ctx)
	if err != nil {
		return report, err
	}

	byDate := make(map[string]decimal.Decimal)
	byCustomer := make(map[string]decimal.Decimal)
	qtyByItem := make(map[string]decimal.Decimal)
	amountByItem := make(map[string]decimal.Decimal)

	for _, o := range orders {
		if !rng.Contains(o.TransactionDate) {
			continue
		}

		byDate[o.TransactionDate] = byDate[o.TransactionDate].Add(o.GrandTotal)

		customer := o.Customer
		if display, ok := customerNames[customer]; ok {
			customer = display
		}
		byCustomer[customer] = byCustomer[customer].Add(o.GrandTotal)

		for _, line := range o.Items {
			qtyByItem[line.ItemCode] = qtyByItem[line.ItemCode].Add(line.Qty)
			amountByItem[line.ItemCode] = amountByItem[line.ItemCode].Add(line.Amount)
		}
	}

	report.SalesTrends = make([]TrendPoint, 0, len(byDate))
	for date, amount := range byDate {
		report.SalesTrends = append(report.SalesTrends, TrendPoint{Date: date, Amount: amount})
	}
	sort.Slice(report.SalesTrends, func(i, j int) bool {
		return report.SalesTrends[i].Date < report.SalesTrends[j].Date
	})

	report.TopCustomers = make([]CustomerSales, 0, len(byCustomer))
	for customer, total := range byCustomer {
		report.TopCustomers = append(report.TopCustomers, CustomerSales{Customer: customer, TotalSales: total})
	}
	sort.Slice(report.TopCustomers, func(i, j int) bool {
		a, b := report.TopCustomers[i], report.TopCustomers[j]
		if !a.TotalSales.Equal(b.TotalSales) {
			return a.TotalSales.GreaterThan(b.TotalSales)
		}
		return a.Customer < b.Customer // deterministic tie-break
	})

	report.TopItems = make([]ItemSales, 0, len(amountByItem))
	for code, amount := range amountByItem {
		name := code
		if display, ok := itemNames[code]; ok {
			name = display
		}
		report.TopItems = append(report.TopItems, ItemSales{
			ItemCode:    code,
			ItemName:    name,
			QtySold:     qtyByItem[code],
			TotalAmount: amount,
		})
	}
	sort.Slice(report.TopItems, func(i, j int) bool {
		a, b := report.TopItems[i], report.TopItems[j]
		if !a.TotalAmount.Equal(b.TotalAmount) {
			return a.TotalAmount.GreaterThan(b.TotalAmount)
		}
		return a.ItemCode < b.ItemCode
	})

	return report, nil
}

func (s *Service) customerDisplayNames(ctx context.Context) (map[string]string, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.Name] = c.CustomerName
	}
	return names, nil
}

func (s *Service) itemDisplayNames(ctx context.Context) (map[string]string, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(items))
	for _, i := range items {
		names[i.ItemCode] = i.ItemName
	}
	return names, nil
}
