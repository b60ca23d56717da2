package tools

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"gcpkit/request"
)

// GetBillingCost looks up the project's linked billing account and reports
// the cost window. A project without billing enabled yields a structured
// failure with no further billing calls, not an error.
//
// Cost figures come back zero until the cost-export query is hooked up; the
// record shape is final.
func (t *Toolset) GetBillingCost(ctx context.Context, projectID, startDate, endDate string, groupBy []string) (*BillingCostResponse, error) {
	req, err := request.NewBillingCost(projectID, startDate, endDate, groupBy)
	if err != nil {
		return nil, err
	}

	info, err := t.Billing.ProjectBillingInfo(ctx, req.ProjectID)
	if err != nil {
		return nil, providerErr("get billing data", err)
	}
	if !info.BillingEnabled {
		return &BillingCostResponse{
			Success:   false,
			ProjectID: req.ProjectID,
			Error:     "Billing is not enabled for this project",
		}, nil
	}
	accountID := lastSegment(info.BillingAccountName)

	end := req.End
	if end.IsZero() {
		end = t.now()
	}
	start := req.Start
	if start.IsZero() {
		start = end.AddDate(0, 0, -30)
	}

	account, err := t.Billing.BillingAccount(ctx, "billingAccounts/"+accountID)
	if err != nil {
		log.Printf("Error retrieving billing data for account %s: %v", accountID, err)
		return &BillingCostResponse{
			Success:          false,
			ProjectID:        req.ProjectID,
			BillingAccountID: accountID,
			Error:            fmt.Sprintf("Failed to retrieve billing data: %v", err),
		}, nil
	}

	currency := account.GetCurrencyCode()
	if currency == "" {
		currency = "USD"
	}
	return &BillingCostResponse{
		Success:          true,
		ProjectID:        req.ProjectID,
		BillingAccountID: accountID,
		TimeRange: &TimeRange{
			Start: start.Format(time.RFC3339),
			End:   end.Format(time.RFC3339),
		},
		TotalCost:      &CostAmount{Amount: decimal.Zero, Currency: currency},
		CostsByService: map[string]CostAmount{},
	}, nil
}
