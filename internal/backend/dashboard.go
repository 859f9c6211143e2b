package backend

import "context"

// DashboardTotals is the admin landing-page summary.
type DashboardTotals struct {
	TotalProducts int64 `json:"totalProducts"`
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalUsers    int64 `json:"totalUsers"`
}

func (c *Client) Dashboard(ctx context.Context) (*DashboardTotals, error) {
	var out DashboardTotals
	if err := c.get(ctx, "/api/admin/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
