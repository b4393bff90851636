package services

import (
	"networth/internal/money"
)

// dashboardService composes per-kind aggregates into the dashboard views.
// It holds no state of its own and performs no writes: net worth is a pure
// function of five independent totals, recomputed on every read.
type dashboardService struct {
	incomes     IncomeServicer
	expenses    ExpenseServicer
	bills       BillServicer
	assets      AssetServicer
	goals       GoalServicer
	savings     SavingsServicer
	investments InvestmentServicer
}

// NewDashboardService creates a new DashboardServicer over the per-kind services.
func NewDashboardService(
	incomes IncomeServicer,
	expenses ExpenseServicer,
	bills BillServicer,
	assets AssetServicer,
	goals GoalServicer,
	savings SavingsServicer,
	investments InvestmentServicer,
) DashboardServicer {
	return &dashboardService{
		incomes:     incomes,
		expenses:    expenses,
		bills:       bills,
		assets:      assets,
		goals:       goals,
		savings:     savings,
		investments: investments,
	}
}

// GetNetWorth computes income - expenses + savings + assets + investments.
// Each term independently defaults to 0 when the user has no rows of that
// kind, so a brand-new user has a net worth of exactly 0.
func (s *dashboardService) GetNetWorth(userID uint) (*NetWorthSummary, error) {
	totalIncome, err := s.incomes.GetTotalIncome(userID)
	if err != nil {
		return nil, err
	}
	totalExpenses, err := s.expenses.GetTotalExpenses(userID)
	if err != nil {
		return nil, err
	}
	totalSavings, err := s.savings.GetSavings(userID)
	if err != nil {
		return nil, err
	}
	totalAssets, err := s.assets.GetTotalAssetValue(userID)
	if err != nil {
		return nil, err
	}
	totalInvested, err := s.investments.GetTotalInvested(userID)
	if err != nil {
		return nil, err
	}

	return &NetWorthSummary{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		TotalSavings:     totalSavings,
		TotalAssets:      totalAssets,
		TotalInvestments: totalInvested,
		NetWorth:         money.Round(totalIncome - totalExpenses + totalSavings + totalAssets + totalInvested),
	}, nil
}

// GetSummary assembles the full dashboard view model: the net worth block,
// the default top-4 list for each contributing kind, and the two trackers
// that do not feed net worth.
func (s *dashboardService) GetSummary(userID uint) (*DashboardSummary, error) {
	netWorth, err := s.GetNetWorth(userID)
	if err != nil {
		return nil, err
	}

	topIncomes, err := s.incomes.GetTopIncomes(userID, TopListDefault)
	if err != nil {
		return nil, err
	}
	topExpenses, err := s.expenses.GetTopExpenses(userID, TopListDefault)
	if err != nil {
		return nil, err
	}
	topAssets, err := s.assets.GetTopAssets(userID, TopListDefault)
	if err != nil {
		return nil, err
	}
	topBills, err := s.bills.GetTopBills(userID, TopListDefault)
	if err != nil {
		return nil, err
	}
	totalBills, err := s.bills.GetTotalBills(userID)
	if err != nil {
		return nil, err
	}
	goalProgress, err := s.goals.GetTotalProgress(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		NetWorth:       *netWorth,
		TopIncomes:     topIncomes,
		TopExpenses:    topExpenses,
		TopAssets:      topAssets,
		TopBills:       topBills,
		TotalBills:     totalBills,
		GoalProgress:   goalProgress,
		FormattedWorth: money.FormatTotal(netWorth.NetWorth),
	}, nil
}
