package report_test

import (
	"testing"

	"github.com/Sharmaisbatman/AcctFlow/internal/domain"
	"github.com/Sharmaisbatman/AcctFlow/internal/report"
)

func TestBuildProfitAndLoss_IncomeAndExpenses(t *testing.T) {
	pl := report.BuildProfitAndLoss([]domain.AccountBalance{
		balance("Cash", "700"),
		balance("Office Rent Expense", "300"),
		balance("Sales", "-1000"),
	}, report.DefaultRuleset())

	if len(pl.Income) != 1 || pl.Income[0].Account != "Sales" {
		t.Fatalf("expected a single Sales income line, got %+v", pl.Income)
	}
	if pl.Income[0].Amount.StringFixed(2) != "1000.00" {
		t.Errorf("income shown positive: got %s", pl.Income[0].Amount)
	}
	if len(pl.Expenses) != 1 || pl.Expenses[0].Amount.StringFixed(2) != "300.00" {
		t.Fatalf("expected a 300.00 rent expense line, got %+v", pl.Expenses)
	}
	if pl.NetProfit.StringFixed(2) != "700.00" {
		t.Errorf("expected net profit 700.00, got %s", pl.NetProfit)
	}
}

func TestBuildProfitAndLoss_NetLoss(t *testing.T) {
	pl := report.BuildProfitAndLoss([]domain.AccountBalance{
		balance("Sales", "-200"),
		balance("Salaries", "900"),
	}, report.DefaultRuleset())

	if pl.NetProfit.StringFixed(2) != "-700.00" {
		t.Errorf("expected net loss -700.00, got %s", pl.NetProfit)
	}
}

func TestBuildProfitAndLoss_WrongSideDropped(t *testing.T) {
	// A revenue account carrying a debit balance (or an expense
	// carrying a credit balance) is shown nowhere.
	pl := report.BuildProfitAndLoss([]domain.AccountBalance{
		balance("Sales", "150"),
		balance("Rent Expense", "-80"),
	}, report.DefaultRuleset())

	if len(pl.Income) != 0 || len(pl.Expenses) != 0 {
		t.Fatalf("expected both lines dropped, got %+v / %+v", pl.Income, pl.Expenses)
	}
	if !pl.NetProfit.IsZero() {
		t.Errorf("expected zero net profit, got %s", pl.NetProfit)
	}
}

func TestBuildProfitAndLoss_IgnoresBalanceSheetAccounts(t *testing.T) {
	pl := report.BuildProfitAndLoss([]domain.AccountBalance{
		balance("Cash", "5000"),
		balance("Owner Capital", "-5000"),
	}, report.DefaultRuleset())

	if len(pl.Income) != 0 || len(pl.Expenses) != 0 {
		t.Error("expected no P&L lines from balance-sheet accounts")
	}
}
