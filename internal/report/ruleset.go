// Package report derives the financial statements — trial balance,
// profit & loss and balance sheet — from aggregated account balances.
// Accounts are classified by keyword heuristics over the account name;
// the keyword table is explicit, ordered configuration, not scattered
// literals.
package report

import "strings"

// Category is a financial-statement classification bucket.
type Category string

const (
	CategoryRevenue             Category = "revenue"
	CategoryExpense             Category = "expense"
	CategoryCurrentAsset        Category = "current_asset"
	CategoryNonCurrentAsset     Category = "non_current_asset"
	CategoryCurrentLiability    Category = "current_liability"
	CategoryNonCurrentLiability Category = "non_current_liability"
	CategoryEquity              Category = "equity"
	CategoryUnclassified        Category = "unclassified"
)

// IsProfitAndLoss reports whether the category belongs on the income
// statement. P&L accounts are excluded from balance-sheet
// classification to avoid double counting.
func (c Category) IsProfitAndLoss() bool {
	return c == CategoryRevenue || c == CategoryExpense
}

// KeywordRule maps a lower-case keyword to a category via substring
// containment against the lower-cased account name.
type KeywordRule struct {
	Keyword  string
	Category Category
}

// Ruleset is an ordered keyword table; the first matching rule wins.
// Order is load-bearing: P&L categories come before balance-sheet
// categories so that an ambiguous name like "Sales Commission Expense"
// resolves deterministically by table position. Changing the
// resolution of such overlaps is a data edit, not a code change.
type Ruleset struct {
	Version string
	Rules   []KeywordRule
}

// Classify returns the category of the first rule whose keyword is
// contained in the account name, or CategoryUnclassified.
func (rs Ruleset) Classify(account string) Category {
	name := strings.ToLower(account)
	for _, rule := range rs.Rules {
		if strings.Contains(name, rule.Keyword) {
			return rule.Category
		}
	}
	return CategoryUnclassified
}

// DefaultRulesetVersion identifies the built-in keyword table.
const DefaultRulesetVersion = "gaap-keywords/1"

// DefaultRuleset returns the built-in GAAP-flavoured keyword table.
// Accounts matching none of these keywords are unclassified and appear
// on no statement (they still show on the trial balance).
func DefaultRuleset() Ruleset {
	rules := make([]KeywordRule, 0, 128)
	add := func(cat Category, keywords ...string) {
		for _, kw := range keywords {
			rules = append(rules, KeywordRule{Keyword: kw, Category: cat})
		}
	}

	// Revenue: credit-normal accounts.
	add(CategoryRevenue,
		"sales", "revenue", "income", "service revenue", "consulting income",
		"fees earned", "interest received", "rent received",
		"commission received", "dividend received", "discount received",
		"gain on sale", "other income", "miscellaneous income",
		"royalty income", "rental income", "service fees",
		"professional fees",
	)

	// Expenses: debit-normal accounts, COGS first, then operating.
	add(CategoryExpense,
		"cost of goods sold", "cogs", "cost of sales", "purchases",
		"materials", "inventory",
		"salary", "salaries", "wages", "payroll", "benefits", "bonus",
		"commission paid",
		"rent expense", "office rent", "utilities", "electricity", "water",
		"gas", "telephone", "internet", "mobile", "communication",
		"office expense", "supplies", "stationery", "printing", "postage",
		"advertising", "marketing", "promotion", "publicity",
		"travel", "transport", "fuel", "vehicle expense", "conveyance",
		"insurance expense", "legal fees", "audit fees",
		"consultant fees", "bank charges", "interest expense",
		"loan interest", "repairs", "maintenance", "cleaning", "security",
		"depreciation", "amortization", "bad debts", "doubtful debts",
		"training", "conference", "subscription", "license fee",
		"tax expense", "penalty", "fine", "loss", "miscellaneous expense",
	)

	// Current assets: convertible to cash within a year.
	add(CategoryCurrentAsset,
		"cash", "petty cash", "bank", "checking", "savings", "money market",
		"accounts receivable", "trade receivables", "notes receivable",
		"debtors", "stock", "merchandise", "raw materials",
		"finished goods", "prepaid expenses", "prepaid rent",
		"prepaid insurance", "short-term investment",
		"marketable securities",
	)

	// Non-current assets.
	add(CategoryNonCurrentAsset,
		"land", "building", "equipment", "machinery", "furniture",
		"fixtures", "vehicle", "motor car", "truck", "computer", "laptop",
		"software", "patent", "trademark", "goodwill",
		"long-term investment", "property", "plant", "intangible",
		"fixed asset",
	)

	// Current liabilities: due within a year.
	add(CategoryCurrentLiability,
		"accounts payable", "trade payables", "notes payable", "creditors",
		"accrued expenses", "accrued liabilities", "wages payable",
		"salary payable", "interest payable", "tax payable",
		"short-term loan", "credit card", "overdraft", "current portion",
		"unearned revenue",
	)

	// Non-current liabilities.
	add(CategoryNonCurrentLiability,
		"long-term loan", "mortgage", "bonds payable", "deferred tax",
		"pension liability", "long-term debt",
	)

	// Equity. Drawings are debit-normal and reduce equity; everything
	// else here is credit-normal.
	add(CategoryEquity,
		"capital", "owner capital", "share capital", "common stock",
		"preferred stock", "additional paid-in capital",
		"retained earnings", "reserve", "surplus", "drawing",
		"owner drawing", "dividends", "treasury stock",
	)

	return Ruleset{Version: DefaultRulesetVersion, Rules: rules}
}
